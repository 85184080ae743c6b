package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/sbilibin2017/insighteats/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWeightHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener := NewMockTokener(ctrl)
	svc := NewMockWeightLogger(ctrl)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "recomputed goals",
			body: `{"weight":79.5}`,
			setupMocks: func() {
				expectIdentity(tokener)
				svc.EXPECT().LogWeight(gomock.Any(), testIdentity, 79.5).
					Return(&models.GoalsDB{WeightKg: 79.5, CaloriesTarget: 2251}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "no goals",
			body: `{"weight":79.5}`,
			setupMocks: func() {
				expectIdentity(tokener)
				svc.EXPECT().LogWeight(gomock.Any(), testIdentity, 79.5).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"goals":null}`,
		},
		{
			name: "invalid weight",
			body: `{"weight":-1}`,
			setupMocks: func() {
				expectIdentity(tokener)
				svc.EXPECT().LogWeight(gomock.Any(), testIdentity, -1.0).
					Return(nil, &services.ValidationError{Field: "weight", Message: "must be positive"})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "malformed body",
			body: `weight=1`,
			setupMocks: func() {
				expectIdentity(tokener)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/weight", strings.NewReader(tt.body))

			NewLogWeightHandler(svc, tokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestWeightHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener := NewMockTokener(ctrl)
	svc := NewMockWeightHistoryGetter(ctrl)

	expectIdentity(tokener)
	svc.EXPECT().WeightHistory(gomock.Any(), testIdentity).Return([]models.WeightLogDB{
		{WeightKg: 80, Date: "2024-03-14"},
		{WeightKg: 79.6, Date: "2024-03-15"},
	}, nil)
	rr := httptest.NewRecorder()

	NewWeightHistoryHandler(svc, tokener).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/weight/history", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []models.WeightLogDB
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "2024-03-14", got[0].Date)
}
