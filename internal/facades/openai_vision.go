package facades

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/models"
)

const analysisPrompt = `Analyze this food image and identify all foods present. For each food identified, provide: ` +
	`Name (specific, common name), Brief description (optional), Estimated nutritional values per 100g: ` +
	`calories, protein, carbs, fat, Confidence level (high/medium/low) based on visual clarity. ` +
	`Return response in this exact JSON format: { "foods": [ { "name": "Food name", "description": "Brief description", ` +
	`"estimatedCaloriesPer100g": number, "estimatedProteinPer100g": number, "estimatedCarbsPer100g": number, ` +
	`"estimatedFatPer100g": number, "confidence": "high" or "medium" or "low" } ], "summary": "Brief summary of meal" }`

// ErrEmptyAnalysis is returned when the provider answers without content.
var ErrEmptyAnalysis = errors.New("vision provider returned no content")

var codeFence = regexp.MustCompile("```json\\n?|\\n?```")

var confidenceLevels = map[string]int{
	"high":   90,
	"medium": 60,
	"low":    30,
}

// ChatCompleter is the part of the OpenAI client used for analysis.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIVisionFacade analyzes meal photos with an OpenAI vision model.
type OpenAIVisionFacade struct {
	client ChatCompleter
	model  string
}

// NewOpenAIClient builds an OpenAI client; baseURL overrides the public endpoint when set.
func NewOpenAIClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// NewOpenAIVisionFacade creates a new facade.
func NewOpenAIVisionFacade(client ChatCompleter, model string) *OpenAIVisionFacade {
	return &OpenAIVisionFacade{client: client, model: model}
}

// Name identifies the provider in analysis results.
func (f *OpenAIVisionFacade) Name() string {
	return "openai"
}

// Analyze asks the model to identify foods on the image and estimate their macros.
func (f *OpenAIVisionFacade) Analyze(ctx context.Context, image []byte, contentType string) (*models.AnalysisResult, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(image))

	resp, err := f.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       f.model,
		MaxTokens:   1000,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: analysisPrompt},
					{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURL}},
				},
			},
		},
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("OpenAI chat completion failed", "model", f.model, "error", err)
		return nil, err
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return nil, ErrEmptyAnalysis
	}

	result, err := parseAnalysis(resp.Choices[0].Message.Content)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to parse OpenAI analysis", "error", err)
		return nil, err
	}
	result.Provider = f.Name()
	return result, nil
}

type rawAnalysis struct {
	Foods []struct {
		Name                     string          `json:"name"`
		Description              string          `json:"description"`
		EstimatedCaloriesPer100g float64         `json:"estimatedCaloriesPer100g"`
		EstimatedProteinPer100g  float64         `json:"estimatedProteinPer100g"`
		EstimatedCarbsPer100g    float64         `json:"estimatedCarbsPer100g"`
		EstimatedFatPer100g      float64         `json:"estimatedFatPer100g"`
		Confidence               json.RawMessage `json:"confidence"`
	} `json:"foods"`
	Summary string `json:"summary"`
}

// parseAnalysis decodes the model answer, tolerating markdown code fences.
func parseAnalysis(content string) (*models.AnalysisResult, error) {
	cleaned := strings.TrimSpace(codeFence.ReplaceAllString(content, ""))

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}

	result := &models.AnalysisResult{
		Foods:   make([]models.AnalyzedFood, 0, len(raw.Foods)),
		Summary: raw.Summary,
	}
	for _, f := range raw.Foods {
		result.Foods = append(result.Foods, models.AnalyzedFood{
			Name:                     f.Name,
			Description:              f.Description,
			EstimatedCaloriesPer100g: f.EstimatedCaloriesPer100g,
			EstimatedProteinPer100g:  f.EstimatedProteinPer100g,
			EstimatedCarbsPer100g:    f.EstimatedCarbsPer100g,
			EstimatedFatPer100g:      f.EstimatedFatPer100g,
			Confidence:               parseConfidence(f.Confidence),
		})
	}
	return result, nil
}

// parseConfidence accepts a high/medium/low label or a 0-100 number.
func parseConfidence(raw json.RawMessage) int {
	var label string
	if err := json.Unmarshal(raw, &label); err == nil {
		return confidenceLevels[strings.ToLower(strings.TrimSpace(label))]
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return int(math.Max(0, math.Min(100, math.Round(n))))
	}
	return 0
}
