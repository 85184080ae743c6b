package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.App.Host)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, 16, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, time.Hour, cfg.Redis.SearchTTL)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "nutrition-events", cfg.Kafka.Topic)
	assert.Equal(t, "meal-photos", cfg.Storage.Bucket)
	assert.Equal(t, 4*time.Second, cfg.USDA.Timeout)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "openai", cfg.AIProvider)
	assert.Equal(t, "https://vision.googleapis.com", cfg.Google.Endpoint)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name:    "app override",
			envVars: map[string]string{"APP_HOST": "0.0.0.0", "APP_PORT": "9090", "APP_TIMEZONE": "Europe/Berlin"},
			expected: func(cfg *Config) {
				assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
				loc, err := cfg.App.Location()
				assert.NoError(t, err)
				assert.Equal(t, "Europe/Berlin", loc.String())
			},
		},
		{
			name: "postgres override",
			envVars: map[string]string{
				"POSTGRES_HOST":     "db",
				"POSTGRES_PORT":     "6543",
				"POSTGRES_USER":     "eats",
				"POSTGRES_PASSWORD": "pw",
				"POSTGRES_DB":       "eats",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "postgres://eats:pw@db:6543/eats?sslmode=disable", cfg.Postgres.DSN())
			},
		},
		{
			name:    "kafka brokers list",
			envVars: map[string]string{"KAFKA_BROKERS": "k1:9092,k2:9092", "KAFKA_TOPIC": "events"},
			expected: func(cfg *Config) {
				assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
				assert.Equal(t, "events", cfg.Kafka.Topic)
			},
		},
		{
			name:    "provider keys",
			envVars: map[string]string{"GOOGLE_CLOUD_API_KEY": "g-key", "GOOGLE_VISION_ENDPOINT": "http://localhost:9000", "AI_PROVIDER": "google", "REDIS_SEARCH_TTL": "5m"},
			expected: func(cfg *Config) {
				assert.Equal(t, "g-key", cfg.Google.APIKey)
				assert.Equal(t, "http://localhost:9000", cfg.Google.Endpoint)
				assert.Equal(t, "google", cfg.AIProvider)
				assert.Equal(t, 5*time.Minute, cfg.Redis.SearchTTL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load("")
			require.NoError(t, err)
			tt.expected(cfg)
		})
	}
}

func TestLoad_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nUSDA_API_KEY=usda-key\n"), 0o600))

	t.Cleanup(func() {
		os.Unsetenv("APP_PORT")
		os.Unsetenv("USDA_API_KEY")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.App.Port)
	assert.Equal(t, "usda-key", cfg.USDA.APIKey)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("POSTGRES_PORT", "not-a-number")

	_, err := Load("")
	assert.Error(t, err)
}
