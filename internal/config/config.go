package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains all service configuration parameters.
type Config struct {
	App        App      `envPrefix:"APP_"`
	Postgres   Postgres `envPrefix:"POSTGRES_"`
	Redis      Redis    `envPrefix:"REDIS_"`
	Kafka      Kafka    `envPrefix:"KAFKA_"`
	Storage    Storage  `envPrefix:"MINIO_"`
	JWT        JWT      `envPrefix:"JWT_"`
	USDA       USDA     `envPrefix:"USDA_"`
	OpenAI     OpenAI   `envPrefix:"OPENAI_"`
	Google     Google   `envPrefix:"GOOGLE_"`
	Unsplash   Unsplash `envPrefix:"UNSPLASH_"`
	OpenFood   OpenFood `envPrefix:"OFF_"`
	AIProvider string   `env:"AI_PROVIDER" envDefault:"openai"`
}

// App contains HTTP server parameters.
type App struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`
}

// Addr returns host:port the server listens on.
func (a App) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// Location resolves the configured time zone used for "today".
func (a App) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

// Postgres contains database connection parameters.
type Postgres struct {
	Host         string `env:"HOST" envDefault:"localhost"`
	Port         int    `env:"PORT" envDefault:"5432"`
	User         string `env:"USER" envDefault:"user"`
	Password     string `env:"PASSWORD" envDefault:"password"`
	DB           string `env:"DB" envDefault:"database"`
	MaxOpenConns int    `env:"MAX_OPEN_CONNS" envDefault:"16"`
	MaxIdleConns int    `env:"MAX_IDLE_CONNS" envDefault:"8"`
}

// DSN builds the pgx connection string.
func (p Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.DB)
}

// Redis contains cache connection parameters.
type Redis struct {
	Host         string        `env:"HOST" envDefault:"localhost"`
	Port         int           `env:"PORT" envDefault:"6379"`
	DB           int           `env:"DB" envDefault:"0"`
	Password     string        `env:"PASSWORD" envDefault:""`
	PoolSize     int           `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"MIN_IDLE_CONNS" envDefault:"2"`
	SearchTTL    time.Duration `env:"SEARCH_TTL" envDefault:"1h"`
}

// Addr returns host:port of the Redis server.
func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Kafka contains event publishing parameters. Publishing is disabled
// when no brokers are configured.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"nutrition-events"`
}

// Storage contains object storage parameters for meal photos.
type Storage struct {
	Endpoint  string `env:"ENDPOINT" envDefault:""`
	AccessKey string `env:"ACCESS_KEY" envDefault:"insighteats-access-key"`
	SecretKey string `env:"SECRET_KEY" envDefault:"insighteats-secret-key"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"meal-photos"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// JWT contains identity token verification parameters.
type JWT struct {
	SecretKey string        `env:"SECRET_KEY" envDefault:"my_super_secret_key"`
	Issuer    string        `env:"ISSUER" envDefault:""`
	Exp       time.Duration `env:"EXP" envDefault:"1h"`
}

// USDA contains FoodData Central parameters.
type USDA struct {
	APIKey  string        `env:"API_KEY" envDefault:""`
	BaseURL string        `env:"BASE_URL" envDefault:"https://api.nal.usda.gov/fdc/v1"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"4s"`
}

// OpenFood contains Open Food Facts parameters.
type OpenFood struct {
	BaseURL string        `env:"BASE_URL" envDefault:"https://world.openfoodfacts.org"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"4s"`
}

// OpenAI contains vision analysis parameters.
type OpenAI struct {
	APIKey  string `env:"API_KEY" envDefault:""`
	BaseURL string `env:"BASE_URL" envDefault:""`
	Model   string `env:"MODEL" envDefault:"gpt-4o-mini"`
}

// Google contains Cloud Vision parameters.
type Google struct {
	APIKey   string `env:"CLOUD_API_KEY" envDefault:""`
	Endpoint string `env:"VISION_ENDPOINT" envDefault:"https://vision.googleapis.com"`
}

// Unsplash contains image lookup parameters.
type Unsplash struct {
	AccessKey string `env:"ACCESS_KEY" envDefault:""`
	BaseURL   string `env:"BASE_URL" envDefault:"https://api.unsplash.com"`
}

// Load reads the optional env file at path and parses the environment into Config.
func Load(path string) (*Config, error) {
	if path != "" {
		_ = godotenv.Load(path)
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
