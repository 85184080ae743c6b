package services

//go:generate mockgen -source=ports.go -destination=ports_mock.go -package=services

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/segmentio/kafka-go"
)

// EventPublisher announces applied diary mutations.
type EventPublisher interface {
	Publish(ctx context.Context, event models.NutritionEvent)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ExternalFoodSearcher queries one external food database.
type ExternalFoodSearcher interface {
	Search(ctx context.Context, term string) ([]models.ExternalFoodCandidate, error)
}

// FoodSearchCache caches external lookups.
type FoodSearchCache interface {
	GetExternalFoods(ctx context.Context, term string) ([]models.ExternalFoodCandidate, bool, error)
	SetExternalFoods(ctx context.Context, term string, foods []models.ExternalFoodCandidate) error
	GetImageURL(ctx context.Context, name string) (string, bool, error)
	SetImageURL(ctx context.Context, name, url string) error
}

// ImageFinder finds a representative photo URL for a food name.
type ImageFinder interface {
	FindImage(ctx context.Context, name string) (string, error)
}

// VisionAnalyzer recognizes foods on a meal photo.
type VisionAnalyzer interface {
	Name() string
	Analyze(ctx context.Context, image []byte, contentType string) (*models.AnalysisResult, error)
}

// PhotoStore keeps uploaded meal photos.
type PhotoStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
}

// CatalogResolver promotes candidates into the food catalog.
type CatalogResolver interface {
	ResolveOrCreate(ctx context.Context, candidate models.FoodCandidate) (uuid.UUID, error)
}
