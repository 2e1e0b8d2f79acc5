package messaging

import (
	"context"

	"github.com/vtopia/nft-assistant/internal/domain"
)

// Publisher defines the interface for publishing ingestion events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishIngestionEvent publishes the outcome of a collection ingestion
	PublishIngestionEvent(ctx context.Context, event *domain.IngestionEvent) error
	// Close closes the connection
	Close()
}
