package workflows

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/ingest"
	"github.com/vtopia/nft-assistant/internal/logger"
)

// Application error types of non-retryable activity failures
const (
	ERR_TYPE_VALIDATION = "ValidationError"
	ERR_TYPE_NOT_FOUND  = "NotFound"
)

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_core.go -package=mocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// IngestCollection resolves a collection and ingests it into the cache store unless it already is
	IngestCollection(ctx context.Context, collectionName string) (*domain.IngestionSummary, error)
}

// executor is the concrete implementation of Executor
type executor struct {
	ingestor         ingest.Ingestor
	temporalActivity adapter.Activity
}

// NewExecutor creates a new executor instance
func NewExecutor(ingestor ingest.Ingestor, temporalActivity adapter.Activity) Executor {
	return &executor{
		ingestor:         ingestor,
		temporalActivity: temporalActivity,
	}
}

func (e *executor) IngestCollection(ctx context.Context, collectionName string) (*domain.IngestionSummary, error) {
	attempt := e.temporalActivity.GetInfo(ctx).Attempt

	logger.InfoCtx(ctx, "Ingesting collection",
		zap.String("collection_name", collectionName),
		zap.Int32("attempt", attempt))

	summary, err := e.ingestor.EnsureIngested(ctx, collectionName)
	if err != nil {
		switch {
		case domain.IsValidationError(err):
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ERR_TYPE_VALIDATION, err)
		case errors.Is(err, domain.ErrNotFound):
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ERR_TYPE_NOT_FOUND, err)
		default:
			return nil, fmt.Errorf("failed to ingest collection %q: %w", collectionName, err)
		}
	}

	return summary, nil
}
