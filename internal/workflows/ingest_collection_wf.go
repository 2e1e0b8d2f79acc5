package workflows

import (
	"fmt"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/logger"
)

// IngestCollection ingests a collection through a single activity.
// Batch retries happen inside the activity, so the activity itself is attempted once.
func (w *workerCore) IngestCollection(ctx workflow.Context, collectionName string) (*domain.IngestionSummary, error) {
	logger.InfoWf(ctx, "Starting collection ingestion",
		zap.String("collection_name", collectionName),
	)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: w.config.IngestionActivityTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var summary domain.IngestionSummary
	err := workflow.ExecuteActivity(ctx, w.executor.IngestCollection, collectionName).Get(ctx, &summary)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to ingest collection"),
			zap.Error(err),
			zap.String("collection_name", collectionName),
		)
		return nil, err
	}

	logger.InfoWf(ctx, "Collection ingestion finished",
		zap.String("collection_id", summary.Ref.CollectionID),
		zap.String("status", string(summary.Status())),
		zap.Int("persisted", summary.Persisted),
		zap.Ints("failed_chunks", summary.FailedChunks),
	)

	return &summary, nil
}
