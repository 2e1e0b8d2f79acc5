package workflows

import (
	"strings"
	"time"

	"go.temporal.io/sdk/workflow"

	"github.com/vtopia/nft-assistant/internal/domain"
)

const (
	// INGESTION_WORKFLOW_ID_PREFIX prefixes the workflow id of a collection ingestion
	INGESTION_WORKFLOW_ID_PREFIX = "ingest-collection-"

	// DEFAULT_INGESTION_ACTIVITY_TIMEOUT bounds a whole collection ingestion
	DEFAULT_INGESTION_ACTIVITY_TIMEOUT = 2 * time.Hour
)

// WorkerCore defines the workflows of the ingestion worker
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// IngestCollection ingests a collection in the background
	IngestCollection(ctx workflow.Context, collectionName string) (*domain.IngestionSummary, error)
}

type WorkerCoreConfig struct {
	// IngestionActivityTimeout is the StartToClose timeout of the ingestion activity
	IngestionActivityTimeout time.Duration
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	config   WorkerCoreConfig
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	if config.IngestionActivityTimeout <= 0 {
		config.IngestionActivityTimeout = DEFAULT_INGESTION_ACTIVITY_TIMEOUT
	}

	return &workerCore{
		executor: executor,
		config:   config,
	}
}

// IngestionWorkflowID returns the workflow id shared by every ingestion of the same collection name
func IngestionWorkflowID(collectionName string) string {
	return INGESTION_WORKFLOW_ID_PREFIX + strings.ReplaceAll(domain.NormalizeCollectionName(collectionName), " ", "-")
}
