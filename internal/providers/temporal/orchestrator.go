package temporal

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"

	"github.com/vtopia/nft-assistant/internal/logger"
)

// TemporalOrchestrator starts workflows, client.Client satisfies it
//
//go:generate mockgen -source=orchestrator.go -destination=../../mocks/temporal_orchestrator.go -package=mocks -mock_names=TemporalOrchestrator=MockTemporalOrchestrator
type TemporalOrchestrator interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

// ClientConfig holds the Temporal connection settings
type ClientConfig struct {
	HostPort  string
	Namespace string
	// Interceptors are added to the client, and to every worker created from it
	Interceptors []interceptor.ClientInterceptor
}

// Dial connects to Temporal, logging through the global zap logger
func Dial(cfg ClientConfig) (client.Client, error) {
	c, err := client.Dial(client.Options{
		HostPort:     cfg.HostPort,
		Namespace:    cfg.Namespace,
		Logger:       NewZapLoggerAdapter(logger.Default()),
		Interceptors: cfg.Interceptors,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to temporal at %s: %w", cfg.HostPort, err)
	}
	return c, nil
}
