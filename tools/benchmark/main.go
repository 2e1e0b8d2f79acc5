package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"

	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/workflows"
)

const (
	defaultTemporalHost = "localhost:7233"
	defaultNamespace    = "default"
	defaultTaskQueue    = "collection-ingestion"
)

type Config struct {
	TemporalHost string
	Namespace    string
	TaskQueue    string
	Collections  []string
	Timeout      time.Duration // Timeout for each ingestion workflow
	OutputFile   string        // Output markdown file path (optional)
	Concurrency  int           // Number of ingestions running at once
}

// IngestionStats is the outcome of one collection ingestion
type IngestionStats struct {
	CollectionName string
	WorkflowID     string
	RunID          string
	Status         enums.WorkflowExecutionStatus
	StartTime      time.Time
	CloseTime      *time.Time
	ExecutionTime  time.Duration
	Summary        *domain.IngestionSummary
	Err            error
}

// BenchmarkStats aggregates every ingestion of a benchmark run
type BenchmarkStats struct {
	Results       []*IngestionStats
	WallTime      time.Duration
	Completed     int
	Failed        int
	Cached        int
	Partial       int
	TotalMints    int
	TotalPersist  int
	TotalDropped  int
	IngestingTime time.Duration // Sum of execution times of non-cached ingestions
}

func main() {
	cfg := parseFlags()

	if len(cfg.Collections) == 0 {
		fmt.Println("Error: collections is required")
		flag.Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		fmt.Printf("Error creating Temporal client: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	fmt.Printf("Connected to Temporal at %s (namespace: %s)\n", cfg.TemporalHost, cfg.Namespace)
	fmt.Printf("Ingesting %d collection(s) on task queue %s with concurrency %d\n\n",
		len(cfg.Collections), cfg.TaskQueue, cfg.Concurrency)

	start := time.Now()
	results := runIngestions(ctx, c, cfg)
	stats := summarize(results, time.Since(start))

	fmt.Println("\n" + strings.Repeat("=", 80))
	if ctx.Err() != nil {
		fmt.Println("INTERRUPTED - PARTIAL RESULTS")
	} else {
		fmt.Println("BENCHMARK RESULTS")
	}
	fmt.Println(strings.Repeat("=", 80))
	printBenchmarkStats(stats)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, stats); err != nil {
			fmt.Printf("\n⚠️  Warning: Failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\n✓ Report written to: %s\n", cfg.OutputFile)
		}
	}

	if stats.Failed > 0 {
		os.Exit(1)
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.TemporalHost, "temporal-host", defaultTemporalHost, "Temporal host address")
	flag.StringVar(&cfg.Namespace, "namespace", defaultNamespace, "Temporal namespace")
	flag.StringVar(&cfg.TaskQueue, "task-queue", defaultTaskQueue, "Ingestion task queue")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.IntVar(&cfg.Concurrency, "concurrency", 2, "Number of concurrent ingestions (default: 2)")

	collections := flag.String("collections", "", "Comma separated collection names (required)")

	var timeoutMinutes int
	flag.IntVar(&timeoutMinutes, "timeout", 60, "Timeout for each ingestion in minutes (default: 60)")

	configFile := flag.String("config", "", "Path to config file (optional)")

	flag.Parse()

	cfg.Timeout = time.Duration(timeoutMinutes) * time.Minute
	cfg.Collections = parseCollections(*collections)

	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 2
	}
	if cfg.Concurrency > 10 {
		cfg.Concurrency = 10 // Each ingestion already fans out its own fetch workers
	}

	// Load from config file if specified
	if *configFile != "" {
		fileCfg, err := LoadConfig(*configFile)
		if err != nil {
			fmt.Printf("Warning: failed to load config file: %v\n", err)
		} else {
			// Override with file values if not set via flags
			if cfg.TemporalHost == defaultTemporalHost && fileCfg.TemporalHost != "" {
				cfg.TemporalHost = fileCfg.TemporalHost
			}
			if cfg.Namespace == defaultNamespace && fileCfg.Namespace != "" {
				cfg.Namespace = fileCfg.Namespace
			}
			if cfg.TaskQueue == defaultTaskQueue && fileCfg.TaskQueue != "" {
				cfg.TaskQueue = fileCfg.TaskQueue
			}
		}
	}

	return cfg
}

// parseCollections splits a comma separated list, dropping blanks and duplicate names
func parseCollections(raw string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := domain.NormalizeCollectionName(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, name)
	}
	return names
}

// runIngestions starts one ingestion workflow per collection and waits for all of them
func runIngestions(ctx context.Context, c client.Client, cfg *Config) []*IngestionStats {
	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})

	results := make([]*IngestionStats, len(cfg.Collections))
	sem := make(chan struct{}, cfg.Concurrency)
	var wg sync.WaitGroup

	for i, name := range cfg.Collections {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = &IngestionStats{CollectionName: name, Err: ctx.Err()}
				return
			}

			results[i] = ingestCollection(ctx, c, cfg, w.IngestCollection, name)
			fmt.Printf("%s %s (%s)\n", formatStatus(results[i].Status), name, formatDuration(results[i].ExecutionTime))
		}(i, name)
	}

	wg.Wait()
	return results
}

func ingestCollection(ctx context.Context, c client.Client, cfg *Config, workflow interface{}, name string) *IngestionStats {
	stats := &IngestionStats{
		CollectionName: name,
		WorkflowID:     workflows.IngestionWorkflowID(name),
		StartTime:      time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	run, err := c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:                    stats.WorkflowID,
		TaskQueue:             cfg.TaskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}, workflow, name)
	if err != nil {
		stats.Err = fmt.Errorf("failed to start workflow: %w", err)
		return stats
	}
	stats.RunID = run.GetRunID()

	var summary domain.IngestionSummary
	if err := run.Get(ctx, &summary); err != nil {
		stats.Err = err
	} else {
		stats.Summary = &summary
	}

	stats.ExecutionTime = time.Since(stats.StartTime)

	// Server side times cover only the run, not the client round trips
	desc, err := c.DescribeWorkflowExecution(ctx, stats.WorkflowID, stats.RunID)
	if err != nil {
		if stats.Err == nil {
			stats.Status = enums.WORKFLOW_EXECUTION_STATUS_COMPLETED
		} else {
			stats.Status = enums.WORKFLOW_EXECUTION_STATUS_FAILED
		}
		return stats
	}

	info := desc.GetWorkflowExecutionInfo()
	stats.Status = info.GetStatus()
	if info.GetStartTime() != nil {
		stats.StartTime = info.GetStartTime().AsTime()
	}
	if info.GetCloseTime() != nil {
		closeTime := info.GetCloseTime().AsTime()
		stats.CloseTime = &closeTime
		stats.ExecutionTime = closeTime.Sub(stats.StartTime)
	}

	return stats
}

// summarize aggregates the ingestion results
func summarize(results []*IngestionStats, wallTime time.Duration) *BenchmarkStats {
	stats := &BenchmarkStats{Results: results, WallTime: wallTime}

	for _, r := range results {
		if r.Err != nil || r.Summary == nil {
			stats.Failed++
			continue
		}

		stats.Completed++
		switch r.Summary.Status() {
		case domain.IngestionStatusCached:
			stats.Cached++
			continue
		case domain.IngestionStatusPartial:
			stats.Partial++
		}

		stats.TotalMints += r.Summary.MintCount
		stats.TotalPersist += r.Summary.Persisted
		stats.TotalDropped += r.Summary.Dropped
		stats.IngestingTime += r.ExecutionTime
	}

	return stats
}

func printBenchmarkStats(stats *BenchmarkStats) {
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("Collections: %d\n", len(stats.Results))
	fmt.Printf("  Completed:  %d (%s)\n", stats.Completed, percentageString(stats.Completed, len(stats.Results)))
	if stats.Cached > 0 {
		fmt.Printf("  Cached:     %d\n", stats.Cached)
	}
	if stats.Partial > 0 {
		fmt.Printf("  Partial:    %d\n", stats.Partial)
	}
	if stats.Failed > 0 {
		fmt.Printf("  Failed:     %d\n", stats.Failed)
	}
	fmt.Printf("  Wall Time:  %s\n", formatDuration(stats.WallTime))
	fmt.Println()

	fmt.Printf("Mints:\n")
	fmt.Printf("  Listed:     %d\n", stats.TotalMints)
	fmt.Printf("  Persisted:  %d (%s)\n", stats.TotalPersist, percentageString(stats.TotalPersist, stats.TotalMints))
	if stats.TotalDropped > 0 {
		fmt.Printf("  Dropped:    %d\n", stats.TotalDropped)
	}
	if stats.IngestingTime > 0 {
		fmt.Printf("  Avg Rate:   %s\n", formatRate(stats.TotalPersist, stats.IngestingTime))
	}
	fmt.Println()

	fmt.Println("Ingestions:")
	fmt.Println()
	for _, r := range stats.Results {
		fmt.Printf("  %s %s\n", formatStatus(r.Status), r.CollectionName)
		if r.WorkflowID != "" {
			fmt.Printf("    Workflow ID:    %s\n", r.WorkflowID)
		}
		fmt.Printf("    Duration:       %s\n", formatDuration(r.ExecutionTime))
		if r.Summary != nil {
			fmt.Printf("    Collection ID:  %s\n", r.Summary.Ref.CollectionID)
			fmt.Printf("    Outcome:        %s\n", r.Summary.Status())
			fmt.Printf("    Mints:          %d listed, %d persisted, %d dropped\n", r.Summary.MintCount, r.Summary.Persisted, r.Summary.Dropped)
			if len(r.Summary.FailedChunks) > 0 {
				fmt.Printf("    Failed Chunks:  %v\n", r.Summary.FailedChunks)
			}
		}
		if r.Err != nil {
			fmt.Printf("    Error:          %v\n", r.Err)
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("-", 80))
}

func formatStatus(status enums.WorkflowExecutionStatus) string {
	switch status {
	case enums.WORKFLOW_EXECUTION_STATUS_RUNNING:
		return "🟡 RUNNING"
	case enums.WORKFLOW_EXECUTION_STATUS_COMPLETED:
		return "✅ COMPLETED"
	case enums.WORKFLOW_EXECUTION_STATUS_FAILED:
		return "❌ FAILED"
	case enums.WORKFLOW_EXECUTION_STATUS_CANCELED:
		return "🚫 CANCELED"
	case enums.WORKFLOW_EXECUTION_STATUS_TERMINATED:
		return "⛔ TERMINATED"
	case enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT:
		return "⏱️ TIMED_OUT"
	case enums.WORKFLOW_EXECUTION_STATUS_UNSPECIFIED:
		return "⚪ NOT_STARTED"
	default:
		return status.String()
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d < time.Hour {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// writeMarkdownReport writes a markdown report of the benchmark
func writeMarkdownReport(filepath string, stats *BenchmarkStats) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	_, _ = fmt.Fprintf(file, "# Ingestion Benchmark Report\n\n")
	_, _ = fmt.Fprintf(file, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	_, _ = fmt.Fprintf(file, "## Summary\n\n")
	_, _ = fmt.Fprintf(file, "| Metric | Value |\n")
	_, _ = fmt.Fprintf(file, "|--------|-------|\n")
	_, _ = fmt.Fprintf(file, "| **Collections** | %d |\n", len(stats.Results))
	_, _ = fmt.Fprintf(file, "| **Completed** | %d (%s) |\n", stats.Completed, percentageString(stats.Completed, len(stats.Results)))
	_, _ = fmt.Fprintf(file, "| **Cached** | %d |\n", stats.Cached)
	_, _ = fmt.Fprintf(file, "| **Partial** | %d |\n", stats.Partial)
	_, _ = fmt.Fprintf(file, "| **Failed** | %d |\n", stats.Failed)
	_, _ = fmt.Fprintf(file, "| **Mints Listed** | %d |\n", stats.TotalMints)
	_, _ = fmt.Fprintf(file, "| **Mints Persisted** | %d |\n", stats.TotalPersist)
	_, _ = fmt.Fprintf(file, "| **Mints Dropped** | %d |\n", stats.TotalDropped)
	_, _ = fmt.Fprintf(file, "| **Wall Time** | %s |\n", formatDuration(stats.WallTime))
	if stats.IngestingTime > 0 {
		_, _ = fmt.Fprintf(file, "| **Avg Rate** | %s |\n", formatRate(stats.TotalPersist, stats.IngestingTime))
	}
	_, _ = fmt.Fprintf(file, "\n")

	_, _ = fmt.Fprintf(file, "## Ingestions\n\n")
	_, _ = fmt.Fprintf(file, "| | Collection | Workflow ID | Outcome | Listed | Persisted | Dropped | Duration |\n")
	_, _ = fmt.Fprintf(file, "|---|------------|-------------|---------|--------|-----------|---------|----------|\n")
	for _, r := range stats.Results {
		outcome := "failed"
		listed, persisted, dropped := 0, 0, 0
		if r.Summary != nil {
			outcome = string(r.Summary.Status())
			listed, persisted, dropped = r.Summary.MintCount, r.Summary.Persisted, r.Summary.Dropped
		}
		emoji := statusEmoji(boolToInt(r.Summary != nil), boolToInt(r.Err != nil), boolToInt(r.Status == enums.WORKFLOW_EXECUTION_STATUS_RUNNING))
		_, _ = fmt.Fprintf(file, "| %s | %s | `%s` | %s | %d | %d | %d | %s |\n",
			emoji, r.CollectionName, r.WorkflowID, outcome, listed, persisted, dropped, formatDuration(r.ExecutionTime))
	}
	_, _ = fmt.Fprintf(file, "\n")

	var failures []*IngestionStats
	for _, r := range stats.Results {
		if r.Err != nil {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		_, _ = fmt.Fprintf(file, "## Failures\n\n")
		for _, r := range failures {
			_, _ = fmt.Fprintf(file, "- **%s**: %v\n", r.CollectionName, r.Err)
		}
		_, _ = fmt.Fprintf(file, "\n")
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
