package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.temporal.io/api/enums/v1"

	"github.com/vtopia/nft-assistant/internal/domain"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{
			name:     "milliseconds",
			duration: 500 * time.Millisecond,
			want:     "500ms",
		},
		{
			name:     "seconds",
			duration: 5 * time.Second,
			want:     "5.00s",
		},
		{
			name:     "minutes",
			duration: 2*time.Minute + 30*time.Second,
			want:     "2m 30s",
		},
		{
			name:     "hours",
			duration: 1*time.Hour + 15*time.Minute,
			want:     "1h 15m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDuration(tt.duration)
			if got != tt.want {
				t.Errorf("formatDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatStatus(t *testing.T) {
	tests := []struct {
		name   string
		status enums.WorkflowExecutionStatus
		want   string
	}{
		{
			name:   "running",
			status: enums.WORKFLOW_EXECUTION_STATUS_RUNNING,
			want:   "🟡 RUNNING",
		},
		{
			name:   "completed",
			status: enums.WORKFLOW_EXECUTION_STATUS_COMPLETED,
			want:   "✅ COMPLETED",
		},
		{
			name:   "failed",
			status: enums.WORKFLOW_EXECUTION_STATUS_FAILED,
			want:   "❌ FAILED",
		},
		{
			name:   "never started",
			status: enums.WORKFLOW_EXECUTION_STATUS_UNSPECIFIED,
			want:   "⚪ NOT_STARTED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatStatus(tt.status)
			if got != tt.want {
				t.Errorf("formatStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPercentageString(t *testing.T) {
	tests := []struct {
		name  string
		part  int
		total int
		want  string
	}{
		{
			name:  "50 percent",
			part:  1,
			total: 2,
			want:  "50.00%",
		},
		{
			name:  "100 percent",
			part:  5,
			total: 5,
			want:  "100.00%",
		},
		{
			name:  "0 percent",
			part:  0,
			total: 5,
			want:  "0.00%",
		},
		{
			name:  "division by zero",
			part:  5,
			total: 0,
			want:  "0.00%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := percentageString(tt.part, tt.total)
			if got != tt.want {
				t.Errorf("percentageString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusEmoji(t *testing.T) {
	tests := []struct {
		name    string
		passed  int
		failed  int
		running int
		want    string
	}{
		{
			name:    "running",
			passed:  0,
			failed:  0,
			running: 1,
			want:    "🟡",
		},
		{
			name:    "failed",
			passed:  1,
			failed:  1,
			running: 0,
			want:    "❌",
		},
		{
			name:    "passed",
			passed:  5,
			failed:  0,
			running: 0,
			want:    "✅",
		},
		{
			name:    "none",
			passed:  0,
			failed:  0,
			running: 0,
			want:    "⚪",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusEmoji(tt.passed, tt.failed, tt.running)
			if got != tt.want {
				t.Errorf("statusEmoji() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		duration time.Duration
		want     string
	}{
		{
			name:     "1 per second",
			count:    10,
			duration: 10 * time.Second,
			want:     "1.00/s",
		},
		{
			name:     "2 per second",
			count:    20,
			duration: 10 * time.Second,
			want:     "2.00/s",
		},
		{
			name:     "zero duration",
			count:    10,
			duration: 0,
			want:     "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatRate(tt.count, tt.duration)
			if got != tt.want {
				t.Errorf("formatRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCollections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "single",
			raw:  "Okay Bears",
			want: []string{"Okay Bears"},
		},
		{
			name: "trims and drops blanks",
			raw:  " Okay Bears ,, Mad Lads ,",
			want: []string{"Okay Bears", "Mad Lads"},
		},
		{
			name: "drops names that normalize to the same collection",
			raw:  "Okay Bears,okay  bears,Mad Lads",
			want: []string{"Okay Bears", "Mad Lads"},
		},
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCollections(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseCollections() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	results := []*IngestionStats{
		{
			CollectionName: "Okay Bears",
			Status:         enums.WORKFLOW_EXECUTION_STATUS_COMPLETED,
			ExecutionTime:  10 * time.Second,
			Summary:        &domain.IngestionSummary{MintCount: 100, Persisted: 98, Dropped: 2},
		},
		{
			CollectionName: "Mad Lads",
			Status:         enums.WORKFLOW_EXECUTION_STATUS_COMPLETED,
			ExecutionTime:  10 * time.Second,
			Summary:        &domain.IngestionSummary{MintCount: 50, Persisted: 40, FailedChunks: []int{1}},
		},
		{
			CollectionName: "DeGods",
			Status:         enums.WORKFLOW_EXECUTION_STATUS_COMPLETED,
			ExecutionTime:  200 * time.Millisecond,
			Summary:        &domain.IngestionSummary{Cached: true},
		},
		{
			CollectionName: "Nope",
			Status:         enums.WORKFLOW_EXECUTION_STATUS_FAILED,
			Err:            errors.New("collection not found"),
		},
	}

	got := summarize(results, 30*time.Second)

	if got.Completed != 3 || got.Failed != 1 || got.Cached != 1 || got.Partial != 1 {
		t.Errorf("summarize() counts = completed %d failed %d cached %d partial %d", got.Completed, got.Failed, got.Cached, got.Partial)
	}
	if got.TotalMints != 150 || got.TotalPersist != 138 || got.TotalDropped != 2 {
		t.Errorf("summarize() mints = listed %d persisted %d dropped %d", got.TotalMints, got.TotalPersist, got.TotalDropped)
	}
	if got.IngestingTime != 20*time.Second {
		t.Errorf("summarize() ingesting time = %v, want 20s", got.IngestingTime)
	}
	if got.WallTime != 30*time.Second {
		t.Errorf("summarize() wall time = %v, want 30s", got.WallTime)
	}
}

func TestWriteMarkdownReport(t *testing.T) {
	stats := summarize([]*IngestionStats{
		{
			CollectionName: "Okay Bears",
			WorkflowID:     "ingest-collection-okay-bears",
			Status:         enums.WORKFLOW_EXECUTION_STATUS_COMPLETED,
			ExecutionTime:  10 * time.Second,
			Summary:        &domain.IngestionSummary{MintCount: 10, Persisted: 10},
		},
		{
			CollectionName: "Nope",
			WorkflowID:     "ingest-collection-nope",
			Status:         enums.WORKFLOW_EXECUTION_STATUS_FAILED,
			Err:            errors.New("collection not found"),
		},
	}, 12*time.Second)

	path := filepath.Join(t.TempDir(), "report.md")
	if err := writeMarkdownReport(path, stats); err != nil {
		t.Fatalf("writeMarkdownReport() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	report := string(data)

	for _, want := range []string{
		"# Ingestion Benchmark Report",
		"| **Collections** | 2 |",
		"| ✅ | Okay Bears | `ingest-collection-okay-bears` | completed | 10 | 10 | 0 | 10.00s |",
		"| ❌ | Nope | `ingest-collection-nope` | failed | 0 | 0 | 0 | 0ms |",
		"- **Nope**: collection not found",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report is missing %q", want)
		}
	}
}
