package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	RunID   string    // restrict to a single pipeline run
	Purpose string    // restrict to a single stage label
}

// Run statuses as persisted in the pipeline_runs table.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusComplete   = "complete"
	StatusIncomplete = "incomplete"
	StatusFailed     = "failed"
)

// PipelineRun is one adaptation run: the submitted material plus the
// full processing state, serialized as JSON.
type PipelineRun struct {
	ID           int
	RunID        string
	Status       string
	Title        string
	Language     string
	State        map[string]any
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RunRepo manages persisted pipeline runs.
type RunRepo interface {
	// Save inserts the run, or updates it if the run_id already exists.
	Save(ctx context.Context, run *PipelineRun) error

	// Get returns the run with the given run_id, or nil if none exists.
	Get(ctx context.Context, runID string) (*PipelineRun, error)

	// List returns runs ordered newest first. limit <= 0 means unlimited.
	List(ctx context.Context, limit int) ([]PipelineRun, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	RunID        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	RunID        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStat aggregates token usage for one purpose or model.
type LLMUsageStat struct {
	Key          string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns a single event by ID.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates request counts and token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
}
