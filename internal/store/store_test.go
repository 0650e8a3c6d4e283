package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestRunSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()
	ctx := context.Background()

	// No run yet.
	run, err := repo.Get(ctx, "missing-id")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if run != nil {
		t.Fatal("expected nil run when none exist")
	}

	err = repo.Save(ctx, &PipelineRun{
		RunID:    "run-1",
		Status:   StatusProcessing,
		Title:    "Photosynthesis",
		Language: "en",
		State:    map[string]any{"iteration_count": float64(2)},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	run, err = repo.Get(ctx, "run-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if run == nil {
		t.Fatal("expected non-nil run")
	}
	if run.Status != StatusProcessing {
		t.Errorf("status = %q, want %q", run.Status, StatusProcessing)
	}
	if run.Title != "Photosynthesis" {
		t.Errorf("title = %q, want 'Photosynthesis'", run.Title)
	}
	if got := run.State["iteration_count"]; got != float64(2) {
		t.Errorf("state iteration_count = %v, want 2", got)
	}
}

func TestRunSaveUpdatesExisting(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()
	ctx := context.Background()

	err := repo.Save(ctx, &PipelineRun{
		RunID:  "run-2",
		Status: StatusQueued,
		State:  map[string]any{},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	err = repo.Save(ctx, &PipelineRun{
		RunID:  "run-2",
		Status: StatusComplete,
		State:  map[string]any{"done": true},
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	run, err := repo.Get(ctx, "run-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if run.Status != StatusComplete {
		t.Errorf("status = %q, want %q", run.Status, StatusComplete)
	}

	// Still a single row.
	count, err := s.Client().PipelineRun.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("run count = %d, want 1", count)
	}
}

func TestRunListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()
	ctx := context.Background()

	for i, id := range []string{"a", "b", "c"} {
		err := repo.Save(ctx, &PipelineRun{
			RunID:  id,
			Status: StatusComplete,
			State:  map[string]any{},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	runs, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].RunID != "c" {
		t.Errorf("runs[0] = %q, want 'c'", runs[0].RunID)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "profile-analysis", RunID: "r1", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "micro-content", RunID: "r1", InputTokens: 200, OutputTokens: 80, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "micro-content", RunID: "r2", Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(all))
	}
	// Newest first.
	if all[0].Purpose != "micro-content" || all[0].RunID != "r2" {
		t.Errorf("events[0] = %s/%s, want micro-content/r2", all[0].Purpose, all[0].RunID)
	}

	byRun, err := repo.QueryLLMEvents(ctx, QueryOpts{RunID: "r1"})
	if err != nil {
		t.Fatalf("query by run: %v", err)
	}
	if len(byRun) != 2 {
		t.Errorf("run r1 events = %d, want 2", len(byRun))
	}

	byPurpose, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "profile-analysis"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Errorf("profile-analysis events = %d, want 1", len(byPurpose))
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "m", Purpose: "highlight", InputTokens: 10, OutputTokens: 5, Success: true},
		{Provider: "openai", Model: "m", Purpose: "highlight", InputTokens: 20, OutputTokens: 10, Success: true},
		{Provider: "openai", Model: "m", Purpose: "syntax-simplify", InputTokens: 30, OutputTokens: 15, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}
	// Sorted by purpose.
	if stats[0].Key != "highlight" {
		t.Errorf("stats[0].Key = %q, want 'highlight'", stats[0].Key)
	}
	if stats[0].Requests != 2 || stats[0].InputTokens != 30 || stats[0].OutputTokens != 15 {
		t.Errorf("highlight stat = %+v, want 2 reqs / 30 in / 15 out", stats[0])
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
