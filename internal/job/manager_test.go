package job

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairedu/adapt/internal/llm"
	"github.com/fairedu/adapt/internal/pipeline"
	"github.com/fairedu/adapt/internal/state"
	"github.com/fairedu/adapt/internal/store"
)

// memRunRepo is an in-memory store.RunRepo for manager tests.
type memRunRepo struct {
	mu   sync.Mutex
	runs map[string]*store.PipelineRun
}

func newMemRunRepo() *memRunRepo {
	return &memRunRepo{runs: map[string]*store.PipelineRun{}}
}

func (r *memRunRepo) Save(_ context.Context, run *store.PipelineRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := *run
	r.runs[run.RunID] = &saved
	return nil
}

func (r *memRunRepo) Get(_ context.Context, runID string) (*store.PipelineRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.runs[runID]
	if !ok {
		return nil, nil
	}
	out := *run
	return &out, nil
}

func (r *memRunRepo) List(_ context.Context, _ int) ([]store.PipelineRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]store.PipelineRun, 0, len(r.runs))
	for _, run := range r.runs {
		out = append(out, *run)
	}
	return out, nil
}

func TestProcessCompletesRun(t *testing.T) {
	// Empty questionnaire skips the profile model call; the remaining
	// calls are division, simplification, and one expansion per unit.
	mock := llm.NewMockTextProvider(
		"Unit 1\nFirst block.\n\nUnit 2\nSecond block.",
		"Simplified Text:\nShort sentences.",
		"Detailed content one.",
		"Detailed content two.",
	)
	m := NewManager(mock, newMemRunRepo())

	run, err := m.Process(context.Background(), Submission{
		Title:   "Linked Lists",
		Content: "A linked list is a sequence of nodes connected by pointers.",
	})
	require.NoError(t, err)

	assert.Equal(t, store.StatusComplete, run.Status, run.ErrorMessage)
	assert.Equal(t, "en", run.Language)

	st, err := StateFromMap(run.State)
	require.NoError(t, err)
	assert.Len(t, st.ProcessedContent.MicroUnits, 2)
	assert.NotNil(t, st.ProcessedContent.SimplifiedText)
	assert.Len(t, st.ProcessedContent.DetailedUnits, 2)
	assert.NotNil(t, st.UserProfile.Analysis)
	assert.Equal(t, state.FocusContentGenerated, st.CurrentFocus)
}

func TestProcessCompletesOnFallbacksAlone(t *testing.T) {
	// No canned responses at all: every stage falls back, and the run
	// still finishes.
	mock := llm.NewMockProvider()
	m := NewManager(mock, newMemRunRepo())

	run, err := m.Process(context.Background(), Submission{
		Title:   "Linked Lists",
		Content: "A linked list is a sequence of nodes connected by pointers.",
	})
	require.NoError(t, err)
	assert.Equal(t, store.StatusComplete, run.Status)

	st, err := StateFromMap(run.State)
	require.NoError(t, err)
	require.NotEmpty(t, st.ProcessedContent.MicroUnits)
	assert.True(t, st.ProcessedContent.SimplifiedText.HasTiers())
	// Failed expansions keep the unit outlines.
	assert.Len(t, st.ProcessedContent.DetailedUnits, len(st.ProcessedContent.MicroUnits))
}

// stageFunc adapts a function to the pipeline stage interface.
type stageFunc func(*state.ProcessingState) *state.ProcessingState

func (f stageFunc) Run(_ context.Context, st *state.ProcessingState) *state.ProcessingState {
	return f(st)
}

func TestProcessCapHitReportsIncomplete(t *testing.T) {
	// A simplifier that never fills its slot drives the loop into the
	// iteration cap. Expansion still runs (units exist) and moves the
	// focus forward, but the run must stay incomplete.
	m := NewManager(llm.NewMockProvider(), newMemRunRepo())
	m.newRunner = func(state.UserProfile, string) *pipeline.Runner {
		return &pipeline.Runner{
			Profile: stageFunc(func(st *state.ProcessingState) *state.ProcessingState {
				out := st.Clone()
				out.UserProfile.Analysis = &state.Analysis{DifficultyType: state.DifficultyADHD, SeverityLevel: 3}
				out.CurrentFocus = state.FocusProfileAnalyzed
				return out
			}),
			MicroContent: stageFunc(func(st *state.ProcessingState) *state.ProcessingState {
				out := st.Clone()
				out.ProcessedContent.MicroUnits = []state.MicroUnit{{Content: "u", UnitNumber: 1, EstimatedTimeMinutes: 5}}
				out.CurrentFocus = state.FocusMicroContentDone
				return out
			}),
			Simplify: stageFunc(func(st *state.ProcessingState) *state.ProcessingState { return st }),
		}
	}

	run, err := m.Process(context.Background(), Submission{
		Title:   "Doc",
		Content: "Some material to adapt into units.",
	})
	require.NoError(t, err)

	assert.Equal(t, store.StatusIncomplete, run.Status)
	assert.Contains(t, run.ErrorMessage, "stopped at")

	st, err := StateFromMap(run.State)
	require.NoError(t, err)
	assert.NotEqual(t, state.FocusAllComplete, st.CurrentFocus)
}

func TestSubmitRunsInBackground(t *testing.T) {
	mock := llm.NewMockProvider()
	repo := newMemRunRepo()
	m := NewManager(mock, repo)

	runID, err := m.Submit(context.Background(), Submission{
		Title:   "Doc",
		Content: "Some material to adapt into units.",
	})
	require.NoError(t, err)
	m.Wait()

	run, err := repo.Get(context.Background(), runID)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, store.StatusComplete, run.Status)
}

func TestInitialStateDetectsLanguage(t *testing.T) {
	st := initialState(Submission{
		Title:   "链表",
		Content: "链表是一种常见的线性数据结构，由一系列节点组成。",
	})
	assert.Equal(t, "zh", st.Metadata["language"])

	st = initialState(Submission{
		Title:    "Doc",
		Content:  "链表是一种常见的线性数据结构。",
		Language: "en",
	})
	assert.Equal(t, "en", st.Metadata["language"], "forced language wins over detection")
}

func TestEstimateReadingTime(t *testing.T) {
	assert.Equal(t, 1, estimateReadingTime("one two three"))
	assert.Equal(t, 3, estimateReadingTime(strings.Repeat("word ", 600)))
}
