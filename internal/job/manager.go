// Package job runs document adaptations end to end: it builds the
// initial processing state from a submission, drives the routed
// pipeline, expands the resulting units, and persists every state
// transition.
package job

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/fairedu/adapt/internal/expand"
	"github.com/fairedu/adapt/internal/highlight"
	"github.com/fairedu/adapt/internal/language"
	"github.com/fairedu/adapt/internal/llm"
	"github.com/fairedu/adapt/internal/microcontent"
	"github.com/fairedu/adapt/internal/pipeline"
	"github.com/fairedu/adapt/internal/profile"
	"github.com/fairedu/adapt/internal/simplify"
	"github.com/fairedu/adapt/internal/state"
	"github.com/fairedu/adapt/internal/store"
)

// wordsPerMinute is the reading speed used for the time estimate.
const wordsPerMinute = 200

// Submission is one document to adapt.
type Submission struct {
	Title         string
	Content       string
	Language      string // "auto", "en", or "zh"; empty means auto
	Questionnaire map[string]any
}

// Manager owns pipeline runs. Each submission gets its own goroutine
// and its own run id; results land in the run store.
type Manager struct {
	provider llm.Provider
	runs     store.RunRepo
	wg       sync.WaitGroup

	// newRunner builds the stage set for one run. Overridable in tests.
	newRunner func(state.UserProfile, string) *pipeline.Runner
}

// NewManager creates a run manager.
func NewManager(provider llm.Provider, runs store.RunRepo) *Manager {
	m := &Manager{provider: provider, runs: runs}
	m.newRunner = m.runner
	return m
}

// Submit queues the document and processes it in the background. The
// returned run id can be polled through the run store.
func (m *Manager) Submit(ctx context.Context, sub Submission) (string, error) {
	runID := uuid.NewString()

	st := initialState(sub)
	run := &store.PipelineRun{
		RunID:    runID,
		Status:   store.StatusQueued,
		Title:    sub.Title,
		Language: st.Metadata["language"],
		State:    stateToMap(st),
	}
	if err := m.runs.Save(ctx, run); err != nil {
		return "", fmt.Errorf("persisting queued run: %w", err)
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		// The submit context may end with the caller; the run should not.
		bg := context.WithoutCancel(ctx)
		if err := m.process(bg, runID, st); err != nil {
			m.markFailed(bg, runID, err)
		}
	}()

	return runID, nil
}

// Process runs the submission synchronously and returns the finished
// run record.
func (m *Manager) Process(ctx context.Context, sub Submission) (*store.PipelineRun, error) {
	runID := uuid.NewString()

	st := initialState(sub)
	run := &store.PipelineRun{
		RunID:    runID,
		Status:   store.StatusQueued,
		Title:    sub.Title,
		Language: st.Metadata["language"],
		State:    stateToMap(st),
	}
	if err := m.runs.Save(ctx, run); err != nil {
		return nil, fmt.Errorf("persisting queued run: %w", err)
	}

	if err := m.process(ctx, runID, st); err != nil {
		return nil, err
	}
	return m.runs.Get(ctx, runID)
}

// Wait blocks until all background runs have finished.
func (m *Manager) Wait() {
	m.wg.Wait()
}

func (m *Manager) process(ctx context.Context, runID string, st *state.ProcessingState) error {
	ctx = llm.WithRunID(ctx, runID)
	lang := st.Metadata["language"]

	run, err := m.runs.Get(ctx, runID)
	if err != nil || run == nil {
		return fmt.Errorf("loading run %s: %w", runID, err)
	}

	run.Status = store.StatusProcessing
	if err := m.runs.Save(ctx, run); err != nil {
		return fmt.Errorf("persisting processing run: %w", err)
	}

	final := m.newRunner(st.UserProfile, lang).Run(ctx, st)

	// Expansion overwrites the focus, so remember whether the routed
	// loop itself finished before the iteration cap.
	routedComplete := final.CurrentFocus == state.FocusAllComplete

	if len(final.ProcessedContent.MicroUnits) > 0 {
		exp := expand.New(m.provider, expandConfig(lang))
		final = exp.Run(ctx, final)
	}

	run.State = stateToMap(final)
	if routedComplete {
		run.Status = store.StatusComplete
	} else {
		run.Status = store.StatusIncomplete
		run.ErrorMessage = fmt.Sprintf("stopped at %s after %d iterations", final.CurrentFocus, final.IterationCount)
	}

	if err := m.runs.Save(ctx, run); err != nil {
		return fmt.Errorf("persisting finished run: %w", err)
	}
	return nil
}

// markFailed is the best-effort terminal write when processing itself
// could not record a result.
func (m *Manager) markFailed(ctx context.Context, runID string, cause error) {
	run, err := m.runs.Get(ctx, runID)
	if err != nil || run == nil {
		return
	}
	run.Status = store.StatusFailed
	run.ErrorMessage = cause.Error()
	_ = m.runs.Save(ctx, run)
}

// runner assembles the per-run stage set. The highlight engine follows
// the learner's modality preference and detects spans via the model,
// degrading to rules inside the detector.
func (m *Manager) runner(up state.UserProfile, lang string) *pipeline.Runner {
	detector := highlight.NewLLMDetector(m.provider, 2000, 0.3, lang)
	engine := highlight.EngineForProfile(detector, up, highlight.HTMLRenderer{})

	profileCfg := profile.DefaultConfig()
	profileCfg.Language = lang
	microCfg := microcontent.DefaultConfig()
	microCfg.Language = lang
	simplifyCfg := simplify.DefaultConfig()
	simplifyCfg.Language = lang

	return &pipeline.Runner{
		Profile:      profile.NewStage(profile.NewAnalyzer(m.provider, profileCfg)),
		MicroContent: microcontent.NewStage(m.provider, microCfg, engine),
		Simplify:     simplify.NewStage(m.provider, simplifyCfg, engine),
	}
}

func expandConfig(lang string) expand.Config {
	cfg := expand.DefaultConfig()
	cfg.Language = lang
	return cfg
}

// initialState builds the processing state for one submission,
// detecting the document language when none was forced.
func initialState(sub Submission) *state.ProcessingState {
	lang := sub.Language
	if lang == "" || lang == "auto" {
		lang = language.Detect(sub.Content)
	}

	st := state.New(
		state.UserProfile{QuestionnaireAnswers: sub.Questionnaire},
		state.LearningMaterials{
			Title:                       sub.Title,
			CurrentContent:              sub.Content,
			Type:                        "text",
			DifficultyLevel:             "intermediate",
			EstimatedReadingTimeMinutes: estimateReadingTime(sub.Content),
		},
	)
	st.Metadata["language"] = lang
	return st
}

func estimateReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := int(math.Round(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// stateToMap serializes the state for persistence. The JSON round-trip
// keeps the stored shape identical to the wire shape.
func stateToMap(st *state.ProcessingState) map[string]any {
	data, err := json.Marshal(st)
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any{}
	}
	return out
}

// StateFromMap reconstructs a processing state from a stored run.
func StateFromMap(m map[string]any) (*state.ProcessingState, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var st state.ProcessingState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	return &st, nil
}
