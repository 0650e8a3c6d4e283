package store

import (
	"context"
	"fmt"

	"github.com/fairedu/adapt/ent"
	"github.com/fairedu/adapt/ent/pipelinerun"
)

// runRepo implements RunRepo using the ent client.
type runRepo struct {
	client *ent.Client
}

func (r *runRepo) Save(ctx context.Context, run *PipelineRun) error {
	existing, err := r.client.PipelineRun.Query().
		Where(pipelinerun.RunID(run.RunID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("lookup run %s: %w", run.RunID, err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetStatus(run.Status).
			SetTitle(run.Title).
			SetLanguage(run.Language).
			SetState(run.State).
			SetErrorMessage(run.ErrorMessage).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update run %s: %w", run.RunID, err)
		}
		return nil
	}

	_, err = r.client.PipelineRun.Create().
		SetRunID(run.RunID).
		SetStatus(run.Status).
		SetTitle(run.Title).
		SetLanguage(run.Language).
		SetState(run.State).
		SetErrorMessage(run.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save run %s: %w", run.RunID, err)
	}
	return nil
}

func (r *runRepo) Get(ctx context.Context, runID string) (*PipelineRun, error) {
	e, err := r.client.PipelineRun.Query().
		Where(pipelinerun.RunID(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query run %s: %w", runID, err)
	}
	run := entRunToRun(e)
	return &run, nil
}

func (r *runRepo) List(ctx context.Context, limit int) ([]PipelineRun, error) {
	query := r.client.PipelineRun.Query().
		Order(ent.Desc(pipelinerun.FieldCreatedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	entRuns, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	runs := make([]PipelineRun, len(entRuns))
	for i, e := range entRuns {
		runs[i] = entRunToRun(e)
	}
	return runs, nil
}

func entRunToRun(e *ent.PipelineRun) PipelineRun {
	return PipelineRun{
		ID:           e.ID,
		RunID:        e.RunID,
		Status:       e.Status,
		Title:        e.Title,
		Language:     e.Language,
		State:        e.State,
		ErrorMessage: e.ErrorMessage,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
