package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// StageProgress summarizes stage completion of one work order.
type StageProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

// StageCompletion is the outcome of completing the active stage.
type StageCompletion struct {
	Completed  entities.WorkOrderStage
	NextActive *entities.WorkOrderStage
	Last       bool
	Progress   StageProgress
}

// StageSequencer instantiates the stages of a work order from the catalog
// and moves the active stage forward, one stage at a time.
type StageSequencer struct {
	catalog IStageCatalog
}

func NewStageSequencer(catalog IStageCatalog) *StageSequencer {
	return &StageSequencer{catalog: catalog}
}

// Plan loads the catalog the stages of a new order are created from. It is
// read before the order transaction opens so the catalog store is never
// queried while a work order row is held.
func (s *StageSequencer) Plan(ctx context.Context) ([]entities.StageTemplate, error) {
	templates, err := s.catalog.Stages(ctx)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, ErrEmptyStageCatalog
	}
	return templates, nil
}

// Instantiate creates one incomplete stage per template of plan.
func (s *StageSequencer) Instantiate(ctx context.Context, tx interfaces.IWorkOrderTx, workOrderID string, plan []entities.StageTemplate) ([]entities.WorkOrderStage, error) {
	if len(plan) == 0 {
		return nil, ErrEmptyStageCatalog
	}
	existing, err := tx.ListStages(ctx, workOrderID)
	if err != nil {
		return nil, classify(err)
	}
	if len(existing) > 0 {
		return nil, ErrAlreadyInstantiated
	}

	stages := make([]entities.WorkOrderStage, 0, len(plan))
	for _, t := range plan {
		stages = append(stages, entities.WorkOrderStage{
			ID:              uuid.NewString(),
			WorkOrderID:     workOrderID,
			StageTemplateID: t.ID,
			SequenceIndex:   t.SequenceIndex,
			Name:            t.Name,
		})
	}
	if err := tx.CreateStages(ctx, stages); err != nil {
		return nil, classify(err)
	}
	return stages, nil
}

// ActiveStage loads the stages of an order and returns its active stage.
func (s *StageSequencer) ActiveStage(ctx context.Context, reader interfaces.IWorkOrderReader, workOrderID string) (entities.WorkOrderStage, bool, error) {
	stages, err := reader.ListStages(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrderStage{}, false, classify(err)
	}
	active, ok := ActiveStageOf(stages)
	return active, ok, nil
}

// CompleteActive completes the active stage of an order. When expectedStageID
// is set, the call is refused unless that stage is the active one.
func (s *StageSequencer) CompleteActive(
	ctx context.Context,
	tx interfaces.IWorkOrderTx,
	workOrderID, expectedStageID, comment, actorID string,
	now time.Time,
) (StageCompletion, error) {
	stages, err := tx.ListStages(ctx, workOrderID)
	if err != nil {
		return StageCompletion{}, classify(err)
	}
	if len(stages) == 0 {
		return StageCompletion{}, ErrStagesNotFound
	}
	if err := checkCompletedPrefix(stages); err != nil {
		return StageCompletion{}, err
	}

	idx := activeIndex(stages)
	if idx < 0 {
		return StageCompletion{}, ErrNoActiveStage
	}
	if expectedStageID != "" && stages[idx].ID != expectedStageID {
		return StageCompletion{}, fmt.Errorf("%w: stage %s is not the active stage (active is %s)", ErrNoActiveStage, expectedStageID, stages[idx].ID)
	}

	completedAt := now
	completed := stages[idx]
	completed.IsCompleted = true
	completed.CompletedAt = &completedAt
	completed.CompletedBy = actorID
	completed.Comment = comment
	if err := tx.CompleteStage(ctx, completed); err != nil {
		return StageCompletion{}, classify(err)
	}
	stages[idx] = completed

	result := StageCompletion{Completed: completed, Progress: ProgressOf(stages)}
	if next, ok := ActiveStageOf(stages); ok {
		result.NextActive = &next
	} else {
		result.Last = true
	}
	return result, nil
}

// ActiveStageOf returns the lowest-index incomplete stage.
func ActiveStageOf(stages []entities.WorkOrderStage) (entities.WorkOrderStage, bool) {
	idx := activeIndex(stages)
	if idx < 0 {
		return entities.WorkOrderStage{}, false
	}
	return stages[idx], true
}

func activeIndex(stages []entities.WorkOrderStage) int {
	idx := -1
	for i, st := range stages {
		if st.IsCompleted {
			continue
		}
		if idx < 0 || st.SequenceIndex < stages[idx].SequenceIndex {
			idx = i
		}
	}
	return idx
}

// ProgressOf computes round(100 * completed / total), 0 for an order without stages.
func ProgressOf(stages []entities.WorkOrderStage) StageProgress {
	p := StageProgress{Total: len(stages)}
	for _, st := range stages {
		if st.IsCompleted {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = int(math.Round(100 * float64(p.Completed) / float64(p.Total)))
	}
	return p
}

// checkCompletedPrefix verifies that completed stages, ordered by sequence
// index, form a contiguous prefix. stages must be sorted ascending.
func checkCompletedPrefix(stages []entities.WorkOrderStage) error {
	open := false
	for _, st := range stages {
		if !st.IsCompleted {
			open = true
			continue
		}
		if open {
			return fmt.Errorf("%w: stage %s completed after an open stage", ErrStorage, st.ID)
		}
	}
	return nil
}
