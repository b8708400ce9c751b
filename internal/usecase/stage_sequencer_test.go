package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mecanica_workorder/internal/domain/entities"
	mock_interfaces "mecanica_workorder/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type stubCatalog struct {
	templates []entities.StageTemplate
	err       error
}

func (s stubCatalog) Stages(context.Context) ([]entities.StageTemplate, error) {
	return s.templates, s.err
}

func threeTemplates() []entities.StageTemplate {
	return []entities.StageTemplate{
		{ID: "t1", Name: "Diagnóstico", SequenceIndex: 1},
		{ID: "t2", Name: "Reparo", SequenceIndex: 2},
		{ID: "t3", Name: "Teste de rodagem", SequenceIndex: 3},
	}
}

func threeStages(completed int) []entities.WorkOrderStage {
	stages := []entities.WorkOrderStage{
		{ID: "s1", WorkOrderID: "wo-1", StageTemplateID: "t1", SequenceIndex: 1, Name: "Diagnóstico"},
		{ID: "s2", WorkOrderID: "wo-1", StageTemplateID: "t2", SequenceIndex: 2, Name: "Reparo"},
		{ID: "s3", WorkOrderID: "wo-1", StageTemplateID: "t3", SequenceIndex: 3, Name: "Teste de rodagem"},
	}
	for i := 0; i < completed; i++ {
		at := time.Date(2026, 3, 2, 10, i, 0, 0, time.UTC)
		stages[i].IsCompleted = true
		stages[i].CompletedAt = &at
		stages[i].CompletedBy = "mech-1"
	}
	return stages
}

func TestStageSequencer_Plan(t *testing.T) {
	s := NewStageSequencer(stubCatalog{})
	if _, err := s.Plan(context.Background()); !errors.Is(err, ErrEmptyStageCatalog) {
		t.Fatalf("expected ErrEmptyStageCatalog, got %v", err)
	}

	s = NewStageSequencer(stubCatalog{err: ErrInvalidStageCatalog})
	if _, err := s.Plan(context.Background()); !errors.Is(err, ErrInvalidStageCatalog) {
		t.Fatalf("expected ErrInvalidStageCatalog, got %v", err)
	}

	s = NewStageSequencer(stubCatalog{templates: threeTemplates()})
	plan, err := s.Plan(context.Background())
	if err != nil || len(plan) != 3 {
		t.Fatalf("unexpected plan %+v, %v", plan, err)
	}
}

func TestStageSequencer_Instantiate(t *testing.T) {
	t.Run("one stage per template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tx := mock_interfaces.NewMockIWorkOrderTx(ctrl)
		s := NewStageSequencer(stubCatalog{})

		tx.EXPECT().ListStages(gomock.Any(), "wo-1").Return(nil, nil)
		tx.EXPECT().CreateStages(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, stages []entities.WorkOrderStage) error {
				if len(stages) != 3 {
					t.Fatalf("expected 3 stages, got %d", len(stages))
				}
				for i, st := range stages {
					if st.ID == "" || st.WorkOrderID != "wo-1" || st.SequenceIndex != i+1 || st.IsCompleted {
						t.Fatalf("unexpected stage: %+v", st)
					}
				}
				if stages[1].StageTemplateID != "t2" || stages[1].Name != "Reparo" {
					t.Fatalf("template not copied: %+v", stages[1])
				}
				return nil
			},
		)

		stages, err := s.Instantiate(context.Background(), tx, "wo-1", threeTemplates())
		if err != nil || len(stages) != 3 {
			t.Fatalf("unexpected result %+v, %v", stages, err)
		}
	})

	t.Run("already instantiated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tx := mock_interfaces.NewMockIWorkOrderTx(ctrl)
		s := NewStageSequencer(stubCatalog{})

		tx.EXPECT().ListStages(gomock.Any(), "wo-1").Return(threeStages(0), nil)

		_, err := s.Instantiate(context.Background(), tx, "wo-1", threeTemplates())
		if !errors.Is(err, ErrAlreadyInstantiated) {
			t.Fatalf("expected ErrAlreadyInstantiated, got %v", err)
		}
	})

	t.Run("empty plan", func(t *testing.T) {
		s := NewStageSequencer(stubCatalog{})
		_, err := s.Instantiate(context.Background(), nil, "wo-1", nil)
		if !errors.Is(err, ErrEmptyStageCatalog) {
			t.Fatalf("expected ErrEmptyStageCatalog, got %v", err)
		}
	})
}

func TestStageSequencer_CompleteActive(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("completes lowest open stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tx := mock_interfaces.NewMockIWorkOrderTx(ctrl)
		s := NewStageSequencer(stubCatalog{})

		tx.EXPECT().ListStages(gomock.Any(), "wo-1").Return(threeStages(1), nil)
		tx.EXPECT().CompleteStage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, st entities.WorkOrderStage) error {
				if st.ID != "s2" || !st.IsCompleted || st.CompletedBy != "mech-1" || st.Comment != "ok" {
					t.Fatalf("unexpected completed stage: %+v", st)
				}
				if st.CompletedAt == nil || !st.CompletedAt.Equal(now) {
					t.Fatalf("unexpected completed at: %v", st.CompletedAt)
				}
				return nil
			},
		)

		res, err := s.CompleteActive(context.Background(), tx, "wo-1", "", "ok", "mech-1", now)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Last || res.NextActive == nil || res.NextActive.ID != "s3" {
			t.Fatalf("expected s3 to become active, got %+v", res)
		}
		if res.Progress != (StageProgress{Completed: 2, Total: 3, Percent: 67}) {
			t.Fatalf("unexpected progress: %+v", res.Progress)
		}
	})

	t.Run("last stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tx := mock_interfaces.NewMockIWorkOrderTx(ctrl)
		s := NewStageSequencer(stubCatalog{})

		tx.EXPECT().ListStages(gomock.Any(), "wo-1").Return(threeStages(2), nil)
		tx.EXPECT().CompleteStage(gomock.Any(), gomock.Any()).Return(nil)

		res, err := s.CompleteActive(context.Background(), tx, "wo-1", "s3", "", "mech-1", now)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.Last || res.NextActive != nil || res.Progress.Percent != 100 {
			t.Fatalf("expected last stage, got %+v", res)
		}
	})

	t.Run("expected stage is not active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tx := mock_interfaces.NewMockIWorkOrderTx(ctrl)
		s := NewStageSequencer(stubCatalog{})

		tx.EXPECT().ListStages(gomock.Any(), "wo-1").Return(threeStages(0), nil)

		_, err := s.CompleteActive(context.Background(), tx, "wo-1", "s2", "", "mech-1", now)
		if !errors.Is(err, ErrNoActiveStage) {
			t.Fatalf("expected ErrNoActiveStage, got %v", err)
		}
	})

	t.Run("all completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tx := mock_interfaces.NewMockIWorkOrderTx(ctrl)
		s := NewStageSequencer(stubCatalog{})

		tx.EXPECT().ListStages(gomock.Any(), "wo-1").Return(threeStages(3), nil)

		_, err := s.CompleteActive(context.Background(), tx, "wo-1", "", "", "mech-1", now)
		if !errors.Is(err, ErrNoActiveStage) {
			t.Fatalf("expected ErrNoActiveStage, got %v", err)
		}
	})

	t.Run("no stages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tx := mock_interfaces.NewMockIWorkOrderTx(ctrl)
		s := NewStageSequencer(stubCatalog{})

		tx.EXPECT().ListStages(gomock.Any(), "wo-1").Return(nil, nil)

		_, err := s.CompleteActive(context.Background(), tx, "wo-1", "", "", "mech-1", now)
		if !errors.Is(err, ErrStagesNotFound) {
			t.Fatalf("expected ErrStagesNotFound, got %v", err)
		}
	})

	t.Run("completed stages with a hole", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tx := mock_interfaces.NewMockIWorkOrderTx(ctrl)
		s := NewStageSequencer(stubCatalog{})

		stages := threeStages(0)
		stages[2].IsCompleted = true
		tx.EXPECT().ListStages(gomock.Any(), "wo-1").Return(stages, nil)

		_, err := s.CompleteActive(context.Background(), tx, "wo-1", "", "", "mech-1", now)
		if !errors.Is(err, ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}
	})

	t.Run("stage completed concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tx := mock_interfaces.NewMockIWorkOrderTx(ctrl)
		s := NewStageSequencer(stubCatalog{})

		tx.EXPECT().ListStages(gomock.Any(), "wo-1").Return(threeStages(0), nil)
		tx.EXPECT().CompleteStage(gomock.Any(), gomock.Any()).Return(ErrConcurrentModification)

		_, err := s.CompleteActive(context.Background(), tx, "wo-1", "", "", "mech-1", now)
		if !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}

func TestProgressOf(t *testing.T) {
	cases := []struct {
		name      string
		completed int
		total     int
		percent   int
	}{
		{"no stages", 0, 0, 0},
		{"none done", 0, 3, 0},
		{"one of three", 1, 3, 33},
		{"two of three", 2, 3, 67},
		{"one of eight", 1, 8, 13},
		{"all done", 5, 5, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stages := make([]entities.WorkOrderStage, tc.total)
			for i := range stages {
				stages[i].SequenceIndex = i + 1
				stages[i].IsCompleted = i < tc.completed
			}
			got := ProgressOf(stages)
			if got.Completed != tc.completed || got.Total != tc.total || got.Percent != tc.percent {
				t.Fatalf("ProgressOf() = %+v, want %d/%d %d%%", got, tc.completed, tc.total, tc.percent)
			}
		})
	}
}

func TestActiveStageOf(t *testing.T) {
	stages := threeStages(0)
	// Unsorted input still yields the lowest open index.
	stages[0], stages[2] = stages[2], stages[0]
	active, ok := ActiveStageOf(stages)
	if !ok || active.ID != "s1" {
		t.Fatalf("expected s1, got %+v", active)
	}
	if _, ok := ActiveStageOf(threeStages(3)); ok {
		t.Fatalf("expected no active stage")
	}
}
