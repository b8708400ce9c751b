package usecase

import (
	"context"
	"errors"
	"testing"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/domain/lifecycle"
	mock_interfaces "mecanica_workorder/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func happyPathEvents() []entities.StatusEvent {
	return []entities.StatusEvent{
		{ID: "e1", Sequence: 1, Status: entities.WorkOrderStatusInProgress, Trigger: string(lifecycle.TriggerAssignMechanic)},
		{ID: "e2", Sequence: 2, Status: entities.WorkOrderStatusInProgress, Trigger: string(lifecycle.TriggerCompleteStage), StageID: "s1"},
		{ID: "e3", Sequence: 3, Status: entities.WorkOrderStatusInProgress, Trigger: string(lifecycle.TriggerCompleteStage), StageID: "s2"},
		{ID: "e4", Sequence: 4, Status: entities.WorkOrderStatusCompleted, Trigger: string(lifecycle.TriggerCompleteLast), StageID: "s3"},
		{ID: "e5", Sequence: 5, Status: entities.WorkOrderStatusQualityPassed, Trigger: string(lifecycle.TriggerSubmitQuality)},
	}
}

func TestStatusHistoryLedger_HistoryPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	reader := mock_interfaces.NewMockIWorkOrderReader(ctrl)
	ledger := NewStatusHistoryLedger(lifecycle.NewMachine(), 2)
	events := happyPathEvents()

	// Ranged twice: the sequence restarts from the first event.
	for i := 0; i < 2; i++ {
		gomock.InOrder(
			reader.EXPECT().ListStatusEvents(gomock.Any(), "wo-1", int64(0), 2).Return(events[0:2], nil),
			reader.EXPECT().ListStatusEvents(gomock.Any(), "wo-1", int64(2), 2).Return(events[2:4], nil),
			reader.EXPECT().ListStatusEvents(gomock.Any(), "wo-1", int64(4), 2).Return(events[4:], nil),
		)
	}

	seq := ledger.History(context.Background(), reader, "wo-1")
	for i := 0; i < 2; i++ {
		got, err := Collect(seq)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got) != 5 {
			t.Fatalf("expected 5 events, got %d", len(got))
		}
		for j, e := range got {
			if e.Sequence != int64(j+1) {
				t.Fatalf("events out of order: %+v", got)
			}
		}
	}
}

func TestStatusHistoryLedger_HistoryStopsEarly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	reader := mock_interfaces.NewMockIWorkOrderReader(ctrl)
	ledger := NewStatusHistoryLedger(lifecycle.NewMachine(), 2)

	reader.EXPECT().ListStatusEvents(gomock.Any(), "wo-1", int64(0), 2).Return(happyPathEvents()[0:2], nil)

	for e, err := range ledger.History(context.Background(), reader, "wo-1") {
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if e.Sequence != 1 {
			t.Fatalf("unexpected first event: %+v", e)
		}
		break
	}
}

func TestStatusHistoryLedger_HistoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	reader := mock_interfaces.NewMockIWorkOrderReader(ctrl)
	ledger := NewStatusHistoryLedger(lifecycle.NewMachine(), 0)

	reader.EXPECT().ListStatusEvents(gomock.Any(), "wo-1", int64(0), defaultHistoryPageSize).Return(nil, errors.New("db"))

	_, err := Collect(ledger.History(context.Background(), reader, "wo-1"))
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestStatusHistoryLedger_Latest(t *testing.T) {
	ledger := NewStatusHistoryLedger(lifecycle.NewMachine(), 2)
	events := happyPathEvents()

	t.Run("fresh order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reader := mock_interfaces.NewMockIWorkOrderReader(ctrl)

		_, ok, err := ledger.latest(context.Background(), reader, entities.WorkOrder{ID: "wo-1"})
		if err != nil || ok {
			t.Fatalf("expected no event, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("event of the current version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reader := mock_interfaces.NewMockIWorkOrderReader(ctrl)
		reader.EXPECT().ListStatusEvents(gomock.Any(), "wo-1", int64(3), 1).Return(events[3:4], nil)

		e, ok, err := ledger.latest(context.Background(), reader, entities.WorkOrder{ID: "wo-1", Version: 4})
		if err != nil || !ok || e.ID != "e4" {
			t.Fatalf("expected e4, got %+v ok=%v err=%v", e, ok, err)
		}
	})

	t.Run("version without event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reader := mock_interfaces.NewMockIWorkOrderReader(ctrl)
		reader.EXPECT().ListStatusEvents(gomock.Any(), "wo-1", int64(5), 1).Return(nil, nil)

		_, ok, err := ledger.latest(context.Background(), reader, entities.WorkOrder{ID: "wo-1", Version: 6})
		if err != nil || ok {
			t.Fatalf("expected no event, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reader := mock_interfaces.NewMockIWorkOrderReader(ctrl)
		reader.EXPECT().ListStatusEvents(gomock.Any(), "wo-1", int64(0), 1).Return(nil, errors.New("timeout"))

		if _, _, err := ledger.latest(context.Background(), reader, entities.WorkOrder{ID: "wo-1", Version: 1}); !errors.Is(err, ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}
	})
}

func TestStatusHistoryLedger_Project(t *testing.T) {
	ledger := NewStatusHistoryLedger(lifecycle.NewMachine(), 0)

	t.Run("empty log is created", func(t *testing.T) {
		got, err := ledger.Project(nil)
		if err != nil || got != entities.WorkOrderStatusCreated {
			t.Fatalf("expected created, got %s, %v", got, err)
		}
	})

	t.Run("happy path", func(t *testing.T) {
		got, err := ledger.Project(happyPathEvents())
		if err != nil || got != entities.WorkOrderStatusQualityPassed {
			t.Fatalf("expected quality_passed, got %s, %v", got, err)
		}
	})

	t.Run("illegal step", func(t *testing.T) {
		events := happyPathEvents()
		events[1].Status = entities.WorkOrderStatusCompleted
		var te *lifecycle.TransitionError
		if _, err := ledger.Project(events); !errors.As(err, &te) {
			t.Fatalf("expected TransitionError, got %v", err)
		}
	})

	t.Run("sequence out of order", func(t *testing.T) {
		events := happyPathEvents()
		events[2].Sequence = 2
		if _, err := ledger.Project(events); err == nil {
			t.Fatalf("expected ordering error")
		}
	})
}
