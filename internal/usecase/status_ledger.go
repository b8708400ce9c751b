package usecase

import (
	"context"
	"fmt"
	"iter"
	"time"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/domain/lifecycle"
	"mecanica_workorder/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const defaultHistoryPageSize = 50

// StatusHistoryLedger is the append-only audit log of work order transitions.
//
// Appends only happen inside a lifecycle transaction; there is no public
// write path, so the log and the materialized status cannot diverge.
type StatusHistoryLedger struct {
	machine  *lifecycle.Machine
	pageSize int
}

func NewStatusHistoryLedger(machine *lifecycle.Machine, pageSize int) *StatusHistoryLedger {
	if pageSize <= 0 {
		pageSize = defaultHistoryPageSize
	}
	return &StatusHistoryLedger{machine: machine, pageSize: pageSize}
}

// append records the transition that produced wo. The event sequence is the
// version wo was written with.
func (l *StatusHistoryLedger) append(
	ctx context.Context,
	tx interfaces.IWorkOrderTx,
	wo entities.WorkOrder,
	trigger lifecycle.Trigger,
	stageID, comment, actorID string,
	now time.Time,
) (entities.StatusEvent, error) {
	e := entities.StatusEvent{
		ID:          uuid.NewString(),
		WorkOrderID: wo.ID,
		Sequence:    wo.Version,
		Status:      wo.Status,
		Trigger:     string(trigger),
		StageID:     stageID,
		Comment:     comment,
		ActorID:     actorID,
		CreatedAt:   now,
	}
	if err := tx.AppendStatusEvent(ctx, e); err != nil {
		return entities.StatusEvent{}, classify(err)
	}
	return e, nil
}

// latest returns the event written with the current version of wo. A fresh
// order has none.
func (l *StatusHistoryLedger) latest(ctx context.Context, reader interfaces.IWorkOrderReader, wo entities.WorkOrder) (entities.StatusEvent, bool, error) {
	if wo.Version <= 0 {
		return entities.StatusEvent{}, false, nil
	}
	events, err := reader.ListStatusEvents(ctx, wo.ID, wo.Version-1, 1)
	if err != nil {
		return entities.StatusEvent{}, false, classify(err)
	}
	if len(events) == 0 || events[0].Sequence != wo.Version {
		return entities.StatusEvent{}, false, nil
	}
	return events[0], true, nil
}

// History returns the events of an order in commit order. The sequence is
// lazy (pages are read on demand), finite, and can be ranged over again to
// restart from the first event.
func (l *StatusHistoryLedger) History(ctx context.Context, reader interfaces.IWorkOrderReader, workOrderID string) iter.Seq2[entities.StatusEvent, error] {
	return func(yield func(entities.StatusEvent, error) bool) {
		var after int64
		for {
			page, err := reader.ListStatusEvents(ctx, workOrderID, after, l.pageSize)
			if err != nil {
				yield(entities.StatusEvent{}, classify(err))
				return
			}
			for _, e := range page {
				if !yield(e, nil) {
					return
				}
				after = e.Sequence
			}
			if len(page) < l.pageSize {
				return
			}
		}
	}
}

// Project replays events from the created status, checking every step
// against the transition table, and returns the status the log implies.
func (l *StatusHistoryLedger) Project(events []entities.StatusEvent) (entities.WorkOrderStatus, error) {
	status := entities.WorkOrderStatusCreated
	var last int64
	for _, e := range events {
		if e.Sequence <= last {
			return "", fmt.Errorf("event %s: sequence %d out of order after %d", e.ID, e.Sequence, last)
		}
		if err := l.machine.Validate(status, e.Status, lifecycle.Trigger(e.Trigger)); err != nil {
			return "", fmt.Errorf("event %s (sequence %d): %w", e.ID, e.Sequence, err)
		}
		status = e.Status
		last = e.Sequence
	}
	return status, nil
}

// Collect drains a history sequence into a slice.
func Collect(seq iter.Seq2[entities.StatusEvent, error]) ([]entities.StatusEvent, error) {
	var events []entities.StatusEvent
	for e, err := range seq {
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}
