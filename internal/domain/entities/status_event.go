package entities

import "time"

// StatusEvent is one immutable audit record of a status or stage transition.
//
// Storage model:
//   - PK: id
//   - unique: (work_order_id, sequence)
//
// Sequence equals the work order version produced by the transition, so the
// events of one order are totally ordered. StageID is set when the event
// records a stage completion.
type StatusEvent struct {
	ID          string          `json:"id"`
	WorkOrderID string          `json:"work_order_id"`
	Sequence    int64           `json:"sequence"`
	Status      WorkOrderStatus `json:"status"`
	Trigger     string          `json:"trigger"`
	StageID     string          `json:"stage_id,omitempty"`
	Comment     string          `json:"comment,omitempty"`
	ActorID     string          `json:"actor_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// IsStageCompletion reports whether the event records a completed stage.
func (e StatusEvent) IsStageCompletion() bool {
	return e.StageID != ""
}
