package entities

import "time"

// WorkOrderChangeEvent is emitted to the notification fan-out after a committed transition.
type WorkOrderChangeEvent struct {
	WorkOrderID    string          `json:"work_order_id"`
	OrderNumber    string          `json:"order_number"`
	NewStatus      WorkOrderStatus `json:"new_status"`
	StageCompleted *WorkOrderStage `json:"stage_completed,omitempty"`
	ActorID        string          `json:"actor_id"`
	Timestamp      time.Time       `json:"timestamp"`
}
