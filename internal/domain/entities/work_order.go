package entities

import "time"

// WorkOrderStatus is the execution state of a work order (OS).
//
// Domain notes:
//   - The status is a materialized projection of the work order's status events.
//   - An order without events is in WorkOrderStatusCreated.
//   - Allowed moves between statuses live in the lifecycle package.
type WorkOrderStatus string

const (
	WorkOrderStatusCreated       WorkOrderStatus = "created"
	WorkOrderStatusInProgress    WorkOrderStatus = "in_progress"
	WorkOrderStatusPartsWaiting  WorkOrderStatus = "parts_waiting"
	WorkOrderStatusCompleted     WorkOrderStatus = "completed"
	WorkOrderStatusQualityPassed WorkOrderStatus = "quality_passed"
	WorkOrderStatusQualityIssues WorkOrderStatus = "quality_issues"
	WorkOrderStatusCancelled     WorkOrderStatus = "cancelled"
)

// AllWorkOrderStatuses lists every defined status in lifecycle order.
var AllWorkOrderStatuses = []WorkOrderStatus{
	WorkOrderStatusCreated,
	WorkOrderStatusInProgress,
	WorkOrderStatusPartsWaiting,
	WorkOrderStatusCompleted,
	WorkOrderStatusQualityPassed,
	WorkOrderStatusQualityIssues,
	WorkOrderStatusCancelled,
}

// Valid reports whether s is one of the defined statuses.
func (s WorkOrderStatus) Valid() bool {
	for _, known := range AllWorkOrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no forward work is possible from s.
// Quality states still accept a re-evaluated verdict.
func (s WorkOrderStatus) IsTerminal() bool {
	switch s {
	case WorkOrderStatusQualityPassed, WorkOrderStatusQualityIssues, WorkOrderStatusCancelled:
		return true
	}
	return false
}

// IsQualityTerminal reports whether s carries a quality verdict.
func (s WorkOrderStatus) IsQualityTerminal() bool {
	return s == WorkOrderStatusQualityPassed || s == WorkOrderStatusQualityIssues
}

// WorkOrder is one repair job.
//
// Storage model:
//   - PK: id
//   - unique: order_number
//
// Version is incremented on every committed transition and guards concurrent writers.
type WorkOrder struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	Status      WorkOrderStatus `json:"status"`
	MechanicID  string          `json:"mechanic_id,omitempty"`
	TotalCost   float64         `json:"total_cost"`
	Version     int64           `json:"version"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
