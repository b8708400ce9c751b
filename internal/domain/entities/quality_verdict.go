package entities

import "time"

type QualityOutcome string

const (
	QualityOutcomePassed QualityOutcome = "passed"
	QualityOutcomeIssues QualityOutcome = "issues"
)

func (o QualityOutcome) Valid() bool {
	return o == QualityOutcomePassed || o == QualityOutcomeIssues
}

// TargetStatus is the work order status a verdict with this outcome leads to.
func (o QualityOutcome) TargetStatus() WorkOrderStatus {
	if o == QualityOutcomePassed {
		return WorkOrderStatusQualityPassed
	}
	return WorkOrderStatusQualityIssues
}

// QualityVerdict is the latest quality check of a work order.
//
// Unlike status events a verdict is mutable: a re-check overwrites it (one per order).
type QualityVerdict struct {
	ID          string         `json:"id"`
	WorkOrderID string         `json:"work_order_id"`
	Outcome     QualityOutcome `json:"outcome"`
	Comment     string         `json:"comment,omitempty"`
	CheckedBy   string         `json:"checked_by"`
	CheckedAt   time.Time      `json:"checked_at"`
}
