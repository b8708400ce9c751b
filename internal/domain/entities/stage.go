package entities

import "time"

// StageTemplate is one reusable kind of work step (diagnostic, disassembly, repair...).
// SequenceIndex is unique and dense (1..N) across the catalog.
type StageTemplate struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	SequenceIndex int    `json:"sequence_index"`
}

// WorkOrderStage is a stage instance bound to a work order.
//
// All instances of an order are created together, mirroring the catalog order.
// Name and SequenceIndex are copied from the template so later catalog edits
// do not reorder running orders.
type WorkOrderStage struct {
	ID              string     `json:"id"`
	WorkOrderID     string     `json:"work_order_id"`
	StageTemplateID string     `json:"stage_template_id"`
	SequenceIndex   int        `json:"sequence_index"`
	Name            string     `json:"name"`
	IsCompleted     bool       `json:"is_completed"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CompletedBy     string     `json:"completed_by,omitempty"`
	Comment         string     `json:"comment,omitempty"`
}
