// Package lifecycle holds the work order state machine: the closed set of
// triggers and the table of transitions they may cause.
package lifecycle

import (
	"fmt"

	"mecanica_workorder/internal/domain/entities"
)

// Trigger names the operation that caused a transition. It is recorded on
// every status event.
type Trigger string

const (
	TriggerAssignMechanic   Trigger = "assign_mechanic"
	TriggerMarkPartsWaiting Trigger = "mark_parts_waiting"
	TriggerPartsArrived     Trigger = "parts_arrived"
	TriggerCompleteStage    Trigger = "complete_stage"
	TriggerCompleteLast     Trigger = "complete_last_stage"
	TriggerSubmitQuality    Trigger = "submit_quality"
	TriggerCancel           Trigger = "cancel"
)

// TransitionRule defines an allowed status transition.
type TransitionRule struct {
	From    entities.WorkOrderStatus
	To      entities.WorkOrderStatus
	Trigger Trigger
}

// DefaultTransitions is the work order transition table.
//
// complete_stage keeps the order in progress and only records the stage.
// submit_quality from a quality state is a re-evaluation of the verdict.
var DefaultTransitions = []TransitionRule{
	{From: entities.WorkOrderStatusCreated, To: entities.WorkOrderStatusInProgress, Trigger: TriggerAssignMechanic},
	{From: entities.WorkOrderStatusInProgress, To: entities.WorkOrderStatusPartsWaiting, Trigger: TriggerMarkPartsWaiting},
	{From: entities.WorkOrderStatusPartsWaiting, To: entities.WorkOrderStatusInProgress, Trigger: TriggerPartsArrived},
	{From: entities.WorkOrderStatusInProgress, To: entities.WorkOrderStatusInProgress, Trigger: TriggerCompleteStage},
	{From: entities.WorkOrderStatusInProgress, To: entities.WorkOrderStatusCompleted, Trigger: TriggerCompleteLast},

	{From: entities.WorkOrderStatusCompleted, To: entities.WorkOrderStatusQualityPassed, Trigger: TriggerSubmitQuality},
	{From: entities.WorkOrderStatusCompleted, To: entities.WorkOrderStatusQualityIssues, Trigger: TriggerSubmitQuality},
	{From: entities.WorkOrderStatusQualityPassed, To: entities.WorkOrderStatusQualityPassed, Trigger: TriggerSubmitQuality},
	{From: entities.WorkOrderStatusQualityPassed, To: entities.WorkOrderStatusQualityIssues, Trigger: TriggerSubmitQuality},
	{From: entities.WorkOrderStatusQualityIssues, To: entities.WorkOrderStatusQualityIssues, Trigger: TriggerSubmitQuality},
	{From: entities.WorkOrderStatusQualityIssues, To: entities.WorkOrderStatusQualityPassed, Trigger: TriggerSubmitQuality},

	{From: entities.WorkOrderStatusCreated, To: entities.WorkOrderStatusCancelled, Trigger: TriggerCancel},
	{From: entities.WorkOrderStatusInProgress, To: entities.WorkOrderStatusCancelled, Trigger: TriggerCancel},
	{From: entities.WorkOrderStatusPartsWaiting, To: entities.WorkOrderStatusCancelled, Trigger: TriggerCancel},
}

// Machine validates work order transitions.
type Machine struct {
	transitions []TransitionRule
}

// NewMachine creates a machine with the default transition table.
func NewMachine() *Machine {
	return &Machine{transitions: DefaultTransitions}
}

// Validate checks that trigger may move an order from one status to another.
// Returns nil if allowed, a *TransitionError otherwise.
func (m *Machine) Validate(from, to entities.WorkOrderStatus, trigger Trigger) error {
	if !from.Valid() || !to.Valid() {
		return &TransitionError{
			Code:    "WORK_ORDER_UNKNOWN_STATUS",
			From:    from,
			To:      to,
			Trigger: trigger,
			Message: fmt.Sprintf("unknown status in transition %s -> %s", from, to),
		}
	}

	for _, t := range m.transitions {
		if t.From == from && t.To == to && t.Trigger == trigger {
			return nil
		}
	}

	code := "WORK_ORDER_INVALID_TRANSITION"
	if from.IsTerminal() && !from.IsQualityTerminal() {
		code = "WORK_ORDER_TERMINAL"
	}
	return &TransitionError{
		Code:    code,
		From:    from,
		To:      to,
		Trigger: trigger,
		Message: fmt.Sprintf("%s is not allowed from %s to %s", trigger, from, to),
	}
}

// CanTrigger reports whether trigger leads anywhere from the given status.
func (m *Machine) CanTrigger(from entities.WorkOrderStatus, trigger Trigger) bool {
	for _, t := range m.transitions {
		if t.From == from && t.Trigger == trigger {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the distinct target statuses reachable from the given status.
func (m *Machine) AllowedTransitions(from entities.WorkOrderStatus) []entities.WorkOrderStatus {
	var allowed []entities.WorkOrderStatus
	seen := make(map[entities.WorkOrderStatus]bool)
	for _, t := range m.transitions {
		if t.From == from && t.To != from && !seen[t.To] {
			seen[t.To] = true
			allowed = append(allowed, t.To)
		}
	}
	return allowed
}

// TransitionError is a structured error for rejected transitions.
type TransitionError struct {
	Code    string                   `json:"code"`
	From    entities.WorkOrderStatus `json:"from"`
	To      entities.WorkOrderStatus `json:"to"`
	Trigger Trigger                  `json:"trigger"`
	Message string                   `json:"message"`
}

func (e *TransitionError) Error() string {
	return e.Message
}
