package request

import (
	"strings"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/usecase"
)

// CreateWorkOrderRequest is sent when the booking of a service is confirmed
// ("Confirma agendamento").
type CreateWorkOrderRequest struct {
	OrderNumber string  `json:"order_number" binding:"required"`
	TotalCost   float64 `json:"total_cost"`
	ActorID     string  `json:"actor_id" binding:"required"`
}

func (r CreateWorkOrderRequest) ToCommand() usecase.CreateWorkOrderCommand {
	return usecase.CreateWorkOrderCommand{
		OrderNumber: strings.TrimSpace(r.OrderNumber),
		TotalCost:   r.TotalCost,
		ActorID:     strings.TrimSpace(r.ActorID),
	}
}

type AssignMechanicRequest struct {
	MechanicID string `json:"mechanic_id" binding:"required"`
	ActorID    string `json:"actor_id" binding:"required"`
}

// TransitionRequest is the body of plain status changes (parts waiting,
// parts arrived, cancel).
type TransitionRequest struct {
	Comment string `json:"comment"`
	ActorID string `json:"actor_id" binding:"required"`
}

// CompleteStageRequest completes the active stage. StageID is optional; when
// set the request only succeeds if that stage is still the active one.
type CompleteStageRequest struct {
	StageID string `json:"stage_id"`
	Comment string `json:"comment"`
	ActorID string `json:"actor_id" binding:"required"`
}

type QualityCheckRequest struct {
	Outcome string `json:"outcome" binding:"required"`
	Comment string `json:"comment"`
	ActorID string `json:"actor_id" binding:"required"`
}

// ResolveOutcome accepts the outcome in any case; "aprovado" and "reprovado"
// are accepted as aliases used by the admin app.
func (r QualityCheckRequest) ResolveOutcome() entities.QualityOutcome {
	switch v := strings.ToLower(strings.TrimSpace(r.Outcome)); v {
	case "aprovado":
		return entities.QualityOutcomePassed
	case "reprovado":
		return entities.QualityOutcomeIssues
	default:
		return entities.QualityOutcome(v)
	}
}
