package response

import (
	"time"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/domain/lifecycle"
	"mecanica_workorder/internal/usecase"
)

var machine = lifecycle.NewMachine()

type WorkOrderResponse struct {
	ID                 string    `json:"id"`
	OrderNumber        string    `json:"order_number"`
	Status             string    `json:"status"`
	MechanicID         string    `json:"mechanic_id,omitempty"`
	TotalCost          float64   `json:"total_cost"`
	Version            int64     `json:"version"`
	AllowedTransitions []string  `json:"allowed_transitions"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromWorkOrder(wo entities.WorkOrder) WorkOrderResponse {
	allowed := make([]string, 0)
	for _, s := range machine.AllowedTransitions(wo.Status) {
		allowed = append(allowed, string(s))
	}
	return WorkOrderResponse{
		ID:                 wo.ID,
		OrderNumber:        wo.OrderNumber,
		Status:             string(wo.Status),
		MechanicID:         wo.MechanicID,
		TotalCost:          wo.TotalCost,
		Version:            wo.Version,
		AllowedTransitions: allowed,
		CreatedAt:          wo.CreatedAt,
		UpdatedAt:          wo.UpdatedAt,
	}
}

type StageResponse struct {
	ID              string     `json:"id"`
	StageTemplateID string     `json:"stage_template_id"`
	SequenceIndex   int        `json:"sequence_index"`
	Name            string     `json:"name"`
	IsCompleted     bool       `json:"is_completed"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CompletedBy     string     `json:"completed_by,omitempty"`
	Comment         string     `json:"comment,omitempty"`
}

func FromStage(st entities.WorkOrderStage) StageResponse {
	return StageResponse{
		ID:              st.ID,
		StageTemplateID: st.StageTemplateID,
		SequenceIndex:   st.SequenceIndex,
		Name:            st.Name,
		IsCompleted:     st.IsCompleted,
		CompletedAt:     st.CompletedAt,
		CompletedBy:     st.CompletedBy,
		Comment:         st.Comment,
	}
}

func fromStagePtr(st *entities.WorkOrderStage) *StageResponse {
	if st == nil {
		return nil
	}
	res := FromStage(*st)
	return &res
}

type ProgressResponse struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

func FromProgress(p usecase.StageProgress) ProgressResponse {
	return ProgressResponse{Completed: p.Completed, Total: p.Total, Percent: p.Percent}
}

// StagesResponse is the mechanic app view of an order: every stage, the
// one to work on next and the completion percentage.
type StagesResponse struct {
	WorkOrderID string           `json:"work_order_id"`
	Stages      []StageResponse  `json:"stages"`
	ActiveStage *StageResponse   `json:"active_stage"`
	Progress    ProgressResponse `json:"progress"`
}

func FromStages(workOrderID string, stages []entities.WorkOrderStage) StagesResponse {
	res := StagesResponse{
		WorkOrderID: workOrderID,
		Stages:      make([]StageResponse, 0, len(stages)),
		Progress:    FromProgress(usecase.ProgressOf(stages)),
	}
	for _, st := range stages {
		res.Stages = append(res.Stages, FromStage(st))
	}
	if active, ok := usecase.ActiveStageOf(stages); ok {
		res.ActiveStage = fromStagePtr(&active)
	}
	return res
}

type ActiveStageResponse struct {
	WorkOrderID string         `json:"work_order_id"`
	ActiveStage *StageResponse `json:"active_stage"`
}

func FromActiveStage(workOrderID string, st entities.WorkOrderStage, ok bool) ActiveStageResponse {
	res := ActiveStageResponse{WorkOrderID: workOrderID}
	if ok {
		res.ActiveStage = fromStagePtr(&st)
	}
	return res
}

type StageCompletionResponse struct {
	WorkOrder       WorkOrderResponse   `json:"work_order"`
	CompletedStage  StageResponse       `json:"completed_stage"`
	NextActiveStage *StageResponse      `json:"next_active_stage"`
	Progress        ProgressResponse    `json:"progress"`
	Event           StatusEventResponse `json:"event"`
}

func FromStageCompletion(r usecase.StageCompletionResult) StageCompletionResponse {
	return StageCompletionResponse{
		WorkOrder:       FromWorkOrder(r.WorkOrder),
		CompletedStage:  FromStage(r.CompletedStage),
		NextActiveStage: fromStagePtr(r.NextActive),
		Progress:        FromProgress(r.Progress),
		Event:           FromStatusEvent(r.Event),
	}
}

type StatusEventResponse struct {
	ID        string    `json:"id"`
	Sequence  int64     `json:"sequence"`
	Status    string    `json:"status"`
	Trigger   string    `json:"trigger"`
	StageID   string    `json:"stage_id,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	ActorID   string    `json:"actor_id"`
	CreatedAt time.Time `json:"created_at"`
}

func FromStatusEvent(e entities.StatusEvent) StatusEventResponse {
	return StatusEventResponse{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Status:    string(e.Status),
		Trigger:   e.Trigger,
		StageID:   e.StageID,
		Comment:   e.Comment,
		ActorID:   e.ActorID,
		CreatedAt: e.CreatedAt,
	}
}

type HistoryResponse struct {
	WorkOrderID string                `json:"work_order_id"`
	Events      []StatusEventResponse `json:"events"`
}

type HistoryVerificationResponse struct {
	WorkOrderID     string `json:"work_order_id"`
	ProjectedStatus string `json:"projected_status"`
	Consistent      bool   `json:"consistent"`
}

type QualityVerdictResponse struct {
	ID        string    `json:"id"`
	Outcome   string    `json:"outcome"`
	Comment   string    `json:"comment,omitempty"`
	CheckedBy string    `json:"checked_by"`
	CheckedAt time.Time `json:"checked_at"`
}

func FromQualityVerdict(v entities.QualityVerdict) QualityVerdictResponse {
	return QualityVerdictResponse{
		ID:        v.ID,
		Outcome:   string(v.Outcome),
		Comment:   v.Comment,
		CheckedBy: v.CheckedBy,
		CheckedAt: v.CheckedAt,
	}
}

type QualityCheckResponse struct {
	WorkOrder WorkOrderResponse      `json:"work_order"`
	Verdict   QualityVerdictResponse `json:"verdict"`
}

func FromQualityCheck(r usecase.QualityCheckResult) QualityCheckResponse {
	return QualityCheckResponse{
		WorkOrder: FromWorkOrder(r.WorkOrder),
		Verdict:   FromQualityVerdict(r.Verdict),
	}
}

type StageTemplateResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	SequenceIndex int    `json:"sequence_index"`
}

func FromStageTemplates(templates []entities.StageTemplate) []StageTemplateResponse {
	out := make([]StageTemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, StageTemplateResponse{
			ID:            t.ID,
			Name:          t.Name,
			Description:   t.Description,
			SequenceIndex: t.SequenceIndex,
		})
	}
	return out
}
