package repository

import (
	"strconv"

	"mecanica_workorder/internal/domain/entities"
)

type workOrderItem struct {
	ID          string `dynamodbav:"id"`
	OrderNumber string `dynamodbav:"order_number"`
	Status      string `dynamodbav:"status"`
	MechanicID  string `dynamodbav:"mechanic_id,omitempty"`
	TotalCost   string `dynamodbav:"total_cost"`
	Version     int64  `dynamodbav:"version"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// workOrderNumberItem reserves an order number. DynamoDB has no secondary
// unique constraints, so uniqueness is a conditional put on this table.
type workOrderNumberItem struct {
	OrderNumber string `dynamodbav:"order_number"`
	WorkOrderID string `dynamodbav:"work_order_id"`
}

type stageItem struct {
	WorkOrderID     string `dynamodbav:"work_order_id"`
	SequenceIndex   int    `dynamodbav:"sequence_index"`
	ID              string `dynamodbav:"id"`
	StageTemplateID string `dynamodbav:"stage_template_id"`
	Name            string `dynamodbav:"name"`
	IsCompleted     bool   `dynamodbav:"is_completed"`
	CompletedAt     string `dynamodbav:"completed_at,omitempty"`
	CompletedBy     string `dynamodbav:"completed_by,omitempty"`
	Comment         string `dynamodbav:"comment,omitempty"`
}

type statusEventItem struct {
	WorkOrderID string `dynamodbav:"work_order_id"`
	Sequence    int64  `dynamodbav:"sequence"`
	ID          string `dynamodbav:"id"`
	Status      string `dynamodbav:"status"`
	Trigger     string `dynamodbav:"transition_trigger"`
	StageID     string `dynamodbav:"stage_id,omitempty"`
	Comment     string `dynamodbav:"comment,omitempty"`
	ActorID     string `dynamodbav:"actor_id"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type qualityVerdictItem struct {
	WorkOrderID string `dynamodbav:"work_order_id"`
	ID          string `dynamodbav:"id"`
	Outcome     string `dynamodbav:"outcome"`
	Comment     string `dynamodbav:"comment,omitempty"`
	CheckedBy   string `dynamodbav:"checked_by"`
	CheckedAt   string `dynamodbav:"checked_at"`
}

type stageTemplateItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Description   string `dynamodbav:"description,omitempty"`
	SequenceIndex int    `dynamodbav:"sequence_index"`
}

func toWorkOrderItem(wo entities.WorkOrder) workOrderItem {
	return workOrderItem{
		ID:          wo.ID,
		OrderNumber: wo.OrderNumber,
		Status:      string(wo.Status),
		MechanicID:  wo.MechanicID,
		TotalCost:   floatToString(wo.TotalCost),
		Version:     wo.Version,
		CreatedAt:   formatTime(wo.CreatedAt),
		UpdatedAt:   formatTime(wo.UpdatedAt),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	cost, _ := strconv.ParseFloat(it.TotalCost, 64)
	return entities.WorkOrder{
		ID:          it.ID,
		OrderNumber: it.OrderNumber,
		Status:      entities.WorkOrderStatus(it.Status),
		MechanicID:  it.MechanicID,
		TotalCost:   cost,
		Version:     it.Version,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func toStageItem(st entities.WorkOrderStage) stageItem {
	it := stageItem{
		WorkOrderID:     st.WorkOrderID,
		SequenceIndex:   st.SequenceIndex,
		ID:              st.ID,
		StageTemplateID: st.StageTemplateID,
		Name:            st.Name,
		IsCompleted:     st.IsCompleted,
		CompletedBy:     st.CompletedBy,
		Comment:         st.Comment,
	}
	if st.CompletedAt != nil {
		it.CompletedAt = formatTime(*st.CompletedAt)
	}
	return it
}

func fromStageItem(it stageItem) entities.WorkOrderStage {
	st := entities.WorkOrderStage{
		ID:              it.ID,
		WorkOrderID:     it.WorkOrderID,
		StageTemplateID: it.StageTemplateID,
		SequenceIndex:   it.SequenceIndex,
		Name:            it.Name,
		IsCompleted:     it.IsCompleted,
		CompletedBy:     it.CompletedBy,
		Comment:         it.Comment,
	}
	if it.CompletedAt != "" {
		t := parseTime(it.CompletedAt)
		st.CompletedAt = &t
	}
	return st
}

func toStatusEventItem(e entities.StatusEvent) statusEventItem {
	return statusEventItem{
		WorkOrderID: e.WorkOrderID,
		Sequence:    e.Sequence,
		ID:          e.ID,
		Status:      string(e.Status),
		Trigger:     e.Trigger,
		StageID:     e.StageID,
		Comment:     e.Comment,
		ActorID:     e.ActorID,
		CreatedAt:   formatTime(e.CreatedAt),
	}
}

func fromStatusEventItem(it statusEventItem) entities.StatusEvent {
	return entities.StatusEvent{
		ID:          it.ID,
		WorkOrderID: it.WorkOrderID,
		Sequence:    it.Sequence,
		Status:      entities.WorkOrderStatus(it.Status),
		Trigger:     it.Trigger,
		StageID:     it.StageID,
		Comment:     it.Comment,
		ActorID:     it.ActorID,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}

func toQualityVerdictItem(v entities.QualityVerdict) qualityVerdictItem {
	return qualityVerdictItem{
		WorkOrderID: v.WorkOrderID,
		ID:          v.ID,
		Outcome:     string(v.Outcome),
		Comment:     v.Comment,
		CheckedBy:   v.CheckedBy,
		CheckedAt:   formatTime(v.CheckedAt),
	}
}

func fromQualityVerdictItem(it qualityVerdictItem) entities.QualityVerdict {
	return entities.QualityVerdict{
		ID:          it.ID,
		WorkOrderID: it.WorkOrderID,
		Outcome:     entities.QualityOutcome(it.Outcome),
		Comment:     it.Comment,
		CheckedBy:   it.CheckedBy,
		CheckedAt:   parseTime(it.CheckedAt),
	}
}
