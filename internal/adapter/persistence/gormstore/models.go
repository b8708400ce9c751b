package gormstore

import (
	"time"

	"mecanica_workorder/internal/domain/entities"
)

// workOrderRecord is the GORM model of a work order row.
type workOrderRecord struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(36)"`
	OrderNumber string    `gorm:"column:order_number;type:varchar(64);uniqueIndex:idx_work_orders_number;not null"`
	Status      string    `gorm:"column:status;type:varchar(32);index:idx_work_orders_status;not null"`
	MechanicID  string    `gorm:"column:mechanic_id;type:varchar(64)"`
	TotalCost   float64   `gorm:"column:total_cost;not null"`
	Version     int64     `gorm:"column:version;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (workOrderRecord) TableName() string { return "work_orders" }

type workOrderStageRecord struct {
	ID              string     `gorm:"primaryKey;column:id;type:varchar(36)"`
	WorkOrderID     string     `gorm:"column:work_order_id;type:varchar(36);uniqueIndex:idx_stage_order_seq,priority:1;not null"`
	SequenceIndex   int        `gorm:"column:sequence_index;uniqueIndex:idx_stage_order_seq,priority:2;not null"`
	StageTemplateID string     `gorm:"column:stage_template_id;type:varchar(36);not null"`
	Name            string     `gorm:"column:name;type:varchar(128);not null"`
	IsCompleted     bool       `gorm:"column:is_completed;not null"`
	CompletedAt     *time.Time `gorm:"column:completed_at"`
	CompletedBy     string     `gorm:"column:completed_by;type:varchar(64)"`
	Comment         string     `gorm:"column:comment;type:text"`
}

func (workOrderStageRecord) TableName() string { return "work_order_stages" }

// statusEventRecord rows are only ever inserted.
type statusEventRecord struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(36)"`
	WorkOrderID string    `gorm:"column:work_order_id;type:varchar(36);uniqueIndex:idx_event_order_seq,priority:1;not null"`
	Sequence    int64     `gorm:"column:sequence;uniqueIndex:idx_event_order_seq,priority:2;not null"`
	Status      string    `gorm:"column:status;type:varchar(32);not null"`
	Trigger     string    `gorm:"column:transition_trigger;type:varchar(32);not null"`
	StageID     string    `gorm:"column:stage_id;type:varchar(36)"`
	Comment     string    `gorm:"column:comment;type:text"`
	ActorID     string    `gorm:"column:actor_id;type:varchar(64);not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime:false"`
}

func (statusEventRecord) TableName() string { return "status_events" }

type qualityVerdictRecord struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(36)"`
	WorkOrderID string    `gorm:"column:work_order_id;type:varchar(36);uniqueIndex:idx_verdict_order;not null"`
	Outcome     string    `gorm:"column:outcome;type:varchar(16);not null"`
	Comment     string    `gorm:"column:comment;type:text"`
	CheckedBy   string    `gorm:"column:checked_by;type:varchar(64);not null"`
	CheckedAt   time.Time `gorm:"column:checked_at"`
}

func (qualityVerdictRecord) TableName() string { return "quality_verdicts" }

type stageTemplateRecord struct {
	ID            string `gorm:"primaryKey;column:id;type:varchar(36)"`
	Name          string `gorm:"column:name;type:varchar(128);not null"`
	Description   string `gorm:"column:description;type:text"`
	SequenceIndex int    `gorm:"column:sequence_index;uniqueIndex:idx_template_seq;not null"`
}

func (stageTemplateRecord) TableName() string { return "stage_templates" }

// Models lists every table of the store, in migration order.
func Models() []any {
	return []any{
		&stageTemplateRecord{},
		&workOrderRecord{},
		&workOrderStageRecord{},
		&statusEventRecord{},
		&qualityVerdictRecord{},
	}
}

func toWorkOrderRecord(wo entities.WorkOrder) workOrderRecord {
	return workOrderRecord{
		ID:          wo.ID,
		OrderNumber: wo.OrderNumber,
		Status:      string(wo.Status),
		MechanicID:  wo.MechanicID,
		TotalCost:   wo.TotalCost,
		Version:     wo.Version,
		CreatedAt:   wo.CreatedAt.UTC(),
		UpdatedAt:   wo.UpdatedAt.UTC(),
	}
}

func fromWorkOrderRecord(r workOrderRecord) entities.WorkOrder {
	return entities.WorkOrder{
		ID:          r.ID,
		OrderNumber: r.OrderNumber,
		Status:      entities.WorkOrderStatus(r.Status),
		MechanicID:  r.MechanicID,
		TotalCost:   r.TotalCost,
		Version:     r.Version,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

func toStageRecord(st entities.WorkOrderStage) workOrderStageRecord {
	return workOrderStageRecord{
		ID:              st.ID,
		WorkOrderID:     st.WorkOrderID,
		SequenceIndex:   st.SequenceIndex,
		StageTemplateID: st.StageTemplateID,
		Name:            st.Name,
		IsCompleted:     st.IsCompleted,
		CompletedAt:     utcPtr(st.CompletedAt),
		CompletedBy:     st.CompletedBy,
		Comment:         st.Comment,
	}
}

func fromStageRecord(r workOrderStageRecord) entities.WorkOrderStage {
	return entities.WorkOrderStage{
		ID:              r.ID,
		WorkOrderID:     r.WorkOrderID,
		StageTemplateID: r.StageTemplateID,
		SequenceIndex:   r.SequenceIndex,
		Name:            r.Name,
		IsCompleted:     r.IsCompleted,
		CompletedAt:     utcPtr(r.CompletedAt),
		CompletedBy:     r.CompletedBy,
		Comment:         r.Comment,
	}
}

func toEventRecord(e entities.StatusEvent) statusEventRecord {
	return statusEventRecord{
		ID:          e.ID,
		WorkOrderID: e.WorkOrderID,
		Sequence:    e.Sequence,
		Status:      string(e.Status),
		Trigger:     e.Trigger,
		StageID:     e.StageID,
		Comment:     e.Comment,
		ActorID:     e.ActorID,
		CreatedAt:   e.CreatedAt.UTC(),
	}
}

func fromEventRecord(r statusEventRecord) entities.StatusEvent {
	return entities.StatusEvent{
		ID:          r.ID,
		WorkOrderID: r.WorkOrderID,
		Sequence:    r.Sequence,
		Status:      entities.WorkOrderStatus(r.Status),
		Trigger:     r.Trigger,
		StageID:     r.StageID,
		Comment:     r.Comment,
		ActorID:     r.ActorID,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

func toVerdictRecord(v entities.QualityVerdict) qualityVerdictRecord {
	return qualityVerdictRecord{
		ID:          v.ID,
		WorkOrderID: v.WorkOrderID,
		Outcome:     string(v.Outcome),
		Comment:     v.Comment,
		CheckedBy:   v.CheckedBy,
		CheckedAt:   v.CheckedAt.UTC(),
	}
}

func fromVerdictRecord(r qualityVerdictRecord) entities.QualityVerdict {
	return entities.QualityVerdict{
		ID:          r.ID,
		WorkOrderID: r.WorkOrderID,
		Outcome:     entities.QualityOutcome(r.Outcome),
		Comment:     r.Comment,
		CheckedBy:   r.CheckedBy,
		CheckedAt:   r.CheckedAt.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
