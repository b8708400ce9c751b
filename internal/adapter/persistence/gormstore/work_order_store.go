package gormstore

import (
	"context"
	"errors"
	"fmt"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorkOrderStore persists work orders, their stages, verdicts and status
// events in a relational database through GORM.
//
// Inside WithinTx the work order row is read with SELECT ... FOR UPDATE on
// servers that support it. SQLite has no row locks; callers open it with a
// single connection so transactions run one at a time.
type WorkOrderStore struct {
	reader
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderStore)(nil)

func NewWorkOrderStore(db *gorm.DB) *WorkOrderStore {
	return &WorkOrderStore{reader: reader{db: db}}
}

// AutoMigrate creates or updates every table of the store.
func (s *WorkOrderStore) AutoMigrate() error {
	return s.db.AutoMigrate(Models()...)
}

func (s *WorkOrderStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx interfaces.IWorkOrderTx) error) error {
	lock := s.db.Dialector.Name() != "sqlite"
	err := s.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		return fn(ctx, &txStore{reader: reader{db: db, lock: lock}})
	})
	return translate(err)
}

type reader struct {
	db   *gorm.DB
	lock bool
}

func (r reader) GetWorkOrder(ctx context.Context, id string) (entities.WorkOrder, error) {
	q := r.db.WithContext(ctx)
	if r.lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var rec workOrderRecord
	if err := q.Where("id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, wrap("get work order", err)
	}
	return fromWorkOrderRecord(rec), nil
}

func (r reader) GetWorkOrderByNumber(ctx context.Context, orderNumber string) (entities.WorkOrder, error) {
	var rec workOrderRecord
	if err := r.db.WithContext(ctx).Where("order_number = ?", orderNumber).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, wrap("get work order by number", err)
	}
	return fromWorkOrderRecord(rec), nil
}

func (r reader) ListStages(ctx context.Context, workOrderID string) ([]entities.WorkOrderStage, error) {
	var recs []workOrderStageRecord
	if err := r.db.WithContext(ctx).Where("work_order_id = ?", workOrderID).Order("sequence_index ASC").Find(&recs).Error; err != nil {
		return nil, wrap("list stages", err)
	}
	stages := make([]entities.WorkOrderStage, 0, len(recs))
	for _, rec := range recs {
		stages = append(stages, fromStageRecord(rec))
	}
	return stages, nil
}

func (r reader) GetQualityVerdict(ctx context.Context, workOrderID string) (entities.QualityVerdict, error) {
	var rec qualityVerdictRecord
	if err := r.db.WithContext(ctx).Where("work_order_id = ?", workOrderID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.QualityVerdict{}, nil
		}
		return entities.QualityVerdict{}, wrap("get quality verdict", err)
	}
	return fromVerdictRecord(rec), nil
}

func (r reader) ListStatusEvents(ctx context.Context, workOrderID string, afterSequence int64, limit int) ([]entities.StatusEvent, error) {
	q := r.db.WithContext(ctx).
		Where("work_order_id = ? AND sequence > ?", workOrderID, afterSequence).
		Order("sequence ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recs []statusEventRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, wrap("list status events", err)
	}
	events := make([]entities.StatusEvent, 0, len(recs))
	for _, rec := range recs {
		events = append(events, fromEventRecord(rec))
	}
	return events, nil
}

// txStore is the write side bound to one open transaction.
type txStore struct {
	reader
}

var _ interfaces.IWorkOrderTx = (*txStore)(nil)

func (t *txStore) CreateWorkOrder(ctx context.Context, wo entities.WorkOrder) error {
	rec := toWorkOrderRecord(wo)
	if err := t.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return wrap("create work order", err)
	}
	return nil
}

func (t *txStore) UpdateWorkOrder(ctx context.Context, wo entities.WorkOrder, expectedVersion int64) error {
	res := t.db.WithContext(ctx).
		Model(&workOrderRecord{}).
		Where("id = ? AND version = ?", wo.ID, expectedVersion).
		Updates(map[string]any{
			"status":      string(wo.Status),
			"mechanic_id": wo.MechanicID,
			"total_cost":  wo.TotalCost,
			"version":     wo.Version,
			"updated_at":  wo.UpdatedAt.UTC(),
		})
	if res.Error != nil {
		return wrap("update work order", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update work order %s at version %d: %w", wo.ID, expectedVersion, interfaces.ErrConcurrentModification)
	}
	return nil
}

func (t *txStore) CreateStages(ctx context.Context, stages []entities.WorkOrderStage) error {
	if len(stages) == 0 {
		return nil
	}
	recs := make([]workOrderStageRecord, 0, len(stages))
	for _, st := range stages {
		recs = append(recs, toStageRecord(st))
	}
	if err := t.db.WithContext(ctx).Create(&recs).Error; err != nil {
		return wrap("create stages", err)
	}
	return nil
}

func (t *txStore) CompleteStage(ctx context.Context, stage entities.WorkOrderStage) error {
	rec := toStageRecord(stage)
	res := t.db.WithContext(ctx).
		Model(&workOrderStageRecord{}).
		Where("id = ? AND work_order_id = ? AND is_completed = ?", stage.ID, stage.WorkOrderID, false).
		Updates(map[string]any{
			"is_completed": true,
			"completed_at": rec.CompletedAt,
			"completed_by": rec.CompletedBy,
			"comment":      rec.Comment,
		})
	if res.Error != nil {
		return wrap("complete stage", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("complete stage %s: %w", stage.ID, interfaces.ErrConcurrentModification)
	}
	return nil
}

func (t *txStore) PutQualityVerdict(ctx context.Context, v entities.QualityVerdict) error {
	rec := toVerdictRecord(v)
	err := t.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "work_order_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"outcome", "comment", "checked_by", "checked_at"}),
	}).Create(&rec).Error
	if err != nil {
		return wrap("put quality verdict", err)
	}
	return nil
}

func (t *txStore) AppendStatusEvent(ctx context.Context, e entities.StatusEvent) error {
	rec := toEventRecord(e)
	if err := t.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return wrap("append status event", err)
	}
	return nil
}
