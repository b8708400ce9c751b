package gormstore

import (
	"context"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// StageTemplateStore reads the stage catalog from the stage_templates table.
type StageTemplateStore struct {
	db *gorm.DB
}

var _ interfaces.IStageTemplateRepository = (*StageTemplateStore)(nil)

func NewStageTemplateStore(db *gorm.DB) *StageTemplateStore {
	return &StageTemplateStore{db: db}
}

func (s *StageTemplateStore) List(ctx context.Context) ([]entities.StageTemplate, error) {
	var recs []stageTemplateRecord
	if err := s.db.WithContext(ctx).Order("sequence_index ASC").Find(&recs).Error; err != nil {
		return nil, wrap("list stage templates", err)
	}
	templates := make([]entities.StageTemplate, 0, len(recs))
	for _, r := range recs {
		templates = append(templates, entities.StageTemplate{
			ID:            r.ID,
			Name:          r.Name,
			Description:   r.Description,
			SequenceIndex: r.SequenceIndex,
		})
	}
	return templates, nil
}

// Seed inserts templates in one transaction; a clash on sequence index
// rolls back the whole batch.
func (s *StageTemplateStore) Seed(ctx context.Context, templates []entities.StageTemplate) error {
	if len(templates) == 0 {
		return nil
	}
	recs := make([]stageTemplateRecord, 0, len(templates))
	for _, t := range templates {
		recs = append(recs, stageTemplateRecord{
			ID:            t.ID,
			Name:          t.Name,
			Description:   t.Description,
			SequenceIndex: t.SequenceIndex,
		})
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&recs).Error
	})
	if err != nil {
		return wrap("seed stage templates", err)
	}
	return nil
}
