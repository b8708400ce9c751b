package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IStageCatalog exposes the ordered, global template of work stages.
type IStageCatalog interface {
	Stages(ctx context.Context) ([]entities.StageTemplate, error)
}

type StageCatalog struct {
	repo interfaces.IStageTemplateRepository
}

var _ IStageCatalog = (*StageCatalog)(nil)

func NewStageCatalog(repo interfaces.IStageTemplateRepository) *StageCatalog {
	return &StageCatalog{repo: repo}
}

// Stages returns the catalog ascending by sequence index. The catalog must
// have unique, dense indexes starting at 1.
func (c *StageCatalog) Stages(ctx context.Context) ([]entities.StageTemplate, error) {
	templates, err := c.repo.List(ctx)
	if err != nil {
		return nil, classify(err)
	}

	sorted := make([]entities.StageTemplate, len(templates))
	copy(sorted, templates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].SequenceIndex < sorted[j].SequenceIndex
	})
	for i, t := range sorted {
		if t.SequenceIndex != i+1 {
			return nil, fmt.Errorf("%w: expected sequence index %d, got %d (%s)", ErrInvalidStageCatalog, i+1, t.SequenceIndex, t.Name)
		}
	}
	return sorted, nil
}

// EnsureSeeded loads seed into the store when the catalog is empty.
// An existing catalog is never touched.
func (c *StageCatalog) EnsureSeeded(ctx context.Context, seed []entities.StageTemplate) (bool, error) {
	existing, err := c.repo.List(ctx)
	if err != nil {
		return false, classify(err)
	}
	if len(existing) > 0 || len(seed) == 0 {
		return false, nil
	}
	if err := c.repo.Seed(ctx, seed); err != nil {
		return false, classify(err)
	}
	return true, nil
}

// ParseStageSeed parses "Name:Description;Name:Description" into templates
// numbered in the given order.
func ParseStageSeed(raw string) []entities.StageTemplate {
	var templates []entities.StageTemplate
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, description, _ := strings.Cut(part, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		templates = append(templates, entities.StageTemplate{
			ID:            uuid.NewString(),
			Name:          name,
			Description:   strings.TrimSpace(description),
			SequenceIndex: len(templates) + 1,
		})
	}
	return templates
}
