package interfaces

//go:generate mockgen -source=stage_template_repository_interface.go -destination=mocks/stage_template_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"mecanica_workorder/internal/domain/entities"
)

// IStageTemplateRepository gives read access to the stage catalog.
//
// Seed is only used at startup to load the configured catalog into an empty store.
type IStageTemplateRepository interface {
	List(ctx context.Context) ([]entities.StageTemplate, error)
	Seed(ctx context.Context, templates []entities.StageTemplate) error
}
