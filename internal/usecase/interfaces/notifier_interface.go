package interfaces

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_interface_mock.go -package=mock_interfaces

import (
	"context"

	"mecanica_workorder/internal/domain/entities"
)

// INotifier abstracts the notification / realtime fan-out collaborator
// (Slack, connected portals, logs).
//
// Delivery is best effort: callers log and drop returned errors.
type INotifier interface {
	NotifyWorkOrderChanged(ctx context.Context, event entities.WorkOrderChangeEvent) error
}
