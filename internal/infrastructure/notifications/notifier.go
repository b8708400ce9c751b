// Package notifications delivers work order change events to the mechanic
// and admin channels. Delivery is best effort.
package notifications

import (
	"context"
	"errors"
	"net/http"
	"time"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/infrastructure/config"
	"mecanica_workorder/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// New builds the notifier of the process: every change is logged, and also
// posted to Slack when a webhook is configured.
func New(cfg config.Config, logger *zap.Logger) interfaces.INotifier {
	notifiers := []interfaces.INotifier{NewLogNotifier(logger)}
	if cfg.SlackWebhookURL != "" {
		notifiers = append(notifiers, NewSlackNotifier(cfg.SlackWebhookURL, &http.Client{Timeout: cfg.NotifyTimeout}))
	}
	return NewFanOut(notifiers...)
}

// Noop discards every event.
type Noop struct{}

var _ interfaces.INotifier = Noop{}

func (Noop) NotifyWorkOrderChanged(context.Context, entities.WorkOrderChangeEvent) error {
	return nil
}

// LogNotifier writes each change event as a structured log line.
type LogNotifier struct {
	logger *zap.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger.Named("notifications")}
}

func (n *LogNotifier) NotifyWorkOrderChanged(_ context.Context, event entities.WorkOrderChangeEvent) error {
	fields := []zap.Field{
		zap.String("work_order_id", event.WorkOrderID),
		zap.String("order_number", event.OrderNumber),
		zap.String("status", string(event.NewStatus)),
		zap.String("actor", event.ActorID),
		zap.Time("at", event.Timestamp),
	}
	if event.StageCompleted != nil {
		fields = append(fields,
			zap.String("stage_id", event.StageCompleted.ID),
			zap.String("stage", event.StageCompleted.Name))
	}
	n.logger.Info("work order changed", fields...)
	return nil
}

// FanOut delivers each event to every notifier, even when some fail, and
// reports the joined failures.
type FanOut struct {
	notifiers []interfaces.INotifier
}

var _ interfaces.INotifier = (*FanOut)(nil)

func NewFanOut(notifiers ...interfaces.INotifier) *FanOut {
	return &FanOut{notifiers: notifiers}
}

func (f *FanOut) NotifyWorkOrderChanged(ctx context.Context, event entities.WorkOrderChangeEvent) error {
	var errs []error
	for _, n := range f.notifiers {
		if err := n.NotifyWorkOrderChanged(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
