package notifications

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/usecase/interfaces"

	"github.com/slack-go/slack"
)

var statusColors = map[entities.WorkOrderStatus]string{
	entities.WorkOrderStatusCompleted:     "#2eb886",
	entities.WorkOrderStatusQualityPassed: "#2eb886",
	entities.WorkOrderStatusQualityIssues: "#daa038",
	entities.WorkOrderStatusPartsWaiting:  "#daa038",
	entities.WorkOrderStatusCancelled:     "#a30200",
}

// SlackNotifier posts change events to a Slack incoming webhook.
type SlackNotifier struct {
	webhookURL string
	client     *http.Client
}

var _ interfaces.INotifier = (*SlackNotifier)(nil)

func NewSlackNotifier(webhookURL string, client *http.Client) *SlackNotifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &SlackNotifier{webhookURL: webhookURL, client: client}
}

func (n *SlackNotifier) NotifyWorkOrderChanged(ctx context.Context, event entities.WorkOrderChangeEvent) error {
	if err := slack.PostWebhookCustomHTTPContext(ctx, n.webhookURL, n.client, slackMessage(event)); err != nil {
		return fmt.Errorf("slack webhook: %w", err)
	}
	return nil
}

func slackMessage(event entities.WorkOrderChangeEvent) *slack.WebhookMessage {
	title := fmt.Sprintf("OS %s: %s", event.OrderNumber, statusLabel(event.NewStatus))

	fields := []slack.AttachmentField{
		{Title: "Status", Value: string(event.NewStatus), Short: true},
		{Title: "Actor", Value: event.ActorID, Short: true},
	}
	if st := event.StageCompleted; st != nil {
		fields = append(fields, slack.AttachmentField{
			Title: "Stage completed",
			Value: fmt.Sprintf("%d. %s", st.SequenceIndex, st.Name),
		})
		if st.Comment != "" {
			fields = append(fields, slack.AttachmentField{Title: "Comment", Value: st.Comment})
		}
	}

	return &slack.WebhookMessage{
		Text: title,
		Attachments: []slack.Attachment{{
			Color:    statusColors[event.NewStatus],
			Fallback: title,
			Fields:   fields,
			Footer:   fmt.Sprintf("work order %s at %s", event.WorkOrderID, formatTimestamp(event.Timestamp)),
		}},
	}
}

func statusLabel(s entities.WorkOrderStatus) string {
	return strings.ReplaceAll(string(s), "_", " ")
}
