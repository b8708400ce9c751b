package usecase

import (
	"context"
	"time"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// QualityGate records the quality verdict of a work order and decides
// whether a quality terminal status may be reached.
type QualityGate struct{}

func NewQualityGate() *QualityGate {
	return &QualityGate{}
}

// Submit upserts the verdict of an order. changed is false when the stored
// verdict already has the same outcome, comment and checker (a replay).
func (g *QualityGate) Submit(
	ctx context.Context,
	tx interfaces.IWorkOrderTx,
	workOrderID string,
	outcome entities.QualityOutcome,
	comment, actorID string,
	now time.Time,
) (verdict entities.QualityVerdict, changed bool, err error) {
	if !outcome.Valid() {
		return entities.QualityVerdict{}, false, ErrInvalidOutcome
	}

	current, err := tx.GetQualityVerdict(ctx, workOrderID)
	if err != nil {
		return entities.QualityVerdict{}, false, classify(err)
	}
	if current.ID != "" && current.Outcome == outcome && current.Comment == comment && current.CheckedBy == actorID {
		return current, false, nil
	}

	verdict = entities.QualityVerdict{
		ID:          current.ID,
		WorkOrderID: workOrderID,
		Outcome:     outcome,
		Comment:     comment,
		CheckedBy:   actorID,
		CheckedAt:   now,
	}
	if verdict.ID == "" {
		verdict.ID = uuid.NewString()
	}
	if err := tx.PutQualityVerdict(ctx, verdict); err != nil {
		return entities.QualityVerdict{}, false, classify(err)
	}
	return verdict, true, nil
}

// Current returns the verdict of an order, if one was submitted.
func (g *QualityGate) Current(ctx context.Context, reader interfaces.IWorkOrderReader, workOrderID string) (entities.QualityVerdict, bool, error) {
	v, err := reader.GetQualityVerdict(ctx, workOrderID)
	if err != nil {
		return entities.QualityVerdict{}, false, classify(err)
	}
	return v, v.ID != "", nil
}

// Allows reports whether v permits the quality terminal status target.
func (g *QualityGate) Allows(target entities.WorkOrderStatus, v entities.QualityVerdict) bool {
	if v.ID == "" {
		return false
	}
	switch target {
	case entities.WorkOrderStatusQualityPassed:
		return v.Outcome == entities.QualityOutcomePassed
	case entities.WorkOrderStatusQualityIssues:
		return v.Outcome == entities.QualityOutcomeIssues
	}
	return false
}
