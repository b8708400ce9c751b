package usecase

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/domain/lifecycle"
	"mecanica_workorder/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LifecycleConfig tunes retries and side effects of the lifecycle engine.
type LifecycleConfig struct {
	MaxAttempts     int           // Attempts per operation when a transaction loses a race. Default 3.
	RetryBackoff    time.Duration // Base pause between attempts, multiplied by the attempt number. Default 25ms.
	HistoryPageSize int           // Events read per page by History. Default 50.
	NotifyTimeout   time.Duration // Upper bound for one notification. Default 5s.
}

func DefaultLifecycleConfig() LifecycleConfig {
	return LifecycleConfig{
		MaxAttempts:     3,
		RetryBackoff:    25 * time.Millisecond,
		HistoryPageSize: defaultHistoryPageSize,
		NotifyTimeout:   5 * time.Second,
	}
}

type CreateWorkOrderCommand struct {
	OrderNumber string
	TotalCost   float64
	ActorID     string
}

type StageCompletionResult struct {
	WorkOrder      entities.WorkOrder
	CompletedStage entities.WorkOrderStage
	NextActive     *entities.WorkOrderStage
	Progress       StageProgress
	Event          entities.StatusEvent
}

type QualityCheckResult struct {
	WorkOrder entities.WorkOrder
	Verdict   entities.QualityVerdict
}

// IWorkOrderLifecycle is the operation surface consumed by the mechanic and
// admin apps. Every mutating operation takes the acting identity explicitly.
//
//   - "Confirma agendamento" => CreateWorkOrder()
//   - mechanic app => AssignMechanic(), MarkPartsWaiting(), PartsArrived(), CompleteActiveStage()
//   - admin app => SubmitQualityCheck(), Cancel()
type IWorkOrderLifecycle interface {
	CreateWorkOrder(ctx context.Context, cmd CreateWorkOrderCommand) (entities.WorkOrder, error)
	AssignMechanic(ctx context.Context, workOrderID, mechanicID, actorID string) (entities.WorkOrder, error)
	MarkPartsWaiting(ctx context.Context, workOrderID, comment, actorID string) (entities.WorkOrder, error)
	PartsArrived(ctx context.Context, workOrderID, comment, actorID string) (entities.WorkOrder, error)
	CompleteActiveStage(ctx context.Context, workOrderID, expectedStageID, comment, actorID string) (StageCompletionResult, error)
	SubmitQualityCheck(ctx context.Context, workOrderID string, outcome entities.QualityOutcome, comment, actorID string) (QualityCheckResult, error)
	Cancel(ctx context.Context, workOrderID, comment, actorID string) (entities.WorkOrder, error)

	Status(ctx context.Context, workOrderID string) (entities.WorkOrder, error)
	Stages(ctx context.Context, workOrderID string) ([]entities.WorkOrderStage, error)
	ActiveStage(ctx context.Context, workOrderID string) (entities.WorkOrderStage, bool, error)
	Progress(ctx context.Context, workOrderID string) (StageProgress, error)
	History(ctx context.Context, workOrderID string) (iter.Seq2[entities.StatusEvent, error], error)
	VerifyHistory(ctx context.Context, workOrderID string) (entities.WorkOrderStatus, error)
	QualityVerdict(ctx context.Context, workOrderID string) (entities.QualityVerdict, error)
}

// WorkOrderLifecycle owns the status of work orders. It is the only writer
// of status transitions and pairs each one with a ledger event in the same
// store transaction.
type WorkOrderLifecycle struct {
	repo      interfaces.IWorkOrderRepository
	sequencer *StageSequencer
	gate      *QualityGate
	ledger    *StatusHistoryLedger
	machine   *lifecycle.Machine
	notifier  interfaces.INotifier
	logger    *zap.Logger
	cfg       LifecycleConfig
	now       func() time.Time
}

var _ IWorkOrderLifecycle = (*WorkOrderLifecycle)(nil)

func NewWorkOrderLifecycle(
	repo interfaces.IWorkOrderRepository,
	catalog IStageCatalog,
	notifier interfaces.INotifier,
	logger *zap.Logger,
	cfg LifecycleConfig,
) *WorkOrderLifecycle {
	defaults := DefaultLifecycleConfig()
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaults.MaxAttempts
	}
	if cfg.RetryBackoff < 0 {
		cfg.RetryBackoff = defaults.RetryBackoff
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = defaults.NotifyTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	machine := lifecycle.NewMachine()
	return &WorkOrderLifecycle{
		repo:      repo,
		sequencer: NewStageSequencer(catalog),
		gate:      NewQualityGate(),
		ledger:    NewStatusHistoryLedger(machine, cfg.HistoryPageSize),
		machine:   machine,
		notifier:  notifier,
		logger:    logger.Named("workorder"),
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *WorkOrderLifecycle) CreateWorkOrder(ctx context.Context, cmd CreateWorkOrderCommand) (entities.WorkOrder, error) {
	number := strings.TrimSpace(cmd.OrderNumber)
	actorID := strings.TrimSpace(cmd.ActorID)
	if number == "" {
		return entities.WorkOrder{}, ErrInvalidOrderNumber
	}
	if actorID == "" {
		return entities.WorkOrder{}, ErrInvalidActor
	}
	if cmd.TotalCost < 0 {
		return entities.WorkOrder{}, ErrInvalidTotalCost
	}

	plan, err := u.sequencer.Plan(ctx)
	if err != nil {
		u.logger.Error("stage catalog unavailable", zap.String("order_number", number), zap.Error(err))
		return entities.WorkOrder{}, err
	}

	var (
		result  entities.WorkOrder
		created bool
	)
	err = u.transact(ctx, "create", number, func(ctx context.Context, tx interfaces.IWorkOrderTx) error {
		created = false
		existing, err := tx.GetWorkOrderByNumber(ctx, number)
		if err != nil {
			return classify(err)
		}
		if existing.ID != "" {
			// Replayed booking confirmation.
			result = existing
			return nil
		}

		now := u.now()
		wo := entities.WorkOrder{
			ID:          uuid.NewString(),
			OrderNumber: number,
			Status:      entities.WorkOrderStatusCreated,
			TotalCost:   cmd.TotalCost,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := tx.CreateWorkOrder(ctx, wo); err != nil {
			return classify(err)
		}
		if _, err := u.sequencer.Instantiate(ctx, tx, wo.ID, plan); err != nil {
			return err
		}
		result, created = wo, true
		return nil
	})
	if err != nil {
		u.logger.Warn("create work order failed", zap.String("order_number", number), zap.Error(err))
		return entities.WorkOrder{}, err
	}

	if created {
		u.logger.Info("work order created", zap.String("work_order_id", result.ID), zap.String("order_number", number), zap.String("actor", actorID))
		u.notify(ctx, result, actorID, nil, result.CreatedAt)
	}
	return result, nil
}

func (u *WorkOrderLifecycle) AssignMechanic(ctx context.Context, workOrderID, mechanicID, actorID string) (entities.WorkOrder, error) {
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return entities.WorkOrder{}, ErrInvalidMechanicID
	}
	return u.transition(ctx, transitionRequest{
		op:          "assign-mechanic",
		workOrderID: workOrderID,
		actorID:     actorID,
		comment:     fmt.Sprintf("mechanic %s assigned", mechanicID),
		target:      entities.WorkOrderStatusInProgress,
		trigger:     lifecycle.TriggerAssignMechanic,
		sameEffect: func(wo entities.WorkOrder) bool {
			return wo.MechanicID == mechanicID
		},
		apply: func(wo *entities.WorkOrder) {
			wo.MechanicID = mechanicID
		},
	})
}

func (u *WorkOrderLifecycle) MarkPartsWaiting(ctx context.Context, workOrderID, comment, actorID string) (entities.WorkOrder, error) {
	return u.transition(ctx, transitionRequest{
		op:          "mark-parts-waiting",
		workOrderID: workOrderID,
		actorID:     actorID,
		comment:     comment,
		target:      entities.WorkOrderStatusPartsWaiting,
		trigger:     lifecycle.TriggerMarkPartsWaiting,
	})
}

func (u *WorkOrderLifecycle) PartsArrived(ctx context.Context, workOrderID, comment, actorID string) (entities.WorkOrder, error) {
	return u.transition(ctx, transitionRequest{
		op:          "parts-arrived",
		workOrderID: workOrderID,
		actorID:     actorID,
		comment:     comment,
		target:      entities.WorkOrderStatusInProgress,
		trigger:     lifecycle.TriggerPartsArrived,
	})
}

func (u *WorkOrderLifecycle) Cancel(ctx context.Context, workOrderID, comment, actorID string) (entities.WorkOrder, error) {
	// Stage completion records are left as they are.
	return u.transition(ctx, transitionRequest{
		op:          "cancel",
		workOrderID: workOrderID,
		actorID:     actorID,
		comment:     comment,
		target:      entities.WorkOrderStatusCancelled,
		trigger:     lifecycle.TriggerCancel,
	})
}

func (u *WorkOrderLifecycle) CompleteActiveStage(ctx context.Context, workOrderID, expectedStageID, comment, actorID string) (StageCompletionResult, error) {
	workOrderID, actorID, err := requireIDs(workOrderID, actorID)
	if err != nil {
		return StageCompletionResult{}, err
	}
	expectedStageID = strings.TrimSpace(expectedStageID)
	comment = strings.TrimSpace(comment)

	var result StageCompletionResult
	err = u.transact(ctx, "complete-active-stage", workOrderID, func(ctx context.Context, tx interfaces.IWorkOrderTx) error {
		result = StageCompletionResult{}
		wo, err := u.load(ctx, tx, workOrderID)
		if err != nil {
			return err
		}
		if wo.Status != entities.WorkOrderStatusInProgress {
			if wo.Status == entities.WorkOrderStatusCompleted || wo.Status.IsQualityTerminal() {
				return reject(wo, ErrNoActiveStage, "all stages are completed")
			}
			return reject(wo, ErrInvalidTransition, fmt.Sprintf("stages can only be completed while %s", entities.WorkOrderStatusInProgress))
		}

		now := u.now()
		completion, err := u.sequencer.CompleteActive(ctx, tx, wo.ID, expectedStageID, comment, actorID, now)
		if err != nil {
			if errors.Is(err, ErrNoActiveStage) || errors.Is(err, ErrStagesNotFound) {
				return reject(wo, err, "")
			}
			return err
		}

		next := wo
		trigger := lifecycle.TriggerCompleteStage
		if completion.Last {
			next.Status = entities.WorkOrderStatusCompleted
			trigger = lifecycle.TriggerCompleteLast
		}
		updated, event, err := u.advance(ctx, tx, wo, next, trigger, completion.Completed.ID, comment, actorID, now)
		if err != nil {
			return err
		}

		result = StageCompletionResult{
			WorkOrder:      updated,
			CompletedStage: completion.Completed,
			NextActive:     completion.NextActive,
			Progress:       completion.Progress,
			Event:          event,
		}
		return nil
	})
	if err != nil {
		err = u.attachStatus(ctx, workOrderID, err)
		u.logFailure("complete-active-stage", workOrderID, actorID, err)
		return StageCompletionResult{}, err
	}

	u.logger.Info("stage completed",
		zap.String("work_order_id", workOrderID),
		zap.String("stage_id", result.CompletedStage.ID),
		zap.String("stage", result.CompletedStage.Name),
		zap.String("status", string(result.WorkOrder.Status)),
		zap.Int("progress", result.Progress.Percent),
		zap.String("actor", actorID))
	completed := result.CompletedStage
	u.notify(ctx, result.WorkOrder, actorID, &completed, result.Event.CreatedAt)
	return result, nil
}

func (u *WorkOrderLifecycle) SubmitQualityCheck(ctx context.Context, workOrderID string, outcome entities.QualityOutcome, comment, actorID string) (QualityCheckResult, error) {
	workOrderID, actorID, err := requireIDs(workOrderID, actorID)
	if err != nil {
		return QualityCheckResult{}, err
	}
	if !outcome.Valid() {
		return QualityCheckResult{}, ErrInvalidOutcome
	}
	comment = strings.TrimSpace(comment)

	var (
		result  QualityCheckResult
		changed bool
	)
	err = u.transact(ctx, "submit-quality-check", workOrderID, func(ctx context.Context, tx interfaces.IWorkOrderTx) error {
		result, changed = QualityCheckResult{}, false
		wo, err := u.load(ctx, tx, workOrderID)
		if err != nil {
			return err
		}
		if wo.Status != entities.WorkOrderStatusCompleted && !wo.Status.IsQualityTerminal() {
			return reject(wo, ErrInvalidTransition, fmt.Sprintf("quality check requires a %s work order", entities.WorkOrderStatusCompleted))
		}

		now := u.now()
		verdict, verdictChanged, err := u.gate.Submit(ctx, tx, wo.ID, outcome, comment, actorID, now)
		if err != nil {
			return err
		}
		target := outcome.TargetStatus()
		if !verdictChanged && wo.Status == target {
			result = QualityCheckResult{WorkOrder: wo, Verdict: verdict}
			return nil
		}
		if !u.gate.Allows(target, verdict) {
			return reject(wo, ErrInvalidTransition, fmt.Sprintf("verdict %s does not allow %s", verdict.Outcome, target))
		}

		next := wo
		next.Status = target
		updated, _, err := u.advance(ctx, tx, wo, next, lifecycle.TriggerSubmitQuality, "", comment, actorID, now)
		if err != nil {
			return err
		}
		result = QualityCheckResult{WorkOrder: updated, Verdict: verdict}
		changed = true
		return nil
	})
	if err != nil {
		err = u.attachStatus(ctx, workOrderID, err)
		u.logFailure("submit-quality-check", workOrderID, actorID, err)
		return QualityCheckResult{}, err
	}

	if changed {
		u.logger.Info("quality verdict recorded",
			zap.String("work_order_id", workOrderID),
			zap.String("outcome", string(result.Verdict.Outcome)),
			zap.String("status", string(result.WorkOrder.Status)),
			zap.String("actor", actorID))
		u.notify(ctx, result.WorkOrder, actorID, nil, result.Verdict.CheckedAt)
	}
	return result, nil
}

func (u *WorkOrderLifecycle) Status(ctx context.Context, workOrderID string) (entities.WorkOrder, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	wo, err := u.repo.GetWorkOrder(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, classify(err)
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}

func (u *WorkOrderLifecycle) Stages(ctx context.Context, workOrderID string) ([]entities.WorkOrderStage, error) {
	wo, err := u.Status(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	stages, err := u.repo.ListStages(ctx, wo.ID)
	if err != nil {
		return nil, classify(err)
	}
	return stages, nil
}

func (u *WorkOrderLifecycle) ActiveStage(ctx context.Context, workOrderID string) (entities.WorkOrderStage, bool, error) {
	wo, err := u.Status(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrderStage{}, false, err
	}
	return u.sequencer.ActiveStage(ctx, u.repo, wo.ID)
}

func (u *WorkOrderLifecycle) Progress(ctx context.Context, workOrderID string) (StageProgress, error) {
	stages, err := u.Stages(ctx, workOrderID)
	if err != nil {
		return StageProgress{}, err
	}
	return ProgressOf(stages), nil
}

func (u *WorkOrderLifecycle) History(ctx context.Context, workOrderID string) (iter.Seq2[entities.StatusEvent, error], error) {
	wo, err := u.Status(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	return u.ledger.History(ctx, u.repo, wo.ID), nil
}

// VerifyHistory replays the ledger of an order and checks that it projects
// to the materialized status. It returns the projected status.
func (u *WorkOrderLifecycle) VerifyHistory(ctx context.Context, workOrderID string) (entities.WorkOrderStatus, error) {
	wo, err := u.Status(ctx, workOrderID)
	if err != nil {
		return "", err
	}
	events, err := Collect(u.ledger.History(ctx, u.repo, wo.ID))
	if err != nil {
		return "", err
	}
	projected, err := u.ledger.Project(events)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if projected != wo.Status {
		return projected, fmt.Errorf("%w: history projects %s but work order is %s", ErrStorage, projected, wo.Status)
	}
	return projected, nil
}

func (u *WorkOrderLifecycle) QualityVerdict(ctx context.Context, workOrderID string) (entities.QualityVerdict, error) {
	wo, err := u.Status(ctx, workOrderID)
	if err != nil {
		return entities.QualityVerdict{}, err
	}
	v, ok, err := u.gate.Current(ctx, u.repo, wo.ID)
	if err != nil {
		return entities.QualityVerdict{}, err
	}
	if !ok {
		return entities.QualityVerdict{}, ErrQualityVerdictNotFound
	}
	return v, nil
}

type transitionRequest struct {
	op          string
	workOrderID string
	actorID     string
	comment     string
	target      entities.WorkOrderStatus
	trigger     lifecycle.Trigger
	// sameEffect reports whether the order also carries the side data of
	// this request. Consulted only when the latest event matches it.
	sameEffect func(wo entities.WorkOrder) bool
	apply      func(wo *entities.WorkOrder)
}

// transition runs a plain status change: load, replay check, validate,
// write, append.
func (u *WorkOrderLifecycle) transition(ctx context.Context, req transitionRequest) (entities.WorkOrder, error) {
	workOrderID, actorID, err := requireIDs(req.workOrderID, req.actorID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	comment := strings.TrimSpace(req.comment)

	var (
		result  entities.WorkOrder
		changed bool
	)
	err = u.transact(ctx, req.op, workOrderID, func(ctx context.Context, tx interfaces.IWorkOrderTx) error {
		changed = false
		wo, err := u.load(ctx, tx, workOrderID)
		if err != nil {
			return err
		}
		replay, err := u.isReplay(ctx, tx, wo, req, actorID)
		if err != nil {
			return err
		}
		if replay {
			result = wo
			return nil
		}

		next := wo
		next.Status = req.target
		if req.apply != nil {
			req.apply(&next)
		}
		updated, _, err := u.advance(ctx, tx, wo, next, req.trigger, "", comment, actorID, u.now())
		if err != nil {
			return err
		}
		result, changed = updated, true
		return nil
	})
	if err != nil {
		err = u.attachStatus(ctx, workOrderID, err)
		u.logFailure(req.op, workOrderID, actorID, err)
		return entities.WorkOrder{}, err
	}

	if changed {
		u.logger.Info("work order transition committed",
			zap.String("op", req.op),
			zap.String("work_order_id", workOrderID),
			zap.String("status", string(result.Status)),
			zap.Int64("version", result.Version),
			zap.String("actor", actorID))
		u.notify(ctx, result, actorID, nil, result.UpdatedAt)
	}
	return result, nil
}

// isReplay reports whether req repeats the transition that produced the
// current state of wo: same target, same trigger and same actor as the
// latest ledger event.
func (u *WorkOrderLifecycle) isReplay(
	ctx context.Context,
	tx interfaces.IWorkOrderTx,
	wo entities.WorkOrder,
	req transitionRequest,
	actorID string,
) (bool, error) {
	if wo.Status != req.target {
		return false, nil
	}
	last, ok, err := u.ledger.latest(ctx, tx, wo)
	if err != nil || !ok {
		return false, err
	}
	if last.Trigger != string(req.trigger) || last.ActorID != actorID {
		return false, nil
	}
	return req.sameEffect == nil || req.sameEffect(wo), nil
}

// advance validates current -> next, writes next guarded by the current
// version and appends the matching ledger event.
func (u *WorkOrderLifecycle) advance(
	ctx context.Context,
	tx interfaces.IWorkOrderTx,
	current, next entities.WorkOrder,
	trigger lifecycle.Trigger,
	stageID, comment, actorID string,
	now time.Time,
) (entities.WorkOrder, entities.StatusEvent, error) {
	if err := u.machine.Validate(current.Status, next.Status, trigger); err != nil {
		return entities.WorkOrder{}, entities.StatusEvent{}, reject(current, ErrInvalidTransition, err.Error())
	}

	next.Version = current.Version + 1
	next.UpdatedAt = now
	if err := tx.UpdateWorkOrder(ctx, next, current.Version); err != nil {
		return entities.WorkOrder{}, entities.StatusEvent{}, classify(err)
	}
	event, err := u.ledger.append(ctx, tx, next, trigger, stageID, comment, actorID, now)
	if err != nil {
		return entities.WorkOrder{}, entities.StatusEvent{}, err
	}
	return next, event, nil
}

func (u *WorkOrderLifecycle) load(ctx context.Context, tx interfaces.IWorkOrderTx, workOrderID string) (entities.WorkOrder, error) {
	wo, err := tx.GetWorkOrder(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, classify(err)
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}

// transact runs fn in a store transaction, retrying transactions that lost
// a race up to MaxAttempts times. Other errors are returned at once.
func (u *WorkOrderLifecycle) transact(ctx context.Context, op, key string, fn func(ctx context.Context, tx interfaces.IWorkOrderTx) error) error {
	for attempt := 1; ; attempt++ {
		err := classify(u.repo.WithinTx(ctx, fn))
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrConcurrentModification) || attempt >= u.cfg.MaxAttempts {
			return err
		}

		u.logger.Warn("transaction lost a race, retrying",
			zap.String("op", op),
			zap.String("key", key),
			zap.Int("attempt", attempt),
			zap.Error(err))
		if u.cfg.RetryBackoff > 0 {
			timer := time.NewTimer(u.cfg.RetryBackoff * time.Duration(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
}

// attachStatus gives a lost race that ran out of retries the status the
// order has now.
func (u *WorkOrderLifecycle) attachStatus(ctx context.Context, workOrderID string, err error) error {
	if !errors.Is(err, ErrConcurrentModification) {
		return err
	}
	if _, ok := CurrentStatusOf(err); ok {
		return err
	}
	wo, readErr := u.repo.GetWorkOrder(ctx, workOrderID)
	if readErr != nil || wo.ID == "" {
		return err
	}
	return reject(wo, err, fmt.Sprintf("gave up after %d attempts", u.cfg.MaxAttempts))
}

// notify emits the change event of a committed transition. Failures are
// logged and dropped: the transition is already durable.
func (u *WorkOrderLifecycle) notify(ctx context.Context, wo entities.WorkOrder, actorID string, stage *entities.WorkOrderStage, at time.Time) {
	if u.notifier == nil {
		return
	}
	event := entities.WorkOrderChangeEvent{
		WorkOrderID:    wo.ID,
		OrderNumber:    wo.OrderNumber,
		NewStatus:      wo.Status,
		StageCompleted: stage,
		ActorID:        actorID,
		Timestamp:      at,
	}

	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.cfg.NotifyTimeout)
	defer cancel()
	if err := u.notifier.NotifyWorkOrderChanged(nctx, event); err != nil {
		u.logger.Warn("work order notification failed",
			zap.String("work_order_id", wo.ID),
			zap.String("status", string(wo.Status)),
			zap.Error(err))
	}
}

func (u *WorkOrderLifecycle) logFailure(op, workOrderID, actorID string, err error) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("work_order_id", workOrderID),
		zap.String("actor", actorID),
		zap.Error(err),
	}
	if status, ok := CurrentStatusOf(err); ok {
		fields = append(fields, zap.String("current_status", string(status)))
	}
	if errors.Is(err, ErrStorage) || errors.Is(err, ErrConcurrentModification) {
		u.logger.Error("work order operation failed", fields...)
		return
	}
	u.logger.Info("work order operation rejected", fields...)
}

func requireIDs(workOrderID, actorID string) (string, string, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	actorID = strings.TrimSpace(actorID)
	if workOrderID == "" {
		return "", "", ErrInvalidWorkOrderID
	}
	if actorID == "" {
		return "", "", ErrInvalidActor
	}
	return workOrderID, actorID, nil
}
