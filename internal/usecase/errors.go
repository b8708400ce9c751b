package usecase

import (
	"context"
	"errors"
	"fmt"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/usecase/interfaces"
)

var (
	ErrWorkOrderNotFound      = errors.New("work order not found")
	ErrStagesNotFound         = errors.New("work order has no stages")
	ErrQualityVerdictNotFound = errors.New("quality verdict not found")
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrNoActiveStage          = errors.New("no active stage")
	ErrAlreadyInstantiated    = errors.New("stages already instantiated")
	ErrConcurrentModification = interfaces.ErrConcurrentModification
	ErrStorage                = errors.New("storage error")

	ErrInvalidWorkOrderID  = errors.New("invalid work order id")
	ErrInvalidOrderNumber  = errors.New("invalid order number")
	ErrInvalidTotalCost    = errors.New("invalid total cost")
	ErrInvalidActor        = errors.New("invalid actor id")
	ErrInvalidMechanicID   = errors.New("invalid mechanic id")
	ErrInvalidOutcome      = errors.New("invalid quality outcome")
	ErrInvalidStageCatalog = errors.New("invalid stage catalog")
	ErrEmptyStageCatalog   = errors.New("stage catalog is empty")
)

// RejectionError reports an operation refused for a known work order. It
// carries the authoritative status so callers can reconcile without a
// second round trip.
type RejectionError struct {
	Err           error
	WorkOrderID   string
	CurrentStatus entities.WorkOrderStatus
	Detail        string
}

func (e *RejectionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v (work order %s is %s)", e.Err, e.WorkOrderID, e.CurrentStatus)
	}
	return fmt.Sprintf("%v: %s (work order %s is %s)", e.Err, e.Detail, e.WorkOrderID, e.CurrentStatus)
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}

func reject(wo entities.WorkOrder, err error, detail string) error {
	return &RejectionError{Err: err, WorkOrderID: wo.ID, CurrentStatus: wo.Status, Detail: detail}
}

// CurrentStatusOf extracts the status attached to a rejection, if any.
func CurrentStatusOf(err error) (entities.WorkOrderStatus, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) && rej.CurrentStatus != "" {
		return rej.CurrentStatus, true
	}
	return "", false
}

var domainErrors = []error{
	ErrWorkOrderNotFound,
	ErrStagesNotFound,
	ErrQualityVerdictNotFound,
	ErrInvalidTransition,
	ErrNoActiveStage,
	ErrAlreadyInstantiated,
	ErrConcurrentModification,
	ErrStorage,
	ErrInvalidWorkOrderID,
	ErrInvalidOrderNumber,
	ErrInvalidTotalCost,
	ErrInvalidActor,
	ErrInvalidMechanicID,
	ErrInvalidOutcome,
	ErrInvalidStageCatalog,
	ErrEmptyStageCatalog,
}

// classify turns store failures into the engine taxonomy. Errors that are
// already part of it pass through untouched.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range domainErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		// A unique key taken between our read and our write is a lost race.
		return fmt.Errorf("%w: %w", ErrConcurrentModification, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
