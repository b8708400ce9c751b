package interfaces

//go:generate mockgen -source=work_order_repository_interface.go -destination=mocks/work_order_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"errors"

	"mecanica_workorder/internal/domain/entities"
)

var (
	// ErrConcurrentModification is returned by stores when a transaction lost a
	// race (version mismatch, serialization failure, deadlock victim).
	ErrConcurrentModification = errors.New("concurrent modification")
	// ErrAlreadyExists is returned when a unique key is already taken.
	ErrAlreadyExists = errors.New("already exists")
)

// IWorkOrderReader exposes the read side of the work order aggregate.
//
// Following the repository convention of this service, a missing record is
// reported as a zero value (ID == "") with a nil error.
type IWorkOrderReader interface {
	GetWorkOrder(ctx context.Context, id string) (entities.WorkOrder, error)
	GetWorkOrderByNumber(ctx context.Context, orderNumber string) (entities.WorkOrder, error)
	// ListStages returns the stages of an order ascending by sequence index.
	ListStages(ctx context.Context, workOrderID string) ([]entities.WorkOrderStage, error)
	GetQualityVerdict(ctx context.Context, workOrderID string) (entities.QualityVerdict, error)
	// ListStatusEvents returns up to limit events with sequence > afterSequence, ascending.
	ListStatusEvents(ctx context.Context, workOrderID string, afterSequence int64, limit int) ([]entities.StatusEvent, error)
}

// IWorkOrderTx is the write side of one work order transaction. Nothing
// written through it is visible to other readers until the enclosing
// WithinTx returns nil.
type IWorkOrderTx interface {
	IWorkOrderReader

	CreateWorkOrder(ctx context.Context, wo entities.WorkOrder) error
	// UpdateWorkOrder persists wo only if the stored version still equals
	// expectedVersion, otherwise it fails with ErrConcurrentModification.
	UpdateWorkOrder(ctx context.Context, wo entities.WorkOrder, expectedVersion int64) error
	CreateStages(ctx context.Context, stages []entities.WorkOrderStage) error
	// CompleteStage marks a stage completed; it fails with
	// ErrConcurrentModification if the stage was already completed.
	CompleteStage(ctx context.Context, stage entities.WorkOrderStage) error
	// PutQualityVerdict upserts the single verdict of an order.
	PutQualityVerdict(ctx context.Context, v entities.QualityVerdict) error
	AppendStatusEvent(ctx context.Context, e entities.StatusEvent) error
}

// IWorkOrderRepository abstracts the transactional store of work orders,
// their stages, quality verdicts and status events.
//
// WithinTx runs fn as one atomic unit: either every write made through tx is
// committed or none is. Reading a work order through tx locks it (relational
// stores) or pins its version for the commit (DynamoDB).
type IWorkOrderRepository interface {
	IWorkOrderReader
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx IWorkOrderTx) error) error
}
