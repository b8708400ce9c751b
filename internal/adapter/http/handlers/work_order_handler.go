package handlers

//go:generate mockgen -source=../../../usecase/work_order_lifecycle.go -destination=mocks/work_order_lifecycle_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"net/http"

	request "mecanica_workorder/internal/adapter/http/dto/request"
	response "mecanica_workorder/internal/adapter/http/dto/response"
	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/usecase"
	"mecanica_workorder/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const historyFormatNDJSON = "ndjson"

var (
	errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)
)

// WorkOrderHandler exposes the work order lifecycle to the mechanic and
// admin apps.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderLifecycle
	logger  *zap.Logger
}

func NewWorkOrderHandler(uc usecase.IWorkOrderLifecycle, logger *zap.Logger) *WorkOrderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkOrderHandler{usecase: uc, logger: logger.Named("http")}
}

// CreateWorkOrder godoc
// @Summary      Create a work order
// @Description  Called when a booking is confirmed. Replaying the same order number returns the existing order.
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateWorkOrderRequest  true  "Work order"
// @Success      201   {object}  response.WorkOrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /work-orders [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	wo, err := h.usecase.CreateWorkOrder(c.Request.Context(), payload.ToCommand())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(wo))
}

// GetWorkOrder godoc
// @Summary  Current status of a work order
// @Tags     work-orders
// @Produce  json
// @Param    id   path      string  true  "Work order ID"
// @Success  200  {object}  response.WorkOrderResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /work-orders/{id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	wo, err := h.usecase.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

// AssignMechanic godoc
// @Summary  Assign a mechanic and start the work
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    id    path      string                          true  "Work order ID"
// @Param    body  body      request.AssignMechanicRequest  true  "Mechanic"
// @Success  200   {object}  response.WorkOrderResponse
// @Failure  409   {object}  pkg.HTTPError
// @Router   /work-orders/{id}/assign [patch]
func (h *WorkOrderHandler) AssignMechanic(c *gin.Context) {
	var payload request.AssignMechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	wo, err := h.usecase.AssignMechanic(c.Request.Context(), c.Param("id"), payload.MechanicID, payload.ActorID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

// MarkPartsWaiting godoc
// @Summary  Pause the work until parts arrive
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    id    path      string                      true  "Work order ID"
// @Param    body  body      request.TransitionRequest  true  "Transition"
// @Success  200   {object}  response.WorkOrderResponse
// @Failure  409   {object}  pkg.HTTPError
// @Router   /work-orders/{id}/parts-waiting [patch]
func (h *WorkOrderHandler) MarkPartsWaiting(c *gin.Context) {
	h.transitionByRequest(c, h.usecase.MarkPartsWaiting)
}

// PartsArrived godoc
// @Summary  Resume the work after parts arrived
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    id    path      string                      true  "Work order ID"
// @Param    body  body      request.TransitionRequest  true  "Transition"
// @Success  200   {object}  response.WorkOrderResponse
// @Failure  409   {object}  pkg.HTTPError
// @Router   /work-orders/{id}/parts-arrived [patch]
func (h *WorkOrderHandler) PartsArrived(c *gin.Context) {
	h.transitionByRequest(c, h.usecase.PartsArrived)
}

// CancelWorkOrder godoc
// @Summary  Cancel a work order
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    id    path      string                      true  "Work order ID"
// @Param    body  body      request.TransitionRequest  true  "Transition"
// @Success  200   {object}  response.WorkOrderResponse
// @Failure  409   {object}  pkg.HTTPError
// @Router   /work-orders/{id}/cancel [patch]
func (h *WorkOrderHandler) CancelWorkOrder(c *gin.Context) {
	h.transitionByRequest(c, h.usecase.Cancel)
}

func (h *WorkOrderHandler) transitionByRequest(
	c *gin.Context,
	transition func(ctx context.Context, workOrderID, comment, actorID string) (entities.WorkOrder, error),
) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	wo, err := transition(c.Request.Context(), c.Param("id"), payload.Comment, payload.ActorID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

// CompleteActiveStage godoc
// @Summary      Complete the active stage
// @Description  Completing the last stage moves the order to completed. stage_id, when sent, must be the active stage.
// @Tags         stages
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "Work order ID"
// @Param        body  body      request.CompleteStageRequest  true  "Stage completion"
// @Success      200   {object}  response.StageCompletionResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /work-orders/{id}/stages/complete [patch]
func (h *WorkOrderHandler) CompleteActiveStage(c *gin.Context) {
	var payload request.CompleteStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.CompleteActiveStage(c.Request.Context(), c.Param("id"), payload.StageID, payload.Comment, payload.ActorID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStageCompletion(res))
}

// SubmitQualityCheck godoc
// @Summary  Record the quality verdict of a completed order
// @Tags     quality
// @Accept   json
// @Produce  json
// @Param    id    path      string                        true  "Work order ID"
// @Param    body  body      request.QualityCheckRequest  true  "Verdict (passed | issues)"
// @Success  200   {object}  response.QualityCheckResponse
// @Failure  409   {object}  pkg.HTTPError
// @Router   /work-orders/{id}/quality-check [patch]
func (h *WorkOrderHandler) SubmitQualityCheck(c *gin.Context) {
	var payload request.QualityCheckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.SubmitQualityCheck(c.Request.Context(), c.Param("id"), payload.ResolveOutcome(), payload.Comment, payload.ActorID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQualityCheck(res))
}

// ListStages godoc
// @Summary  Stages, active stage and progress of a work order
// @Tags     stages
// @Produce  json
// @Param    id   path      string  true  "Work order ID"
// @Success  200  {object}  response.StagesResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /work-orders/{id}/stages [get]
func (h *WorkOrderHandler) ListStages(c *gin.Context) {
	id := c.Param("id")
	stages, err := h.usecase.Stages(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStages(id, stages))
}

// GetActiveStage godoc
// @Summary  Active stage of a work order (null once every stage is done)
// @Tags     stages
// @Produce  json
// @Param    id   path      string  true  "Work order ID"
// @Success  200  {object}  response.ActiveStageResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /work-orders/{id}/stages/active [get]
func (h *WorkOrderHandler) GetActiveStage(c *gin.Context) {
	id := c.Param("id")
	st, ok, err := h.usecase.ActiveStage(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromActiveStage(id, st, ok))
}

// GetProgress godoc
// @Summary  Stage completion percentage
// @Tags     stages
// @Produce  json
// @Param    id   path      string  true  "Work order ID"
// @Success  200  {object}  response.ProgressResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /work-orders/{id}/progress [get]
func (h *WorkOrderHandler) GetProgress(c *gin.Context) {
	p, err := h.usecase.Progress(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProgress(p))
}

// GetHistory godoc
// @Summary      Status history of a work order
// @Description  Events in commit order. format=ndjson streams one event per line.
// @Tags         history
// @Produce      json
// @Param        id      path      string  true   "Work order ID"
// @Param        format  query     string  false  "json (default) or ndjson"
// @Success      200     {object}  response.HistoryResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /work-orders/{id}/history [get]
func (h *WorkOrderHandler) GetHistory(c *gin.Context) {
	id := c.Param("id")
	events, err := h.usecase.History(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	if c.Query("format") == historyFormatNDJSON {
		h.streamHistory(c, id, events)
		return
	}

	out := make([]response.StatusEventResponse, 0)
	for e, err := range events {
		if err != nil {
			h.fail(c, err)
			return
		}
		out = append(out, response.FromStatusEvent(e))
	}
	c.JSON(http.StatusOK, response.HistoryResponse{WorkOrderID: id, Events: out})
}

// streamHistory writes one JSON event per line, flushing as pages are read.
// Once the first byte is out the status cannot change, so a read failure
// only ends the stream.
func (h *WorkOrderHandler) streamHistory(c *gin.Context, id string, events iter.Seq2[entities.StatusEvent, error]) {
	c.Header("Content-Type", "application/x-ndjson")
	c.Status(http.StatusOK)
	enc := json.NewEncoder(c.Writer)
	for e, err := range events {
		if err != nil {
			h.logger.Error("history stream aborted", zap.String("work_order_id", id), zap.Error(err))
			return
		}
		if err := enc.Encode(response.FromStatusEvent(e)); err != nil {
			return
		}
		c.Writer.Flush()
	}
}

// VerifyHistory godoc
// @Summary  Replay the history and compare it with the stored status
// @Tags     history
// @Produce  json
// @Param    id   path      string  true  "Work order ID"
// @Success  200  {object}  response.HistoryVerificationResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /work-orders/{id}/history/verify [get]
func (h *WorkOrderHandler) VerifyHistory(c *gin.Context) {
	id := c.Param("id")
	projected, err := h.usecase.VerifyHistory(c.Request.Context(), id)
	if err != nil {
		if projected != "" {
			h.logger.Error("history diverges from work order status",
				zap.String("work_order_id", id),
				zap.String("projected_status", string(projected)),
				zap.Error(err))
			c.JSON(http.StatusOK, response.HistoryVerificationResponse{WorkOrderID: id, ProjectedStatus: string(projected)})
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.HistoryVerificationResponse{WorkOrderID: id, ProjectedStatus: string(projected), Consistent: true})
}

// GetQualityVerdict godoc
// @Summary  Latest quality verdict of a work order
// @Tags     quality
// @Produce  json
// @Param    id   path      string  true  "Work order ID"
// @Success  200  {object}  response.QualityVerdictResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /work-orders/{id}/quality-verdict [get]
func (h *WorkOrderHandler) GetQualityVerdict(c *gin.Context) {
	v, err := h.usecase.QualityVerdict(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQualityVerdict(v))
}

func (h *WorkOrderHandler) fail(c *gin.Context, err error) {
	appErr := mapWorkOrderError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("work_order_id", c.Param("id")),
			zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapWorkOrderError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidOrderNumber),
		errors.Is(err, usecase.ErrInvalidTotalCost),
		errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, usecase.ErrInvalidMechanicID),
		errors.Is(err, usecase.ErrInvalidOutcome):
		appErr = pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		appErr = pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQualityVerdictNotFound):
		appErr = pkg.NewDomainErrorSimple("QUALITY_VERDICT_NOT_FOUND", "No quality verdict for this work order", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		appErr = pkg.NewDomainError("INVALID_TRANSITION", "Operation not allowed in the current status", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrNoActiveStage):
		appErr = pkg.NewDomainError("NO_ACTIVE_STAGE", "Stage is not the active stage", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrStagesNotFound):
		appErr = pkg.NewDomainError("WORK_ORDER_HAS_NO_STAGES", "Work order has no stages", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		appErr = pkg.NewDomainError("CONCURRENT_MODIFICATION", "Work order was modified concurrently, retry", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyStageCatalog), errors.Is(err, usecase.ErrInvalidStageCatalog):
		appErr = pkg.NewDomainError("STAGE_CATALOG_UNAVAILABLE", "Stage catalog is not configured", err, http.StatusInternalServerError)
	default:
		appErr = pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}

	if status, ok := usecase.CurrentStatusOf(err); ok {
		appErr = appErr.WithCurrentStatus(string(status))
	}
	return appErr
}
