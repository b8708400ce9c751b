package handlers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"iter"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mecanica_workorder/internal/adapter/http/handlers/mocks"
	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/usecase"
	"mecanica_workorder/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWorkOrderRouter(h *WorkOrderHandler) *gin.Engine {
	r := gin.New()
	wo := r.Group("/v1/work-orders")
	wo.POST("", h.CreateWorkOrder)
	wo.GET("/:id", h.GetWorkOrder)
	wo.PATCH("/:id/assign", h.AssignMechanic)
	wo.PATCH("/:id/parts-waiting", h.MarkPartsWaiting)
	wo.PATCH("/:id/parts-arrived", h.PartsArrived)
	wo.PATCH("/:id/cancel", h.CancelWorkOrder)
	wo.PATCH("/:id/stages/complete", h.CompleteActiveStage)
	wo.PATCH("/:id/quality-check", h.SubmitQualityCheck)
	wo.GET("/:id/stages", h.ListStages)
	wo.GET("/:id/stages/active", h.GetActiveStage)
	wo.GET("/:id/progress", h.GetProgress)
	wo.GET("/:id/history", h.GetHistory)
	wo.GET("/:id/history/verify", h.VerifyHistory)
	wo.GET("/:id/quality-verdict", h.GetQualityVerdict)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func sampleWorkOrder(status entities.WorkOrderStatus) entities.WorkOrder {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return entities.WorkOrder{
		ID:          "wo-1",
		OrderNumber: "OS-1001",
		Status:      status,
		TotalCost:   480,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func seqOf(events []entities.StatusEvent, tail error) iter.Seq2[entities.StatusEvent, error] {
	return func(yield func(entities.StatusEvent, error) bool) {
		for _, e := range events {
			if !yield(e, nil) {
				return
			}
		}
		if tail != nil {
			yield(entities.StatusEvent{}, tail)
		}
	}
}

func TestWorkOrderHandler_CreateWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		w := doRequest(r, http.MethodPost, "/v1/work-orders", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		w := doRequest(r, http.MethodPost, "/v1/work-orders", `{"order_number":"OS-1001"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().CreateWorkOrder(gomock.Any(), gomock.Any()).Return(entities.WorkOrder{}, usecase.ErrInvalidTotalCost)

		w := doRequest(r, http.MethodPost, "/v1/work-orders", `{"order_number":"OS-1001","total_cost":-5,"actor_id":"recepcao"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_REQUEST" {
			t.Fatalf("unexpected error body: %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().CreateWorkOrder(gomock.Any(), usecase.CreateWorkOrderCommand{
			OrderNumber: "OS-1001",
			TotalCost:   480,
			ActorID:     "recepcao",
		}).Return(sampleWorkOrder(entities.WorkOrderStatusCreated), nil)

		w := doRequest(r, http.MethodPost, "/v1/work-orders", `{"order_number":" OS-1001 ","total_cost":480,"actor_id":"recepcao"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["id"] != "wo-1" || body["status"] != "created" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestWorkOrderHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("assign mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().AssignMechanic(gomock.Any(), "wo-1", "mech-1", "admin-1").Return(sampleWorkOrder(entities.WorkOrderStatusInProgress), nil)

		w := doRequest(r, http.MethodPatch, "/v1/work-orders/wo-1/assign", `{"mechanic_id":"mech-1","actor_id":"admin-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("assign without mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		w := doRequest(r, http.MethodPatch, "/v1/work-orders/wo-1/assign", `{"actor_id":"admin-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid transition returns current status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().MarkPartsWaiting(gomock.Any(), "wo-1", "pastilhas", "mech-1").Return(entities.WorkOrder{}, &usecase.RejectionError{
			Err:           usecase.ErrInvalidTransition,
			WorkOrderID:   "wo-1",
			CurrentStatus: entities.WorkOrderStatusCancelled,
		})

		w := doRequest(r, http.MethodPatch, "/v1/work-orders/wo-1/parts-waiting", `{"comment":"pastilhas","actor_id":"mech-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "INVALID_TRANSITION" || body.CurrentStatus != "cancelled" {
			t.Fatalf("unexpected error body: %+v", body)
		}
	})

	t.Run("parts arrived", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().PartsArrived(gomock.Any(), "wo-1", "", "mech-1").Return(sampleWorkOrder(entities.WorkOrderStatusInProgress), nil)

		w := doRequest(r, http.MethodPatch, "/v1/work-orders/wo-1/parts-arrived", `{"actor_id":"mech-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel lost race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		lost := &usecase.RejectionError{
			Err:           usecase.ErrConcurrentModification,
			WorkOrderID:   "wo-1",
			CurrentStatus: entities.WorkOrderStatusPartsWaiting,
		}
		uc.EXPECT().Cancel(gomock.Any(), "wo-1", "", "admin-1").Return(entities.WorkOrder{}, lost)

		w := doRequest(r, http.MethodPatch, "/v1/work-orders/wo-1/cancel", `{"actor_id":"admin-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "CONCURRENT_MODIFICATION" || body.CurrentStatus != "parts_waiting" {
			t.Fatalf("unexpected error body: %+v", body)
		}
	})
}

func TestWorkOrderHandler_CompleteActiveStage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		next := entities.WorkOrderStage{ID: "s3", SequenceIndex: 3, Name: "Montagem"}
		uc.EXPECT().CompleteActiveStage(gomock.Any(), "wo-1", "s2", "ok", "mech-1").Return(usecase.StageCompletionResult{
			WorkOrder:      sampleWorkOrder(entities.WorkOrderStatusInProgress),
			CompletedStage: entities.WorkOrderStage{ID: "s2", SequenceIndex: 2, IsCompleted: true},
			NextActive:     &next,
			Progress:       usecase.StageProgress{Completed: 2, Total: 3, Percent: 67},
		}, nil)

		w := doRequest(r, http.MethodPatch, "/v1/work-orders/wo-1/stages/complete", `{"stage_id":"s2","comment":"ok","actor_id":"mech-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			NextActiveStage struct {
				ID string `json:"id"`
			} `json:"next_active_stage"`
			Progress struct {
				Percent int `json:"percent"`
			} `json:"progress"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.NextActiveStage.ID != "s3" || body.Progress.Percent != 67 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("no active stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().CompleteActiveStage(gomock.Any(), "wo-1", "", "", "mech-1").Return(usecase.StageCompletionResult{}, &usecase.RejectionError{
			Err:           usecase.ErrNoActiveStage,
			WorkOrderID:   "wo-1",
			CurrentStatus: entities.WorkOrderStatusCompleted,
		})

		w := doRequest(r, http.MethodPatch, "/v1/work-orders/wo-1/stages/complete", `{"actor_id":"mech-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "NO_ACTIVE_STAGE" || body.CurrentStatus != "completed" {
			t.Fatalf("unexpected error body: %+v", body)
		}
	})
}

func TestWorkOrderHandler_SubmitQualityCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
	r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

	uc.EXPECT().SubmitQualityCheck(gomock.Any(), "wo-1", entities.QualityOutcomeIssues, "ruído", "admin-1").Return(usecase.QualityCheckResult{
		WorkOrder: sampleWorkOrder(entities.WorkOrderStatusQualityIssues),
		Verdict:   entities.QualityVerdict{ID: "v-1", Outcome: entities.QualityOutcomeIssues, Comment: "ruído", CheckedBy: "admin-1"},
	}, nil)

	w := doRequest(r, http.MethodPatch, "/v1/work-orders/wo-1/quality-check", `{"outcome":"Reprovado","comment":"ruído","actor_id":"admin-1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"outcome":"issues"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestWorkOrderHandler_Queries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("work order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().Status(gomock.Any(), "wo-404").Return(entities.WorkOrder{}, usecase.ErrWorkOrderNotFound)

		w := doRequest(r, http.MethodGet, "/v1/work-orders/wo-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("stages with progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().Stages(gomock.Any(), "wo-1").Return([]entities.WorkOrderStage{
			{ID: "s1", SequenceIndex: 1, IsCompleted: true},
			{ID: "s2", SequenceIndex: 2},
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/work-orders/wo-1/stages", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"percent":50`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("no active stage left", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().ActiveStage(gomock.Any(), "wo-1").Return(entities.WorkOrderStage{}, false, nil)

		w := doRequest(r, http.MethodGet, "/v1/work-orders/wo-1/stages/active", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"active_stage":null`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().Progress(gomock.Any(), "wo-1").Return(usecase.StageProgress{Completed: 1, Total: 3, Percent: 33}, nil)

		w := doRequest(r, http.MethodGet, "/v1/work-orders/wo-1/progress", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"percent":33`) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("quality verdict missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().QualityVerdict(gomock.Any(), "wo-1").Return(entities.QualityVerdict{}, usecase.ErrQualityVerdictNotFound)

		w := doRequest(r, http.MethodGet, "/v1/work-orders/wo-1/quality-verdict", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_History(t *testing.T) {
	gin.SetMode(gin.TestMode)
	events := []entities.StatusEvent{
		{ID: "e1", Sequence: 1, Status: entities.WorkOrderStatusInProgress, Trigger: "assign_mechanic", ActorID: "admin-1"},
		{ID: "e2", Sequence: 2, Status: entities.WorkOrderStatusInProgress, Trigger: "complete_stage", StageID: "s1", ActorID: "mech-1"},
	}

	t.Run("json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().History(gomock.Any(), "wo-1").Return(seqOf(events, nil), nil)

		w := doRequest(r, http.MethodGet, "/v1/work-orders/wo-1/history", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Events []struct {
				Sequence int64 `json:"sequence"`
			} `json:"events"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body.Events) != 2 || body.Events[0].Sequence != 1 || body.Events[1].Sequence != 2 {
			t.Fatalf("unexpected events: %s", w.Body.String())
		}
	})

	t.Run("read failure before the first byte", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().History(gomock.Any(), "wo-1").Return(seqOf(events, usecase.ErrStorage), nil)

		w := doRequest(r, http.MethodGet, "/v1/work-orders/wo-1/history", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("ndjson", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().History(gomock.Any(), "wo-1").Return(seqOf(events, nil), nil)

		w := doRequest(r, http.MethodGet, "/v1/work-orders/wo-1/history?format=ndjson", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/x-ndjson" {
			t.Fatalf("unexpected content type %q", ct)
		}
		var lines int
		sc := bufio.NewScanner(w.Body)
		for sc.Scan() {
			var e struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
				t.Fatalf("invalid line %q: %v", sc.Text(), err)
			}
			if e.ID != events[lines].ID {
				t.Fatalf("unexpected event order: %s", sc.Text())
			}
			lines++
		}
		if lines != 2 {
			t.Fatalf("expected 2 lines, got %d", lines)
		}
	})

	t.Run("unknown work order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().History(gomock.Any(), "wo-404").Return(nil, usecase.ErrWorkOrderNotFound)

		w := doRequest(r, http.MethodGet, "/v1/work-orders/wo-404/history", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("verify consistent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().VerifyHistory(gomock.Any(), "wo-1").Return(entities.WorkOrderStatusInProgress, nil)

		w := doRequest(r, http.MethodGet, "/v1/work-orders/wo-1/history/verify", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"consistent":true`) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("verify diverging", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderLifecycle(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc, nil))

		uc.EXPECT().VerifyHistory(gomock.Any(), "wo-1").Return(entities.WorkOrderStatusCompleted, usecase.ErrStorage)

		w := doRequest(r, http.MethodGet, "/v1/work-orders/wo-1/history/verify", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"consistent":false`) || !strings.Contains(w.Body.String(), `"projected_status":"completed"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapWorkOrderError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidWorkOrderID, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrInvalidOutcome, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrWorkOrderNotFound, http.StatusNotFound, "WORK_ORDER_NOT_FOUND"},
		{usecase.ErrQualityVerdictNotFound, http.StatusNotFound, "QUALITY_VERDICT_NOT_FOUND"},
		{usecase.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
		{usecase.ErrNoActiveStage, http.StatusConflict, "NO_ACTIVE_STAGE"},
		{usecase.ErrConcurrentModification, http.StatusConflict, "CONCURRENT_MODIFICATION"},
		{usecase.ErrEmptyStageCatalog, http.StatusInternalServerError, "STAGE_CATALOG_UNAVAILABLE"},
		{usecase.ErrStorage, http.StatusInternalServerError, "INTERNAL_ERROR"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		appErr := mapWorkOrderError(tc.err)
		if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
			t.Fatalf("mapWorkOrderError(%v) = %d %s, want %d %s", tc.err, appErr.HTTPStatus, appErr.Code, tc.status, tc.code)
		}
		if appErr.CurrentStatus != "" {
			t.Fatalf("plain errors carry no status, got %q", appErr.CurrentStatus)
		}
	}

	rejected := &usecase.RejectionError{Err: usecase.ErrInvalidTransition, WorkOrderID: "wo-1", CurrentStatus: entities.WorkOrderStatusPartsWaiting}
	if appErr := mapWorkOrderError(rejected); appErr.CurrentStatus != "parts_waiting" || appErr.HTTPStatus != http.StatusConflict {
		t.Fatalf("unexpected mapping: %+v", appErr)
	}
}
