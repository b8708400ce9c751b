package routes

import (
	"mecanica_workorder/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders = "/work-orders"
	PathStages     = "/stages"
)

func addWorkOrderRoutes(rg *gin.RouterGroup, workOrderHandler *handlers.WorkOrderHandler, stageCatalogHandler *handlers.StageCatalogHandler) {
	workOrders := rg.Group(PathWorkOrders)
	{
		// "Confirma agendamento"
		workOrders.POST("", workOrderHandler.CreateWorkOrder)
		workOrders.GET("/:id", workOrderHandler.GetWorkOrder)

		// App do mecânico
		workOrders.PATCH("/:id/assign", workOrderHandler.AssignMechanic)
		workOrders.PATCH("/:id/parts-waiting", workOrderHandler.MarkPartsWaiting)
		workOrders.PATCH("/:id/parts-arrived", workOrderHandler.PartsArrived)
		workOrders.PATCH("/:id/stages/complete", workOrderHandler.CompleteActiveStage)
		workOrders.GET("/:id/stages", workOrderHandler.ListStages)
		workOrders.GET("/:id/stages/active", workOrderHandler.GetActiveStage)
		workOrders.GET("/:id/progress", workOrderHandler.GetProgress)

		// App administrativo
		workOrders.PATCH("/:id/quality-check", workOrderHandler.SubmitQualityCheck)
		workOrders.GET("/:id/quality-verdict", workOrderHandler.GetQualityVerdict)
		workOrders.PATCH("/:id/cancel", workOrderHandler.CancelWorkOrder)
		workOrders.GET("/:id/history", workOrderHandler.GetHistory)
		workOrders.GET("/:id/history/verify", workOrderHandler.VerifyHistory)
	}

	rg.GET(PathStages, stageCatalogHandler.ListStageTemplates)
}
