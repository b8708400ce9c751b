package handlers

//go:generate mockgen -source=../../../usecase/stage_catalog.go -destination=mocks/stage_catalog_mock.go -package=mocks

import (
	"net/http"

	response "mecanica_workorder/internal/adapter/http/dto/response"
	"mecanica_workorder/internal/usecase"

	"github.com/gin-gonic/gin"
)

// StageCatalogHandler serves the global, ordered stage template.
type StageCatalogHandler struct {
	catalog usecase.IStageCatalog
}

func NewStageCatalogHandler(catalog usecase.IStageCatalog) *StageCatalogHandler {
	return &StageCatalogHandler{catalog: catalog}
}

// ListStageTemplates godoc
// @Summary  Stage catalog in execution order
// @Tags     stages
// @Produce  json
// @Success  200  {array}   response.StageTemplateResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /stages [get]
func (h *StageCatalogHandler) ListStageTemplates(c *gin.Context) {
	templates, err := h.catalog.Stages(c.Request.Context())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStageTemplates(templates))
}
