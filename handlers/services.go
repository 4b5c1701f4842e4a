package handlers

import (
	"net/http"
	"strconv"

	"github.com/Fecu3799/project-arq-web/services"
	"github.com/Fecu3799/project-arq-web/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the public and admin views of the service catalog.
type CatalogHandler struct {
	Svc    services.CatalogService
	Logger *zap.Logger
}

func NewCatalogHandler(svc services.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: utils.GetLogger()}
}

func parseID(c *gin.Context, what string) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.WriteError(c, utils.NewInvalidInput("the "+what+" id must be an integer greater than zero"))
		return 0, false
	}
	return id, true
}

// List handles GET /api/v1/services (active entries only).
func (h *CatalogHandler) List(c *gin.Context) {
	list, err := h.Svc.ListActive()
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get handles GET /api/v1/services/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}
	service, err := h.Svc.GetActive(id)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// AdminList handles GET /api/v1/admin/services (inactive included).
func (h *CatalogHandler) AdminList(c *gin.Context) {
	list, err := h.Svc.ListAll()
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// AdminCreate handles POST /api/v1/admin/services.
func (h *CatalogHandler) AdminCreate(c *gin.Context) {
	var input services.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Logger.Warn("AdminCreate: invalid request body", zap.Error(err))
		utils.WriteError(c, utils.NewInvalidInput("the request body is missing or invalid"))
		return
	}
	created, err := h.Svc.Create(input)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// AdminUpdate handles PATCH /api/v1/admin/services/:id.
func (h *CatalogHandler) AdminUpdate(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}
	var patch services.ServicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.Logger.Warn("AdminUpdate: invalid request body", zap.Error(err))
		utils.WriteError(c, utils.NewInvalidInput("the request body is missing or invalid"))
		return
	}
	updated, err := h.Svc.Update(id, patch)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
