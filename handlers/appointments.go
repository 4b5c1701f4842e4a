package handlers

import (
	"net/http"

	"github.com/Fecu3799/project-arq-web/services"
	"github.com/Fecu3799/project-arq-web/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the appointment lifecycle endpoints.
type AppointmentHandler struct {
	Svc    services.AppointmentService
	Logger *zap.Logger
}

func NewAppointmentHandler(svc services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc, Logger: utils.GetLogger()}
}

// Create handles POST /api/v1/appointments.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var input services.CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Logger.Warn("Create: invalid request body", zap.Error(err))
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

// Update handles PATCH /api/v1/appointments/:id.
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "appointment")
	if !ok {
		return
	}
	var patch services.AppointmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.Logger.Warn("Update: invalid request body", zap.Error(err))
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

// AdminList handles GET /api/v1/admin/appointments.
func (h *AppointmentHandler) AdminList(c *gin.Context) {
	list, err := h.Svc.List()
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
