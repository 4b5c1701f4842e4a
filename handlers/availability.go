package handlers

import (
	"net/http"
	"strconv"

	"github.com/Fecu3799/project-arq-web/services"
	"github.com/Fecu3799/project-arq-web/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the day availability query.
type AvailabilityHandler struct {
	Svc    services.AvailabilityService
	Logger *zap.Logger
}

func NewAvailabilityHandler(svc services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc, Logger: utils.GetLogger()}
}

// Day handles GET /api/v1/availability/day?date=DD-MM-YY&service_id=N.
func (h *AvailabilityHandler) Day(c *gin.Context) {
	date := c.Query("date")
	rawServiceID := c.Query("service_id")
	if date == "" || rawServiceID == "" {
		utils.WriteError(c, utils.NewInvalidInput("date and service_id are required"))
		return
	}
	serviceID, err := strconv.Atoi(rawServiceID)
	if err != nil {
		utils.WriteError(c, utils.NewInvalidInput("service_id must be an integer greater than zero"))
		return
	}

	slots, err := h.Svc.GetDayAvailability(date, serviceID)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}
