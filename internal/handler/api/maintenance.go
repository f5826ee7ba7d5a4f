package api

import (
	"net/http"

	"car-rental-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	maintenanceCommands commands.MaintenanceCommands
}

func NewMaintenanceHandler(maintenanceCommands commands.MaintenanceCommands) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceCommands: maintenanceCommands}
}

// @Summary Reconcile car statuses
// @Description Release rented cars whose reservations have all ended
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} commands.ReconcileResult
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/maintenance/reconcile-cars [post]
func (h *MaintenanceHandler) ReconcileCars(c *gin.Context) {
	result, err := h.maintenanceCommands.ReconcileCarStatuses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Complete elapsed reservations
// @Description Mark confirmed reservations past their return date as completed
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} commands.CompleteElapsedResult
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/maintenance/complete-elapsed [post]
func (h *MaintenanceHandler) CompleteElapsed(c *gin.Context) {
	result, err := h.maintenanceCommands.CompleteElapsed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}
