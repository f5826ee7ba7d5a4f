package api

import (
	"net/http"

	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GarageHandler struct {
	garageQueries queries.GarageQueries
}

func NewGarageHandler(garageQueries queries.GarageQueries) *GarageHandler {
	return &GarageHandler{garageQueries: garageQueries}
}

// @Summary List garages
// @Description List all rental garages
// @Tags garages
// @Produce json
// @Success 200 {array} resdto.GarageResponse
// @Router /garages [get]
func (h *GarageHandler) ListGarages(c *gin.Context) {
	views, err := h.garageQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.GarageResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromGarageView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get garage
// @Description Get garage by ID
// @Tags garages
// @Produce json
// @Param id path string true "Garage ID"
// @Success 200 {object} resdto.GarageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /garages/{id} [get]
func (h *GarageHandler) GetGarage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid garage ID format",
		})
		return
	}

	view, err := h.garageQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrGarageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Garage not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGarageView(view))
}

// @Summary List garage cars
// @Description List the cars of a garage
// @Tags garages
// @Produce json
// @Param id path string true "Garage ID"
// @Success 200 {array} resdto.CarListResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /garages/{id}/cars [get]
func (h *GarageHandler) ListGarageCars(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid garage ID format",
		})
		return
	}

	items, err := h.garageQueries.ListCars(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrGarageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Garage not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.CarListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromCarListItem(item)
	}
	c.JSON(http.StatusOK, response)
}
