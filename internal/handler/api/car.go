package api

import (
	"net/http"

	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CarHandler struct {
	carQueries    queries.CarQueries
	reviewQueries queries.ReviewQueries
}

func NewCarHandler(carQueries queries.CarQueries, reviewQueries queries.ReviewQueries) *CarHandler {
	return &CarHandler{
		carQueries:    carQueries,
		reviewQueries: reviewQueries,
	}
}

// @Summary Get car
// @Description Get car details by ID
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID format",
		})
		return
	}

	view, err := h.carQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarView(view))
}

// @Summary Get car bookings
// @Description Get the confirmed rental intervals of a car
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {array} resdto.BookedRangeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cars/{id}/bookings [get]
func (h *CarHandler) GetCarBookings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID format",
		})
		return
	}

	ranges, err := h.carQueries.BookedRanges(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.BookedRangeResponse, len(ranges))
	for i, r := range ranges {
		response[i] = resdto.FromBookedRange(r)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List car reviews
// @Description List the reviews of a car, newest first
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cars/{id}/reviews [get]
func (h *CarHandler) ListCarReviews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID format",
		})
		return
	}

	items, err := h.reviewQueries.ListByCar(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.ReviewResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromReviewListItem(item)
	}
	c.JSON(http.StatusOK, response)
}
