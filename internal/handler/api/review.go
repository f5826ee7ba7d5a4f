package api

import (
	"errors"
	"net/http"

	"car-rental-api/internal/domain/user"
	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/handler/httperr"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
}

func NewReviewHandler(reviewCommands commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{reviewCommands: reviewCommands}
}

// @Summary Create review
// @Description Review a car after a completed rental
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review request"
// @Success 201 {object} resdto.CreateReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing authenticated user"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	reviewID, err := h.reviewCommands.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidReview):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Rating must be 1-5 and comment must be non-empty", nil)
		case errs.Is(err, commands.ErrReviewNotAllowed):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Reviews require a completed rental of this car", nil)
		case errs.Is(err, commands.ErrDuplicateReview):
			httperr.AbortWithError(c, http.StatusConflict, err, "You already reviewed this car", nil)
		case errs.Is(err, commands.ErrCarNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateReviewResponse{ID: reviewID})
}

func actor(c *gin.Context) (uuid.UUID, user.Role, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return uuid.Nil, "", false
	}
	return userID, role, true
}
