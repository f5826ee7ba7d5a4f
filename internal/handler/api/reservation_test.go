//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/handler/api"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/tests/common/builder"
	"car-rental-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubReservationCommands struct {
	createView *queries.ReservationView
	createErr  error
	cancelView *queries.ReservationView
	cancelErr  error

	lastUserID uuid.UUID
}

func (s *stubReservationCommands) Create(_ context.Context, userID uuid.UUID, _ commands.CreateReservationInput) (*queries.ReservationView, error) {
	s.lastUserID = userID
	return s.createView, s.createErr
}

func (s *stubReservationCommands) Cancel(_ context.Context, actorID uuid.UUID, _ user.Role, _ uuid.UUID) (*queries.ReservationView, error) {
	s.lastUserID = actorID
	return s.cancelView, s.cancelErr
}

type stubReservationQueries struct {
	view    *queries.ReservationView
	viewErr error
	items   []*queries.ReservationListItem
	listErr error
}

func (s *stubReservationQueries) GetByID(_ context.Context, _ uuid.UUID, _ user.Role, _ uuid.UUID) (*queries.ReservationView, error) {
	return s.view, s.viewErr
}

func (s *stubReservationQueries) GetByIDSystem(_ context.Context, _ uuid.UUID) (*queries.ReservationView, error) {
	return s.view, s.viewErr
}

func (s *stubReservationQueries) ListByUser(_ context.Context, _ uuid.UUID) ([]*queries.ReservationListItem, error) {
	return s.items, s.listErr
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *stubReservationCommands
	queries  *stubReservationQueries
	userID   uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.commands = &stubReservationCommands{}
	s.queries = &stubReservationQueries{}
	s.userID = uuid.New()
	handler := api.NewReservationHandler(s.commands, s.queries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			c.Abort()
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, handler.CreateReservation)
	s.router.GET("/reservations", authMiddleware, handler.GetUserReservations)
	s.router.GET("/reservations/:id", authMiddleware, handler.GetReservation)
	s.router.POST("/reservations/:id/cancel", authMiddleware, handler.CancelReservation)
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the booked reservation", func() {
		view := builder.NewReservationBuilder().BuildView()
		s.commands.createView = view
		s.commands.createErr = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.TotalPriceCents, response.TotalPriceCents)
		s.Equal("confirmed", response.Status)
		s.Equal(s.userID, s.commands.lastUserID)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"car_id": "not-a-uuid"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid interval",
				commandsError:  commands.ErrInvalidInterval,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Pickup date must be before return date",
			},
			{
				// The usecase marks sentinels onto repository causes, so the
				// handler must see through the mark.
				name:           "car not found",
				commandsError:  errs.Mark(errs.New("no car row"), commands.ErrCarNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Car not found",
			},
			{
				name:           "car not available",
				commandsError:  commands.ErrCarNotAvailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Car is not available",
			},
			{
				name:           "overlapping reservation",
				commandsError:  commands.ErrReservationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.commands.createView = nil
				s.commands.createErr = tc.commandsError

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	s.Run("success: returns 200 OK with ReservationResponse", func() {
		view := builder.NewReservationBuilder().BuildView()
		view.ID = reservationID
		s.queries.view = view
		s.queries.viewErr = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reservationID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.queries.view = nil
		s.queries.viewErr = queries.ErrReservationNotFound

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 403 Forbidden for another user's reservation", func() {
		s.queries.view = nil
		s.queries.viewErr = queries.ErrAccessDenied

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *ReservationHandlerTestSuite) TestGetUserReservations() {
	url := "/reservations"

	s.Run("success: returns the user's reservations", func() {
		s.queries.items = []*queries.ReservationListItem{
			{ID: uuid.New(), Status: "confirmed"},
			{ID: uuid.New(), Status: "cancelled"},
		}
		s.queries.listErr = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/cancel"

	s.Run("success: returns 200 OK with the cancelled reservation", func() {
		view := builder.NewReservationBuilder().BuildView()
		view.ID = reservationID
		view.Status = "cancelled"
		s.commands.cancelView = view
		s.commands.cancelErr = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/invalid-uuid/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "not owned",
				commandsError:  commands.ErrNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "already cancelled",
				commandsError:  errs.Mark(errs.New("reservation is cancelled"), commands.ErrInvalidReservationState),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "confirmed reservation",
			},
			{
				name:           "transaction conflict",
				commandsError:  commands.ErrReservationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "please retry",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.commands.cancelView = nil
				s.commands.cancelErr = tc.commandsError

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
