package commands

import (
	"context"
	"log/slog"
	"time"

	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCarNotFound             = errs.New("car not found")
	ErrCarNotAvailable         = errs.New("car not available")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrReservationConflict     = errs.New("reservation conflict")
	ErrInvalidInterval         = errs.New("invalid rental interval")
	ErrNotOwned                = errs.New("reservation belongs to another user")
	ErrInvalidReservationState = errs.New("reservation is not in a cancellable state")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservationInput struct {
	CarID      uuid.UUID
	PickupDate time.Time
	ReturnDate time.Time
}

type ReservationCommands interface {
	// Create books the car for the interval, marks the car rented and derives
	// the total price server-side. The reservation and car writes share one
	// transaction.
	Create(ctx context.Context, userID uuid.UUID, input CreateReservationInput) (*queries.ReservationView, error)
	// Cancel voids a confirmed reservation owned by the actor (admins may
	// cancel any) and frees the car if this reservation holds it.
	Cancel(ctx context.Context, actorID uuid.UUID, actorRole user.Role, reservationID uuid.UUID) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	publisher          shared.EventPublisher
	clock              clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	publisher shared.EventPublisher,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		publisher:          publisher,
		clock:              clk,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, userID uuid.UUID, input CreateReservationInput) (*queries.ReservationView, error) {
	dates, err := reservation.NewDateRange(input.PickupDate, input.ReturnDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInterval)
	}

	var reservationID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The row lock serializes concurrent bookings of the same car; the
		// overlap check below then sees every committed competitor.
		carEntity, err := tx.Cars().FindForUpdate(ctx, input.CarID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrCarNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !carEntity.IsAvailable() {
			return ErrCarNotAvailable
		}

		overlaps, err := tx.Reservations().HasOverlap(ctx, input.CarID, dates)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if overlaps {
			return ErrReservationConflict
		}

		resEntity, err := reservation.NewReservation(userID, input.CarID, dates, carEntity.PricePerDayCents())
		if err != nil {
			return errs.Mark(err, ErrInvalidInterval)
		}

		reservationID, err = tx.Reservations().Create(ctx, resEntity)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrCarNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := carEntity.Rent(reservationID); err != nil {
			return errs.Mark(err, ErrCarNotAvailable)
		}
		if err := tx.Cars().SaveStatus(ctx, carEntity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		if errs.Is(err, shared.ErrTxConflict) {
			return nil, errs.Mark(err, ErrReservationConflict)
		}
		return nil, err
	}

	c.publish(ctx, shared.BookingEventConfirmed, reservationID, input.CarID, userID)

	// Read-after-write through the read store for the full joined view.
	view, err := c.reservationQueries.GetByIDSystem(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, actorID uuid.UUID, actorRole user.Role, reservationID uuid.UUID) (*queries.ReservationView, error) {
	var carID, ownerID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		resEntity, err := tx.Reservations().FindForUpdate(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !resEntity.IsOwnedBy(actorID) && !actorRole.IsAdmin() {
			return ErrNotOwned
		}

		if err := resEntity.Cancel(); err != nil {
			return errs.Mark(err, ErrInvalidReservationState)
		}
		if err := tx.Reservations().SaveStatus(ctx, resEntity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		carEntity, err := tx.Cars().FindForUpdate(ctx, resEntity.CarID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		// Only the holding reservation frees the car; a cancelled booking for a
		// future window leaves the current renter untouched.
		if carEntity.IsRented() && carEntity.RentedReservationID() != nil && *carEntity.RentedReservationID() == resEntity.ID() {
			if err := carEntity.Release(); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if err := tx.Cars().SaveStatus(ctx, carEntity); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		carID = resEntity.CarID()
		ownerID = resEntity.UserID()
		return nil
	})
	if err != nil {
		if errs.Is(err, shared.ErrTxConflict) {
			return nil, errs.Mark(err, ErrReservationConflict)
		}
		return nil, err
	}

	c.publish(ctx, shared.BookingEventCancelled, reservationID, carID, ownerID)

	view, err := c.reservationQueries.GetByIDSystem(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *reservationCommandsImpl) publish(ctx context.Context, eventType string, reservationID, carID, userID uuid.UUID) {
	if c.publisher == nil {
		return
	}
	event := shared.BookingEvent{
		Type:          eventType,
		ReservationID: reservationID,
		CarID:         carID,
		UserID:        userID,
		OccurredAt:    c.clock.Now(),
	}
	if err := c.publisher.PublishBookingEvent(ctx, event); err != nil {
		slog.Warn("failed to publish booking event",
			"type", eventType,
			"reservation_id", reservationID,
			"error", err.Error())
	}
}
