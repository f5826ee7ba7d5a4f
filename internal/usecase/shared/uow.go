package shared

import (
	"context"
	"time"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/domain/review"
	"car-rental-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTxConflict marks a write transaction that still failed with a
// serialization or deadlock error after the internal retry. Callers map it
// to their own conflict error.
var ErrTxConflict = errs.New("transaction conflict")

type UnitOfWork interface {
	// Within runs fn in a write transaction, retrying once on
	// serialization/deadlock failures before marking the error ErrTxConflict.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads gives access to command-side reads outside a transaction.
	Reads() CommandReads
}

type Tx interface {
	Cars() CarRepository
	Reservations() ReservationRepository
	Reviews() ReviewRepository
}

// CommandReads are the lookups commands need before opening a transaction.
type CommandReads interface {
	RentedCarIDs(ctx context.Context) ([]uuid.UUID, error)
	ElapsedConfirmedReservationIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	UserByEmail(ctx context.Context, email string) (*UserCredentials, error)
}

type CarRepository interface {
	// FindForUpdate locks the car row for the rest of the transaction,
	// serializing concurrent bookings of the same car.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*car.Car, error)
	SaveStatus(ctx context.Context, c *car.Car) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	SaveStatus(ctx context.Context, res *reservation.Reservation) error
	// HasOverlap reports whether any confirmed reservation of the car shares
	// at least one day with dates (inclusive boundaries).
	HasOverlap(ctx context.Context, carID uuid.UUID, dates reservation.DateRange) (bool, error)
	// HasActiveAfter reports whether a confirmed reservation of the car ends
	// at or after the given instant.
	HasActiveAfter(ctx context.Context, carID uuid.UUID, now time.Time) (bool, error)
	// HasCompletedFor reports whether the user has a completed reservation of
	// the car whose return date has passed.
	HasCompletedFor(ctx context.Context, userID, carID uuid.UUID, now time.Time) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) (uuid.UUID, error)
	ExistsFor(ctx context.Context, userID, carID uuid.UUID) (bool, error)
}

type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
}

// BookingEvent is published after a reservation transaction commits.
// Delivery is best effort; failures are logged, never surfaced.
type BookingEvent struct {
	Type          string    `json:"type"`
	ReservationID uuid.UUID `json:"reservation_id"`
	CarID         uuid.UUID `json:"car_id"`
	UserID        uuid.UUID `json:"user_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

const (
	BookingEventConfirmed = "booking_confirmed"
	BookingEventCancelled = "booking_cancelled"
)

type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
}
