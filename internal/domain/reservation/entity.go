package reservation

import (
	"time"

	"car-rental-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotCancellable = errs.New("only a confirmed reservation can be cancelled")
	ErrNotCompletable = errs.New("only a confirmed reservation can be completed")
	ErrNotEnded       = errs.New("reservation has not ended yet")
)

type Reservation struct {
	id         uuid.UUID
	userID     uuid.UUID
	carID      uuid.UUID
	dates      DateRange
	totalPrice Money
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewReservation builds a confirmed reservation priced at
// days(dates) * pricePerDay. The total is derived here and never taken from
// the client.
func NewReservation(userID, carID uuid.UUID, dates DateRange, pricePerDayCents int64) (*Reservation, error) {
	pricePerDay, err := NewMoney(pricePerDayCents)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		id:         uuid.New(),
		userID:     userID,
		carID:      carID,
		dates:      dates,
		totalPrice: pricePerDay.MultiplyDays(dates.Days()),
		status:     StatusConfirmed,
	}, nil
}

func ReconstructReservation(
	id, userID, carID uuid.UUID,
	dates DateRange,
	totalPrice Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		userID:     userID,
		carID:      carID,
		dates:      dates,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) CarID() uuid.UUID     { return r.carID }
func (r *Reservation) Dates() DateRange     { return r.dates }
func (r *Reservation) TotalPrice() Money    { return r.totalPrice }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func (r *Reservation) IsConfirmed() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// Cancel moves confirmed -> cancelled. Terminal states never re-enter
// confirmed.
func (r *Reservation) Cancel() error {
	if r.status != StatusConfirmed {
		return ErrNotCancellable
	}
	r.status = StatusCancelled
	return nil
}

// Complete moves confirmed -> completed once the rental period has elapsed.
func (r *Reservation) Complete(now time.Time) error {
	if r.status != StatusConfirmed {
		return ErrNotCompletable
	}
	if !r.dates.EndedBy(now) {
		return ErrNotEnded
	}
	r.status = StatusCompleted
	return nil
}
