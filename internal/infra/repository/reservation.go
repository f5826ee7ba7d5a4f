package repository

import (
	"context"
	"time"

	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

const createReservationSQL = `
INSERT INTO reservations (id, user_id, car_id, pickup_date, return_date, total_price_cents, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createReservationSQL,
		res.ID(),
		res.UserID(),
		res.CarID(),
		res.Dates().Pickup(),
		res.Dates().Return(),
		res.TotalPrice().Cents(),
		res.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

const findReservationForUpdateSQL = `
SELECT id, user_id, car_id, pickup_date, return_date, total_price_cents, status, created_at, updated_at
FROM reservations
WHERE id = $1
FOR UPDATE`

func (r *ReservationRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, findReservationForUpdateSQL, id)

	var (
		resID, userID, carID uuid.UUID
		pickup, ret          time.Time
		totalPriceCents      int64
		statusStr            string
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&resID, &userID, &carID, &pickup, &ret, &totalPriceCents, &statusStr, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation for update", err)
	}

	dates, err := reservation.NewDateRange(pickup, ret)
	if err != nil {
		return nil, infra.WrapRepoErr("reservation row holds invalid interval", err, infra.KindDBFailure)
	}
	totalPrice, err := reservation.NewMoney(totalPriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("reservation row holds invalid price", err, infra.KindDBFailure)
	}
	status, err := reservation.NewStatus(statusStr)
	if err != nil {
		return nil, infra.WrapRepoErr("reservation row holds invalid status", err, infra.KindDBFailure)
	}

	return reservation.ReconstructReservation(resID, userID, carID, dates, totalPrice, status, createdAt, updatedAt), nil
}

const saveReservationStatusSQL = `
UPDATE reservations
SET status = $2, updated_at = now()
WHERE id = $1`

func (r *ReservationRepository) SaveStatus(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx, saveReservationStatusSQL, res.ID(), res.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to save reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found on status save", nil, infra.KindNotFound)
	}
	return nil
}

// Inclusive-boundary overlap: an existing confirmed interval [s, e] conflicts
// when pickup <= e AND return >= s.
const hasOverlapSQL = `
SELECT EXISTS (
	SELECT 1
	FROM reservations
	WHERE car_id = $1
	  AND status = 'confirmed'
	  AND pickup_date <= $3
	  AND return_date >= $2
)`

func (r *ReservationRepository) HasOverlap(ctx context.Context, carID uuid.UUID, dates reservation.DateRange) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, hasOverlapSQL, carID, dates.Pickup(), dates.Return()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}
	return exists, nil
}

const hasActiveAfterSQL = `
SELECT EXISTS (
	SELECT 1
	FROM reservations
	WHERE car_id = $1
	  AND status = 'confirmed'
	  AND return_date >= $2
)`

func (r *ReservationRepository) HasActiveAfter(ctx context.Context, carID uuid.UUID, now time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, hasActiveAfterSQL, carID, now).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active reservations", err)
	}
	return exists, nil
}

const hasCompletedForSQL = `
SELECT EXISTS (
	SELECT 1
	FROM reservations
	WHERE user_id = $1
	  AND car_id = $2
	  AND status = 'completed'
	  AND return_date <= $3
)`

func (r *ReservationRepository) HasCompletedFor(ctx context.Context, userID, carID uuid.UUID, now time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, hasCompletedForSQL, userID, carID, now).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check completed reservations", err)
	}
	return exists, nil
}
