package repository

import (
	"context"
	"time"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"

	"github.com/google/uuid"
)

type CarRepository struct {
	db db.DBTX
}

func NewCarRepository(dbtx db.DBTX) *CarRepository {
	return &CarRepository{db: dbtx}
}

const findCarForUpdateSQL = `
SELECT id, garage_id, make, model, year, price_per_day_cents, status, rented_reservation_id, created_at, updated_at
FROM cars
WHERE id = $1
FOR UPDATE`

// FindForUpdate locks the car row until the surrounding transaction ends.
func (r *CarRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	row := r.db.QueryRow(ctx, findCarForUpdateSQL, id)

	var (
		carID, garageID      uuid.UUID
		carMake, model       string
		year                 int32
		pricePerDayCents     int64
		statusStr            string
		rentedReservationID  *uuid.UUID
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&carID, &garageID, &carMake, &model, &year, &pricePerDayCents, &statusStr, &rentedReservationID, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find car for update", err)
	}

	status, err := car.NewStatus(statusStr)
	if err != nil {
		return nil, infra.WrapRepoErr("car row holds invalid status", err, infra.KindDBFailure)
	}

	return car.ReconstructCar(carID, garageID, carMake, model, year, pricePerDayCents, status, rentedReservationID, createdAt, updatedAt), nil
}

const saveCarStatusSQL = `
UPDATE cars
SET status = $2, rented_reservation_id = $3, updated_at = now()
WHERE id = $1`

func (r *CarRepository) SaveStatus(ctx context.Context, c *car.Car) error {
	tag, err := r.db.Exec(ctx, saveCarStatusSQL, c.ID(), c.Status().String(), c.RentedReservationID())
	if err != nil {
		return infra.WrapRepoErr("failed to save car status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found on status save", nil, infra.KindNotFound)
	}
	return nil
}
