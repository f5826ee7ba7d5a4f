package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarReadStore struct {
	db db.DBTX
}

func NewCarReadStore(dbtx db.DBTX) *CarReadStore {
	return &CarReadStore{db: dbtx}
}

const findCarByIDSQL = `
SELECT c.id, c.garage_id, g.name, g.city, c.make, c.model, c.year, c.price_per_day_cents, c.status
FROM cars c
JOIN garages g ON g.id = c.garage_id
WHERE c.id = $1`

func (s *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	var v queries.CarView
	err := s.db.QueryRow(ctx, findCarByIDSQL, id).
		Scan(&v.ID, &v.GarageID, &v.GarageName, &v.GarageCity, &v.Make, &v.Model, &v.Year, &v.PricePerDayCents, &v.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find car", err)
	}
	return &v, nil
}

const bookedRangesSQL = `
SELECT pickup_date, return_date
FROM reservations
WHERE car_id = $1 AND status = 'confirmed'
ORDER BY pickup_date`

func (s *CarReadStore) BookedRanges(ctx context.Context, carID uuid.UUID) ([]*queries.BookedRange, error) {
	rows, err := s.db.Query(ctx, bookedRangesSQL, carID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked ranges", err)
	}
	defer rows.Close()

	var ranges []*queries.BookedRange
	for rows.Next() {
		var br queries.BookedRange
		if err := rows.Scan(&br.Pickup, &br.Return); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked range", err)
		}
		ranges = append(ranges, &br)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booked ranges", err)
	}
	return ranges, nil
}
