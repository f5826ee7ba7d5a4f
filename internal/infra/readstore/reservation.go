package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const findReservationByIDSQL = `
SELECT r.id, r.car_id, c.make, c.model, g.name, g.city,
       r.user_id, u.email,
       r.pickup_date, r.return_date, r.total_price_cents, r.status,
       r.created_at, r.updated_at
FROM reservations r
JOIN cars c ON c.id = r.car_id
JOIN garages g ON g.id = c.garage_id
JOIN users u ON u.id = r.user_id
WHERE r.id = $1`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := s.db.QueryRow(ctx, findReservationByIDSQL, id).Scan(
		&v.ID, &v.CarID, &v.CarMake, &v.CarModel, &v.GarageName, &v.GarageCity,
		&v.UserID, &v.UserEmail,
		&v.Pickup, &v.Return, &v.TotalPriceCents, &v.Status,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return &v, nil
}

const findReservationsByUserSQL = `
SELECT r.id, r.car_id, c.make, c.model, g.name,
       r.pickup_date, r.return_date, r.total_price_cents, r.status, r.created_at
FROM reservations r
JOIN cars c ON c.id = r.car_id
JOIN garages g ON g.id = c.garage_id
WHERE r.user_id = $1
ORDER BY r.pickup_date DESC`

func (s *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	rows, err := s.db.Query(ctx, findReservationsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		err := rows.Scan(
			&item.ID, &item.CarID, &item.CarMake, &item.CarModel, &item.GarageName,
			&item.Pickup, &item.Return, &item.TotalPriceCents, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return items, nil
}
