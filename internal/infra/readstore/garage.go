package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type GarageReadStore struct {
	db db.DBTX
}

func NewGarageReadStore(dbtx db.DBTX) *GarageReadStore {
	return &GarageReadStore{db: dbtx}
}

const listGaragesSQL = `
SELECT id, name, address, city, state, country, phone
FROM garages
ORDER BY name`

func (s *GarageReadStore) List(ctx context.Context) ([]*queries.GarageView, error) {
	rows, err := s.db.Query(ctx, listGaragesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list garages", err)
	}
	defer rows.Close()

	var views []*queries.GarageView
	for rows.Next() {
		var v queries.GarageView
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &v.City, &v.State, &v.Country, &v.Phone); err != nil {
			return nil, infra.WrapRepoErr("failed to scan garage row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read garage rows", err)
	}
	return views, nil
}

const findGarageByIDSQL = `
SELECT id, name, address, city, state, country, phone
FROM garages
WHERE id = $1`

func (s *GarageReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GarageView, error) {
	var v queries.GarageView
	err := s.db.QueryRow(ctx, findGarageByIDSQL, id).
		Scan(&v.ID, &v.Name, &v.Address, &v.City, &v.State, &v.Country, &v.Phone)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find garage", err)
	}
	return &v, nil
}

const listGarageCarsSQL = `
SELECT id, make, model, year, price_per_day_cents, status
FROM cars
WHERE garage_id = $1
ORDER BY make, model`

func (s *GarageReadStore) ListCars(ctx context.Context, garageID uuid.UUID) ([]*queries.CarListItem, error) {
	rows, err := s.db.Query(ctx, listGarageCarsSQL, garageID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list garage cars", err)
	}
	defer rows.Close()

	var items []*queries.CarListItem
	for rows.Next() {
		var item queries.CarListItem
		if err := rows.Scan(&item.ID, &item.Make, &item.Model, &item.Year, &item.PricePerDayCents, &item.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan car row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read car rows", err)
	}
	return items, nil
}
