package queries

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrGarageNotFound = errs.New("garage not found")

type GarageReadStore interface {
	List(ctx context.Context) ([]*GarageView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*GarageView, error)
	ListCars(ctx context.Context, garageID uuid.UUID) ([]*CarListItem, error)
}

type GarageQueries interface {
	List(ctx context.Context) ([]*GarageView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GarageView, error)
	ListCars(ctx context.Context, garageID uuid.UUID) ([]*CarListItem, error)
}

type garageQueriesImpl struct {
	store GarageReadStore
}

func NewGarageQueries(store GarageReadStore) GarageQueries {
	return &garageQueriesImpl{store: store}
}

func (q *garageQueriesImpl) List(ctx context.Context) ([]*GarageView, error) {
	return q.store.List(ctx)
}

func (q *garageQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GarageView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrGarageNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *garageQueriesImpl) ListCars(ctx context.Context, garageID uuid.UUID) ([]*CarListItem, error) {
	if _, err := q.store.FindByID(ctx, garageID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrGarageNotFound)
		}
		return nil, err
	}
	return q.store.ListCars(ctx, garageID)
}
