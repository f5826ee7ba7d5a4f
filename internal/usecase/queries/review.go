package queries

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	ListByCar(ctx context.Context, carID uuid.UUID) ([]*ReviewListItem, error)
}

type ReviewQueries interface {
	ListByCar(ctx context.Context, carID uuid.UUID) ([]*ReviewListItem, error)
}

type reviewQueriesImpl struct {
	store    ReviewReadStore
	carStore CarReadStore
}

func NewReviewQueries(store ReviewReadStore, carStore CarReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store, carStore: carStore}
}

func (q *reviewQueriesImpl) ListByCar(ctx context.Context, carID uuid.UUID) ([]*ReviewListItem, error) {
	if _, err := q.carStore.FindByID(ctx, carID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCarNotFound)
		}
		return nil, err
	}
	return q.store.ListByCar(ctx, carID)
}
