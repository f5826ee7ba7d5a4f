package queries

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCarNotFound = errs.New("car not found")

type CarReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CarView, error)
	BookedRanges(ctx context.Context, carID uuid.UUID) ([]*BookedRange, error)
}

type CarQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CarView, error)
	// BookedRanges returns the confirmed intervals of a car ordered by pickup,
	// for calendar rendering.
	BookedRanges(ctx context.Context, carID uuid.UUID) ([]*BookedRange, error)
}

type carQueriesImpl struct {
	store CarReadStore
}

func NewCarQueries(store CarReadStore) CarQueries {
	return &carQueriesImpl{store: store}
}

func (q *carQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CarView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCarNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *carQueriesImpl) BookedRanges(ctx context.Context, carID uuid.UUID) ([]*BookedRange, error) {
	if _, err := q.store.FindByID(ctx, carID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCarNotFound)
		}
		return nil, err
	}
	return q.store.BookedRanges(ctx, carID)
}
