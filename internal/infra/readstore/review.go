package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const listReviewsByCarSQL = `
SELECT rv.id, u.email, rv.rating, rv.comment, rv.created_at
FROM reviews rv
JOIN users u ON u.id = rv.user_id
WHERE rv.car_id = $1
ORDER BY rv.created_at DESC`

func (s *ReviewReadStore) ListByCar(ctx context.Context, carID uuid.UUID) ([]*queries.ReviewListItem, error) {
	rows, err := s.db.Query(ctx, listReviewsByCarSQL, carID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var items []*queries.ReviewListItem
	for rows.Next() {
		var item queries.ReviewListItem
		if err := rows.Scan(&item.ID, &item.UserEmail, &item.Rating, &item.Comment, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read review rows", err)
	}
	return items, nil
}
