package repository

import (
	"context"

	"car-rental-api/internal/domain/review"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

const createReviewSQL = `
INSERT INTO reviews (id, user_id, car_id, rating, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createReviewSQL,
		rev.ID(),
		rev.UserID(),
		rev.CarID(),
		rev.Rating().Value(),
		rev.Comment().String(),
		rev.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

const reviewExistsForSQL = `
SELECT EXISTS (
	SELECT 1
	FROM reviews
	WHERE user_id = $1 AND car_id = $2
)`

func (r *ReviewRepository) ExistsFor(ctx context.Context, userID, carID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, reviewExistsForSQL, userID, carID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing review", err)
	}
	return exists, nil
}
