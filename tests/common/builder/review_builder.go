//go:build unit

package builder

import (
	"time"

	domreview "car-rental-api/internal/domain/review"
	reqdto "car-rental-api/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	UserID    uuid.UUID
	CarID     uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		UserID:    uuid.New(),
		CarID:     uuid.New(),
		Rating:    5,
		Comment:   "Excellent car!",
		CreatedAt: time.Now(),
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(b)
	return b
}

func (b *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(b.UserID, b.CarID, b.Rating, b.Comment, b.CreatedAt)
}

func (b *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		CarID:   b.CarID,
		Rating:  b.Rating,
		Comment: b.Comment,
	}
}

func (b *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	b.UserID = userID
	return b
}

func (b *ReviewBuilder) WithCarID(carID uuid.UUID) *ReviewBuilder {
	b.CarID = carID
	return b
}

func (b *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	b.Rating = rating
	return b
}

func (b *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	b.Comment = comment
	return b
}
