package review

import (
	"time"

	"github.com/google/uuid"
)

// Review weakly references both its author and the reviewed car. At most one
// review exists per (user, car); the storage layer enforces it with a unique
// constraint and the review gate checks it up front.
type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	carID     uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
}

func NewReview(userID, carID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:        uuid.New(),
		userID:    userID,
		carID:     carID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
	}, nil
}

func ReconstructReview(id, userID, carID uuid.UUID, rating Rating, comment Comment, createdAt time.Time) *Review {
	return &Review{
		id:        id,
		userID:    userID,
		carID:     carID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) CarID() uuid.UUID     { return r.carID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
