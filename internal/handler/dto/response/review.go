package response

import (
	"time"

	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserEmail string    `json:"userEmail"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateReviewResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromReviewListItem(rm *queries.ReviewListItem) *ReviewResponse {
	return &ReviewResponse{
		ID:        rm.ID,
		UserEmail: rm.UserEmail,
		Rating:    rm.Rating,
		Comment:   rm.Comment,
		CreatedAt: rm.CreatedAt,
	}
}
