package request

import (
	"car-rental-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	CarID   uuid.UUID `json:"car_id" binding:"required"`
	Rating  int       `json:"rating" binding:"required,min=1,max=5"`
	Comment string    `json:"comment" binding:"required"`
}

func (r CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		CarID:   r.CarID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}
