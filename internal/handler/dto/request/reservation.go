package request

import (
	"time"

	"car-rental-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	CarID      uuid.UUID `json:"car_id" binding:"required"`
	PickupDate time.Time `json:"pickup_date" binding:"required"`
	ReturnDate time.Time `json:"return_date" binding:"required"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		CarID:      r.CarID,
		PickupDate: r.PickupDate,
		ReturnDate: r.ReturnDate,
	}
}
