package response

import (
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type GarageResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	City    string    `json:"city"`
	State   string    `json:"state"`
	Country string    `json:"country"`
	Phone   string    `json:"phone"`
}

func FromGarageView(rm *queries.GarageView) *GarageResponse {
	return &GarageResponse{
		ID:      rm.ID,
		Name:    rm.Name,
		Address: rm.Address,
		City:    rm.City,
		State:   rm.State,
		Country: rm.Country,
		Phone:   rm.Phone,
	}
}
