package response

import (
	"time"

	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarResponse struct {
	ID               uuid.UUID `json:"id"`
	GarageID         uuid.UUID `json:"garageId"`
	GarageName       string    `json:"garageName"`
	GarageCity       string    `json:"garageCity"`
	Make             string    `json:"make"`
	Model            string    `json:"model"`
	Year             int32     `json:"year"`
	PricePerDayCents int64     `json:"pricePerDayCents"`
	Status           string    `json:"status"`
}

type CarListResponse struct {
	ID               uuid.UUID `json:"id"`
	Make             string    `json:"make"`
	Model            string    `json:"model"`
	Year             int32     `json:"year"`
	PricePerDayCents int64     `json:"pricePerDayCents"`
	Status           string    `json:"status"`
}

type BookedRangeResponse struct {
	PickupDate time.Time `json:"pickupDate"`
	ReturnDate time.Time `json:"returnDate"`
}

func FromCarView(rm *queries.CarView) *CarResponse {
	return &CarResponse{
		ID:               rm.ID,
		GarageID:         rm.GarageID,
		GarageName:       rm.GarageName,
		GarageCity:       rm.GarageCity,
		Make:             rm.Make,
		Model:            rm.Model,
		Year:             rm.Year,
		PricePerDayCents: rm.PricePerDayCents,
		Status:           rm.Status,
	}
}

func FromCarListItem(rm *queries.CarListItem) *CarListResponse {
	return &CarListResponse{
		ID:               rm.ID,
		Make:             rm.Make,
		Model:            rm.Model,
		Year:             rm.Year,
		PricePerDayCents: rm.PricePerDayCents,
		Status:           rm.Status,
	}
}

func FromBookedRange(rm *queries.BookedRange) *BookedRangeResponse {
	return &BookedRangeResponse{
		PickupDate: rm.Pickup,
		ReturnDate: rm.Return,
	}
}
