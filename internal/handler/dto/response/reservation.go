package response

import (
	"time"

	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	CarID           uuid.UUID `json:"carId"`
	CarMake         string    `json:"carMake"`
	CarModel        string    `json:"carModel"`
	GarageName      string    `json:"garageName"`
	GarageCity      string    `json:"garageCity"`
	UserID          uuid.UUID `json:"userId"`
	UserEmail       string    `json:"userEmail"`
	PickupDate      time.Time `json:"pickupDate"`
	ReturnDate      time.Time `json:"returnDate"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID              uuid.UUID `json:"id"`
	CarID           uuid.UUID `json:"carId"`
	CarMake         string    `json:"carMake"`
	CarModel        string    `json:"carModel"`
	GarageName      string    `json:"garageName"`
	PickupDate      time.Time `json:"pickupDate"`
	ReturnDate      time.Time `json:"returnDate"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              rm.ID,
		CarID:           rm.CarID,
		CarMake:         rm.CarMake,
		CarModel:        rm.CarModel,
		GarageName:      rm.GarageName,
		GarageCity:      rm.GarageCity,
		UserID:          rm.UserID,
		UserEmail:       rm.UserEmail,
		PickupDate:      rm.Pickup,
		ReturnDate:      rm.Return,
		TotalPriceCents: rm.TotalPriceCents,
		Status:          rm.Status,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:              rm.ID,
		CarID:           rm.CarID,
		CarMake:         rm.CarMake,
		CarModel:        rm.CarModel,
		GarageName:      rm.GarageName,
		PickupDate:      rm.Pickup,
		ReturnDate:      rm.Return,
		TotalPriceCents: rm.TotalPriceCents,
		Status:          rm.Status,
		CreatedAt:       rm.CreatedAt,
	}
}
