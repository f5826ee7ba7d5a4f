package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type GarageView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	City    string    `json:"city"`
	State   string    `json:"state"`
	Country string    `json:"country"`
	Phone   string    `json:"phone"`
}

type CarView struct {
	ID               uuid.UUID `json:"id"`
	GarageID         uuid.UUID `json:"garage_id"`
	GarageName       string    `json:"garage_name"`
	GarageCity       string    `json:"garage_city"`
	Make             string    `json:"make"`
	Model            string    `json:"model"`
	Year             int32     `json:"year"`
	PricePerDayCents int64     `json:"price_per_day_cents"`
	Status           string    `json:"status"`
}

type CarListItem struct {
	ID               uuid.UUID `json:"id"`
	Make             string    `json:"make"`
	Model            string    `json:"model"`
	Year             int32     `json:"year"`
	PricePerDayCents int64     `json:"price_per_day_cents"`
	Status           string    `json:"status"`
}

// BookedRange feeds the booking calendar: the confirmed intervals of a car.
type BookedRange struct {
	Pickup time.Time `json:"pickup_date"`
	Return time.Time `json:"return_date"`
}

type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	CarID           uuid.UUID `json:"car_id"`
	CarMake         string    `json:"car_make"`
	CarModel        string    `json:"car_model"`
	GarageName      string    `json:"garage_name"`
	GarageCity      string    `json:"garage_city"`
	UserID          uuid.UUID `json:"user_id"`
	UserEmail       string    `json:"user_email"`
	Pickup          time.Time `json:"pickup_date"`
	Return          time.Time `json:"return_date"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID              uuid.UUID `json:"id"`
	CarID           uuid.UUID `json:"car_id"`
	CarMake         string    `json:"car_make"`
	CarModel        string    `json:"car_model"`
	GarageName      string    `json:"garage_name"`
	Pickup          time.Time `json:"pickup_date"`
	Return          time.Time `json:"return_date"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReviewListItem struct {
	ID        uuid.UUID `json:"id"`
	UserEmail string    `json:"user_email"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}
