//go:build unit

package builder

import (
	"time"

	domreservation "car-rental-api/internal/domain/reservation"
	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	UserID           uuid.UUID
	UserEmail        string
	CarID            uuid.UUID
	CarMake          string
	CarModel         string
	GarageName       string
	GarageCity       string
	Pickup           time.Time
	Return           time.Time
	PricePerDayCents int64
	Status           string
	CreatedAt        time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		UserID:           uuid.New(),
		UserEmail:        "renter@example.com",
		CarID:            uuid.New(),
		CarMake:          "Toyota",
		CarModel:         "Corolla",
		GarageName:       "Downtown Garage",
		GarageCity:       "Springfield",
		Pickup:           time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Return:           time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
		PricePerDayCents: 5000,
		Status:           "confirmed",
		CreatedAt:        now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDateRange() (domreservation.DateRange, error) {
	return domreservation.NewDateRange(b.Pickup, b.Return)
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	dates, err := b.BuildDateRange()
	if err != nil {
		return nil, err
	}
	return domreservation.NewReservation(b.UserID, b.CarID, dates, b.PricePerDayCents)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		CarID:      b.CarID,
		PickupDate: b.Pickup,
		ReturnDate: b.Return,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	dates, _ := b.BuildDateRange()
	days := dates.Days()
	return &queries.ReservationView{
		ID:              uuid.New(),
		CarID:           b.CarID,
		CarMake:         b.CarMake,
		CarModel:        b.CarModel,
		GarageName:      b.GarageName,
		GarageCity:      b.GarageCity,
		UserID:          b.UserID,
		UserEmail:       b.UserEmail,
		Pickup:          b.Pickup,
		Return:          b.Return,
		TotalPriceCents: b.PricePerDayCents * days,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	b.UserID = userID
	return b
}

func (b *ReservationBuilder) WithCarID(carID uuid.UUID) *ReservationBuilder {
	b.CarID = carID
	return b
}

func (b *ReservationBuilder) WithDates(pickup, ret time.Time) *ReservationBuilder {
	b.Pickup = pickup
	b.Return = ret
	return b
}

func (b *ReservationBuilder) WithPricePerDayCents(cents int64) *ReservationBuilder {
	b.PricePerDayCents = cents
	return b
}
