//go:build unit

package builder

import (
	"time"

	domcar "car-rental-api/internal/domain/car"

	"github.com/google/uuid"
)

type CarBuilder struct {
	ID                  uuid.UUID
	GarageID            uuid.UUID
	Make                string
	Model               string
	Year                int32
	PricePerDayCents    int64
	Status              domcar.Status
	RentedReservationID *uuid.UUID
	CreatedAt           time.Time
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:               uuid.New(),
		GarageID:         uuid.New(),
		Make:             "Toyota",
		Model:            "Corolla",
		Year:             2022,
		PricePerDayCents: 5000,
		Status:           domcar.StatusAvailable,
		CreatedAt:        time.Now(),
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(b)
	return b
}

func (b *CarBuilder) BuildDomain() *domcar.Car {
	return domcar.ReconstructCar(
		b.ID, b.GarageID,
		b.Make, b.Model,
		b.Year, b.PricePerDayCents,
		b.Status, b.RentedReservationID,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *CarBuilder) WithID(id uuid.UUID) *CarBuilder {
	b.ID = id
	return b
}

func (b *CarBuilder) WithStatus(status domcar.Status) *CarBuilder {
	b.Status = status
	return b
}

func (b *CarBuilder) WithPricePerDayCents(cents int64) *CarBuilder {
	b.PricePerDayCents = cents
	return b
}

func (b *CarBuilder) AsRentedBy(reservationID uuid.UUID) *CarBuilder {
	b.Status = domcar.StatusRented
	b.RentedReservationID = &reservationID
	return b
}
