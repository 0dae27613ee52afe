package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Car represents a car in the fleet catalog
type Car struct {
	ID             int64
	Name           string
	Brand          string
	Category       VehicleCategory
	PlateNumber    string
	Passengers     int
	Doors          int
	Bags           int
	IsAuto         bool
	HasAC          bool
	IsTop          bool
	BaseDailyPrice decimal.Decimal
	PhotoURL       string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CarSnapshot copy of the car data embedded into a booking at creation time
// Later edits to the fleet catalog must not alter historical bookings
type CarSnapshot struct {
	CarID       int64           `json:"carId"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Category    VehicleCategory `json:"category"`
	PlateNumber string          `json:"plateNumber"`
	Passengers  int             `json:"passengers"`
	IsAuto      bool            `json:"isAuto"`
	HasAC       bool            `json:"hasAC"`
	PhotoURL    string          `json:"photoURL"`
}

// Snapshot возвращает копию данных автомобиля для денормализации в бронировании
func (c *Car) Snapshot() CarSnapshot {
	return CarSnapshot{
		CarID:       c.ID,
		Name:        c.Name,
		Brand:       c.Brand,
		Category:    c.Category,
		PlateNumber: c.PlateNumber,
		Passengers:  c.Passengers,
		IsAuto:      c.IsAuto,
		HasAC:       c.HasAC,
		PhotoURL:    c.PhotoURL,
	}
}
