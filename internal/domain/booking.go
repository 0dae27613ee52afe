package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a rental booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// UserSnapshot copy of the customer identity embedded into a booking
type UserSnapshot struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
}

// Booking represents a rental booking
//
// Snapshot invariant: Car, User, SelectedAddOns and SelectedPackage are
// copies taken at creation time, not references into the catalog. Later
// catalog edits must never change what a historical booking was charged.
// TotalPrice is fixed at creation time and is never recomputed; the only
// mutable fields after creation are Status, IsPaid and the assigned car.
type Booking struct {
	ID int64

	Car  CarSnapshot
	User UserSnapshot

	PickupAt        time.Time
	DropoffAt       time.Time
	PickupLocation  string
	DropoffLocation string
	NumberOfDays    int

	SelectedAddOns  []AddOnSnapshot
	SelectedPackage PackageSnapshot

	TotalPrice decimal.Decimal
	IsPaid     bool
	Status     BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking has not been cancelled
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed || b.Status == StatusActive
}

// CanChangeCar returns true if the assigned car can still be replaced
// После завершения или отмены машина в бронировании не меняется
func (b *Booking) CanChangeCar() bool {
	return b.Status == StatusConfirmed || b.Status == StatusActive
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	Status    *BookingStatus // Фильтр по статусу (опционально)
	IsPaid    *bool          // Фильтр по оплате (опционально)
	StartDate *time.Time     // Начало периода по дате pickup (опционально)
	EndDate   *time.Time     // Конец периода по дате pickup (опционально)
}
