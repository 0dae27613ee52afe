package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/pricing"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status    *string    `json:"status,omitempty"`
	IsPaid    *bool      `json:"isPaid,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		IsPaid:    r.IsPaid,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateBookingRequest запрос на изменение бронирования
// Меняются только статус, флаг оплаты и назначенный автомобиль -
// цена бронирования зафиксирована при создании
type UpdateBookingRequest struct {
	Status *string `json:"status,omitempty"`
	IsPaid *bool   `json:"isPaid,omitempty"`
	CarID  *int64  `json:"carId,omitempty"`
}

// IsEmpty возвращает true, если запрос не содержит ни одного изменения
func (r *UpdateBookingRequest) IsEmpty() bool {
	return r.Status == nil && r.IsPaid == nil && r.CarID == nil
}

// ToDomainBookingStatus валидирует и конвертирует статус из строки
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.IsValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Response модели

// CarSnapshotResponse snapshot автомобиля в ответе
type CarSnapshotResponse struct {
	CarID       int64  `json:"carId"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	PlateNumber string `json:"plateNumber,omitempty"`
	Passengers  int    `json:"passengers"`
	IsAuto      bool   `json:"isAuto"`
	HasAC       bool   `json:"hasAC"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

// UserSnapshotResponse snapshot клиента в ответе
type UserSnapshotResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
}

// AddOnSnapshotResponse snapshot дополнения в ответе
type AddOnSnapshotResponse struct {
	AddOnID int64             `json:"addonId"`
	Name    string            `json:"name"`
	PerDay  bool              `json:"perDay"`
	Prices  map[string]string `json:"prices"`
}

// PackageSnapshotResponse snapshot пакета в ответе
type PackageSnapshotResponse struct {
	PackageID int64             `json:"packageId"`
	Name      string            `json:"name"`
	Prices    map[string]string `json:"prices"`
	Perks     []domain.Perk     `json:"perks,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID int64 `json:"id"`

	User UserSnapshotResponse `json:"user"`
	Car  CarSnapshotResponse  `json:"car"`

	PickupAt        string `json:"pickupAt"`
	DropoffAt       string `json:"dropoffAt"`
	PickupLocation  string `json:"pickupLocation"`
	DropoffLocation string `json:"dropoffLocation"`
	NumberOfDays    int    `json:"numberOfDays"`

	SelectedAddOns  []AddOnSnapshotResponse `json:"selectedAddOns"`
	SelectedPackage PackageSnapshotResponse `json:"selectedPackage"`

	TotalPrice string `json:"totalPrice"`
	Currency   string `json:"currency"`
	IsPaid     bool   `json:"isPaid"`
	Status     string `json:"status"`

	// Разбивка стоимости; заполняется только в детальном ответе
	Summary []pricing.LineItem `json:"summary,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует доменную модель в response
// Денежные значения сериализуются строками с полной точностью
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	addons := make([]AddOnSnapshotResponse, 0, len(b.SelectedAddOns))
	for _, addon := range b.SelectedAddOns {
		addons = append(addons, AddOnSnapshotResponse{
			AddOnID: addon.AddOnID,
			Name:    addon.Name,
			PerDay:  addon.PerDay,
			Prices:  pricesToStrings(addon.Prices),
		})
	}

	return &BookingResponse{
		ID: b.ID,
		User: UserSnapshotResponse{
			Name:        b.User.Name,
			Email:       b.User.Email,
			Phone:       b.User.Phone,
			Nationality: b.User.Nationality,
		},
		Car: CarSnapshotResponse{
			CarID:       b.Car.CarID,
			Name:        b.Car.Name,
			Brand:       b.Car.Brand,
			Category:    string(b.Car.Category),
			PlateNumber: b.Car.PlateNumber,
			Passengers:  b.Car.Passengers,
			IsAuto:      b.Car.IsAuto,
			HasAC:       b.Car.HasAC,
			PhotoURL:    b.Car.PhotoURL,
		},
		PickupAt:        b.PickupAt.Format(time.RFC3339),
		DropoffAt:       b.DropoffAt.Format(time.RFC3339),
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
		NumberOfDays:    b.NumberOfDays,
		SelectedAddOns:  addons,
		SelectedPackage: PackageSnapshotResponse{
			PackageID: b.SelectedPackage.PackageID,
			Name:      b.SelectedPackage.Name,
			Prices:    pricesToStrings(b.SelectedPackage.Prices),
			Perks:     b.SelectedPackage.Perks,
		},
		TotalPrice: b.TotalPrice.String(),
		Currency:   domain.CurrencyCode,
		IsPaid:     b.IsPaid,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

func pricesToStrings(prices domain.CategoryPrices) map[string]string {
	result := make(map[string]string, len(prices))
	for category, price := range prices {
		result[string(category)] = price.String()
	}
	return result
}
