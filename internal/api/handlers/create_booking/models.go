package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	createBooking "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
)

// CustomerPayload данные клиента в HTTP запросе
type CustomerPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Customer        CustomerPayload `json:"customer"`
	CarID           int64           `json:"carId"`
	PackageID       int64           `json:"packageId"`
	AddOnIDs        []int64         `json:"addOnIds,omitempty"`
	PickupAt        string          `json:"pickupAt"`  // "2025-10-15 10:00"
	DropoffAt       string          `json:"dropoffAt"` // "2025-10-18 10:00"
	PickupLocation  string          `json:"pickupLocation"`
	DropoffLocation string          `json:"dropoffLocation"`
	IsPaid          bool            `json:"isPaid"`
}

// BookingCreatedResponse HTTP response model
type BookingCreatedResponse struct {
	ID           int64  `json:"id"`
	CarID        int64  `json:"carId"`
	CarName      string `json:"carName"`
	Category     string `json:"category"`
	PackageID    int64  `json:"packageId"`
	PackageName  string `json:"packageName"`
	NumberOfDays int    `json:"numberOfDays"`
	TotalPrice   string `json:"totalPrice"`
	Currency     string `json:"currency"`
	IsPaid       bool   `json:"isPaid"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	pickupAt, err := time.Parse(domain.DateTimeFormat, r.PickupAt)
	if err != nil {
		return nil, err
	}

	dropoffAt, err := time.Parse(domain.DateTimeFormat, r.DropoffAt)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Customer: createBooking.Customer{
			Name:        r.Customer.Name,
			Email:       r.Customer.Email,
			Phone:       r.Customer.Phone,
			Nationality: r.Customer.Nationality,
		},
		CarID:           r.CarID,
		PackageID:       r.PackageID,
		AddOnIDs:        r.AddOnIDs,
		PickupAt:        pickupAt,
		DropoffAt:       dropoffAt,
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
		IsPaid:          r.IsPaid,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		ID:           resp.ID,
		CarID:        resp.CarID,
		CarName:      resp.CarName,
		Category:     resp.Category,
		PackageID:    resp.PackageID,
		PackageName:  resp.PackageName,
		NumberOfDays: resp.NumberOfDays,
		TotalPrice:   resp.TotalPrice.String(),
		Currency:     resp.Currency,
		IsPaid:       resp.IsPaid,
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
