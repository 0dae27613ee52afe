package quote_booking

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	quoteBooking "github.com/m04kA/SMC-RentalService/internal/usecase/quote_booking"
)

// QuoteBookingRequest HTTP request model
type QuoteBookingRequest struct {
	CarID     int64   `json:"carId"`
	PackageID int64   `json:"packageId"`
	AddOnIDs  []int64 `json:"addOnIds,omitempty"`
	PickupAt  string  `json:"pickupAt"`  // "2025-10-15 10:00"
	DropoffAt string  `json:"dropoffAt"` // "2025-10-18 10:00"
}

// AddOnQuoteResponse расчёт стоимости одного дополнения
type AddOnQuoteResponse struct {
	AddOnID int64  `json:"addonId"`
	Name    string `json:"name"`
	PerDay  bool   `json:"perDay"`
	Cost    string `json:"cost"`
}

// QuoteBookingResponse HTTP response model
// Денежные значения сериализуются строками с полной точностью
type QuoteBookingResponse struct {
	NumberOfDays     int                  `json:"numberOfDays"`
	Category         string               `json:"category"`
	PackageID        int64                `json:"packageId"`
	PackageName      string               `json:"packageName"`
	PackageDailyRate string               `json:"packageDailyRate"`
	PackageCost      string               `json:"packageCost"`
	AddOns           []AddOnQuoteResponse `json:"addOns"`
	TotalPrice       string               `json:"totalPrice"`
	Currency         string               `json:"currency"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteBookingRequest) ToUseCaseRequest() (*quoteBooking.Request, error) {
	pickupAt, err := time.Parse(domain.DateTimeFormat, r.PickupAt)
	if err != nil {
		return nil, err
	}

	dropoffAt, err := time.Parse(domain.DateTimeFormat, r.DropoffAt)
	if err != nil {
		return nil, err
	}

	return &quoteBooking.Request{
		CarID:     r.CarID,
		PackageID: r.PackageID,
		AddOnIDs:  r.AddOnIDs,
		PickupAt:  pickupAt,
		DropoffAt: dropoffAt,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteBookingResponse {
	addons := make([]AddOnQuoteResponse, 0, len(resp.AddOns))
	for _, a := range resp.AddOns {
		addons = append(addons, AddOnQuoteResponse{
			AddOnID: a.AddOnID,
			Name:    a.Name,
			PerDay:  a.PerDay,
			Cost:    a.Cost.String(),
		})
	}

	return &QuoteBookingResponse{
		NumberOfDays:     resp.NumberOfDays,
		Category:         resp.Category,
		PackageID:        resp.PackageID,
		PackageName:      resp.PackageName,
		PackageDailyRate: resp.PackageDailyRate.String(),
		PackageCost:      resp.PackageCost.String(),
		AddOns:           addons,
		TotalPrice:       resp.TotalPrice.String(),
		Currency:         resp.Currency,
	}
}
