package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

var (
	// ErrValidation ошибка валидации входных данных
	ErrValidation = errors.New("validation error")
)

// Request модели

// SaveAddOnRequest запрос на создание/изменение дополнения
// Цены задаются для каждой категории автомобилей
type SaveAddOnRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Type        string            `json:"type,omitempty"`
	PerDay      bool              `json:"perDay"`
	Prices      map[string]string `json:"prices"`
}

// Validate проверяет корректность запроса
func (r *SaveAddOnRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(r.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrValidation, domain.MaxNameLength)
	}
	return validatePrices(r.Prices)
}

// ToDomain конвертирует запрос в доменную модель
func (r *SaveAddOnRequest) ToDomain() (*domain.AddOn, error) {
	prices, err := parsePrices(r.Prices)
	if err != nil {
		return nil, err
	}
	return &domain.AddOn{
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		PerDay:      r.PerDay,
		Prices:      prices,
	}, nil
}

// SavePackageRequest запрос на создание/изменение пакета
// Prices задаются до применения онлайн-скидки; сервис сохраняет их
// в OldPrices и записывает в Prices значения со скидкой
type SavePackageRequest struct {
	Name                  string            `json:"name"`
	OnlineDiscountPercent string            `json:"onlineDiscountPercent"`
	Rating                string            `json:"rating,omitempty"`
	ExcessUpto            string            `json:"excessUpto,omitempty"`
	Prices                map[string]string `json:"prices"`
	Perks                 []domain.Perk     `json:"perks,omitempty"`
}

// Validate проверяет корректность запроса
func (r *SavePackageRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(r.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrValidation, domain.MaxNameLength)
	}

	percent, err := decimal.NewFromString(r.OnlineDiscountPercent)
	if err != nil {
		return fmt.Errorf("%w: invalid onlineDiscountPercent %q", ErrValidation, r.OnlineDiscountPercent)
	}
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: onlineDiscountPercent must be between 0 and 100", ErrValidation)
	}

	if r.Rating != "" {
		if _, err := decimal.NewFromString(r.Rating); err != nil {
			return fmt.Errorf("%w: invalid rating %q", ErrValidation, r.Rating)
		}
	}
	if r.ExcessUpto != "" {
		if _, err := decimal.NewFromString(r.ExcessUpto); err != nil {
			return fmt.Errorf("%w: invalid excessUpto %q", ErrValidation, r.ExcessUpto)
		}
	}

	return validatePrices(r.Prices)
}

// ToDomain конвертирует запрос в доменную модель.
// OldPrices заполняются исходными ценами, Prices рассчитывает сервис
func (r *SavePackageRequest) ToDomain() (*domain.Package, error) {
	prices, err := parsePrices(r.Prices)
	if err != nil {
		return nil, err
	}

	percent, _ := decimal.NewFromString(r.OnlineDiscountPercent)

	rating := decimal.Zero
	if r.Rating != "" {
		rating, _ = decimal.NewFromString(r.Rating)
	}

	excessUpto := decimal.Zero
	if r.ExcessUpto != "" {
		excessUpto, _ = decimal.NewFromString(r.ExcessUpto)
	}

	perks := make([]domain.Perk, len(r.Perks))
	copy(perks, r.Perks)

	return &domain.Package{
		Name:                  r.Name,
		OnlineDiscountPercent: percent,
		Rating:                rating,
		ExcessUpto:            excessUpto,
		OldPrices:             prices,
		Prices:                prices.Copy(),
		Perks:                 perks,
	}, nil
}

func validatePrices(prices map[string]string) error {
	if len(prices) == 0 {
		return fmt.Errorf("%w: prices are required", ErrValidation)
	}
	for _, category := range domain.AllCategories {
		raw, ok := prices[string(category)]
		if !ok {
			return fmt.Errorf("%w: missing price for category %s", ErrValidation, category)
		}
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("%w: invalid price %q for category %s", ErrValidation, raw, category)
		}
		if price.IsNegative() {
			return fmt.Errorf("%w: price for category %s must not be negative", ErrValidation, category)
		}
	}
	return nil
}

func parsePrices(raw map[string]string) (domain.CategoryPrices, error) {
	prices := make(domain.CategoryPrices, len(raw))
	for key, value := range raw {
		category, err := domain.ParseVehicleCategory(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		price, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid price %q for category %s", ErrValidation, value, key)
		}
		prices[category] = price
	}
	return prices, nil
}

// Response модели

// AddOnResponse ответ с данными дополнения
type AddOnResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Type        string            `json:"type,omitempty"`
	PerDay      bool              `json:"perDay"`
	Prices      map[string]string `json:"prices"`
	Currency    string            `json:"currency"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}

// AddOnListResponse ответ со списком дополнений
type AddOnListResponse struct {
	AddOns []*AddOnResponse `json:"addons"`
	Total  int              `json:"total"`
}

// FromDomainAddOn конвертирует доменную модель в response
func FromDomainAddOn(a *domain.AddOn) *AddOnResponse {
	return &AddOnResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Type:        a.Type,
		PerDay:      a.PerDay,
		Prices:      pricesToStrings(a.Prices),
		Currency:    domain.CurrencyCode,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAddOnList конвертирует список дополнений
func FromDomainAddOnList(addons []*domain.AddOn) *AddOnListResponse {
	result := make([]*AddOnResponse, 0, len(addons))
	for _, a := range addons {
		result = append(result, FromDomainAddOn(a))
	}
	return &AddOnListResponse{
		AddOns: result,
		Total:  len(result),
	}
}

// PackageResponse ответ с данными пакета
type PackageResponse struct {
	ID                    int64             `json:"id"`
	Name                  string            `json:"name"`
	OnlineDiscountPercent string            `json:"onlineDiscountPercent"`
	Rating                string            `json:"rating"`
	ExcessUpto            string            `json:"excessUpto"`
	OldPrices             map[string]string `json:"oldPrices"`
	Prices                map[string]string `json:"prices"`
	Currency              string            `json:"currency"`
	Perks                 []domain.Perk     `json:"perks,omitempty"`
	CreatedAt             string            `json:"createdAt"`
	UpdatedAt             string            `json:"updatedAt"`
}

// PackageListResponse ответ со списком пакетов
type PackageListResponse struct {
	Packages []*PackageResponse `json:"packages"`
	Total    int                `json:"total"`
}

// FromDomainPackage конвертирует доменную модель в response
func FromDomainPackage(p *domain.Package) *PackageResponse {
	return &PackageResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		OnlineDiscountPercent: p.OnlineDiscountPercent.String(),
		Rating:                p.Rating.String(),
		ExcessUpto:            p.ExcessUpto.String(),
		OldPrices:             pricesToStrings(p.OldPrices),
		Prices:                pricesToStrings(p.Prices),
		Currency:              domain.CurrencyCode,
		Perks:                 p.Perks,
		CreatedAt:             p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             p.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainPackageList конвертирует список пакетов
func FromDomainPackageList(packages []*domain.Package) *PackageListResponse {
	result := make([]*PackageResponse, 0, len(packages))
	for _, p := range packages {
		result = append(result, FromDomainPackage(p))
	}
	return &PackageListResponse{
		Packages: result,
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
