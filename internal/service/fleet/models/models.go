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

// CreateCarRequest запрос на создание автомобиля
type CreateCarRequest struct {
	Name           string `json:"name"`
	Brand          string `json:"brand"`
	Category       string `json:"category"`
	PlateNumber    string `json:"plateNumber,omitempty"`
	Passengers     int    `json:"passengers"`
	Doors          int    `json:"doors"`
	Bags           int    `json:"bags"`
	IsAuto         bool   `json:"isAuto"`
	HasAC          bool   `json:"hasAC"`
	IsTop          bool   `json:"isTop"`
	BaseDailyPrice string `json:"baseDailyPrice"`
	PhotoURL       string `json:"photoURL,omitempty"`
}

// Validate проверяет корректность запроса
func (r *CreateCarRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(r.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrValidation, domain.MaxNameLength)
	}
	if r.Brand == "" {
		return fmt.Errorf("%w: brand is required", ErrValidation)
	}
	if _, err := domain.ParseVehicleCategory(r.Category); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if r.Passengers <= 0 {
		return fmt.Errorf("%w: passengers must be positive", ErrValidation)
	}
	price, err := decimal.NewFromString(r.BaseDailyPrice)
	if err != nil {
		return fmt.Errorf("%w: invalid baseDailyPrice %q", ErrValidation, r.BaseDailyPrice)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: baseDailyPrice must not be negative", ErrValidation)
	}
	return nil
}

// ToDomain конвертирует запрос в доменную модель
// Вызывается после Validate, поэтому парсинг не может завершиться ошибкой
func (r *CreateCarRequest) ToDomain() *domain.Car {
	category, _ := domain.ParseVehicleCategory(r.Category)
	price, _ := decimal.NewFromString(r.BaseDailyPrice)

	return &domain.Car{
		Name:           r.Name,
		Brand:          r.Brand,
		Category:       category,
		PlateNumber:    r.PlateNumber,
		Passengers:     r.Passengers,
		Doors:          r.Doors,
		Bags:           r.Bags,
		IsAuto:         r.IsAuto,
		HasAC:          r.HasAC,
		IsTop:          r.IsTop,
		BaseDailyPrice: price,
		PhotoURL:       r.PhotoURL,
	}
}

// UpdateCarRequest запрос на частичное изменение автомобиля
type UpdateCarRequest struct {
	Name           *string `json:"name,omitempty"`
	Brand          *string `json:"brand,omitempty"`
	Category       *string `json:"category,omitempty"`
	PlateNumber    *string `json:"plateNumber,omitempty"`
	Passengers     *int    `json:"passengers,omitempty"`
	Doors          *int    `json:"doors,omitempty"`
	Bags           *int    `json:"bags,omitempty"`
	IsAuto         *bool   `json:"isAuto,omitempty"`
	HasAC          *bool   `json:"hasAC,omitempty"`
	IsTop          *bool   `json:"isTop,omitempty"`
	BaseDailyPrice *string `json:"baseDailyPrice,omitempty"`
	PhotoURL       *string `json:"photoURL,omitempty"`
}

// Validate проверяет корректность запроса
func (r *UpdateCarRequest) Validate() error {
	if r.Name != nil {
		if *r.Name == "" {
			return fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		if len(*r.Name) > domain.MaxNameLength {
			return fmt.Errorf("%w: name exceeds %d characters", ErrValidation, domain.MaxNameLength)
		}
	}
	if r.Brand != nil && *r.Brand == "" {
		return fmt.Errorf("%w: brand must not be empty", ErrValidation)
	}
	if r.Category != nil {
		if _, err := domain.ParseVehicleCategory(*r.Category); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	if r.Passengers != nil && *r.Passengers <= 0 {
		return fmt.Errorf("%w: passengers must be positive", ErrValidation)
	}
	if r.BaseDailyPrice != nil {
		price, err := decimal.NewFromString(*r.BaseDailyPrice)
		if err != nil {
			return fmt.Errorf("%w: invalid baseDailyPrice %q", ErrValidation, *r.BaseDailyPrice)
		}
		if price.IsNegative() {
			return fmt.Errorf("%w: baseDailyPrice must not be negative", ErrValidation)
		}
	}
	return nil
}

// ApplyTo накладывает изменения на существующий автомобиль
func (r *UpdateCarRequest) ApplyTo(car *domain.Car) {
	if r.Name != nil {
		car.Name = *r.Name
	}
	if r.Brand != nil {
		car.Brand = *r.Brand
	}
	if r.Category != nil {
		category, _ := domain.ParseVehicleCategory(*r.Category)
		car.Category = category
	}
	if r.PlateNumber != nil {
		car.PlateNumber = *r.PlateNumber
	}
	if r.Passengers != nil {
		car.Passengers = *r.Passengers
	}
	if r.Doors != nil {
		car.Doors = *r.Doors
	}
	if r.Bags != nil {
		car.Bags = *r.Bags
	}
	if r.IsAuto != nil {
		car.IsAuto = *r.IsAuto
	}
	if r.HasAC != nil {
		car.HasAC = *r.HasAC
	}
	if r.IsTop != nil {
		car.IsTop = *r.IsTop
	}
	if r.BaseDailyPrice != nil {
		price, _ := decimal.NewFromString(*r.BaseDailyPrice)
		car.BaseDailyPrice = price
	}
	if r.PhotoURL != nil {
		car.PhotoURL = *r.PhotoURL
	}
}

// SaveImageRequest запрос на добавление изображения в галерею
type SaveImageRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Validate проверяет корректность запроса
func (r *SaveImageRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if r.URL == "" {
		return fmt.Errorf("%w: url is required", ErrValidation)
	}
	return nil
}

// ToDomain конвертирует запрос в доменную модель
func (r *SaveImageRequest) ToDomain() *domain.GalleryImage {
	return &domain.GalleryImage{
		Name: r.Name,
		URL:  r.URL,
	}
}

// Response модели

// CarResponse ответ с данными автомобиля
type CarResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Brand          string `json:"brand"`
	Category       string `json:"category"`
	PlateNumber    string `json:"plateNumber,omitempty"`
	Passengers     int    `json:"passengers"`
	Doors          int    `json:"doors"`
	Bags           int    `json:"bags"`
	IsAuto         bool   `json:"isAuto"`
	HasAC          bool   `json:"hasAC"`
	IsTop          bool   `json:"isTop"`
	BaseDailyPrice string `json:"baseDailyPrice"`
	Currency       string `json:"currency"`
	PhotoURL       string `json:"photoURL,omitempty"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// CarListResponse ответ со списком автомобилей
type CarListResponse struct {
	Cars  []*CarResponse `json:"cars"`
	Total int            `json:"total"`
}

// FromDomainCar конвертирует доменную модель в response
func FromDomainCar(c *domain.Car) *CarResponse {
	return &CarResponse{
		ID:             c.ID,
		Name:           c.Name,
		Brand:          c.Brand,
		Category:       string(c.Category),
		PlateNumber:    c.PlateNumber,
		Passengers:     c.Passengers,
		Doors:          c.Doors,
		Bags:           c.Bags,
		IsAuto:         c.IsAuto,
		HasAC:          c.HasAC,
		IsTop:          c.IsTop,
		BaseDailyPrice: c.BaseDailyPrice.String(),
		Currency:       domain.CurrencyCode,
		PhotoURL:       c.PhotoURL,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      c.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainCarList конвертирует список автомобилей
func FromDomainCarList(cars []*domain.Car) *CarListResponse {
	result := make([]*CarResponse, 0, len(cars))
	for _, c := range cars {
		result = append(result, FromDomainCar(c))
	}
	return &CarListResponse{
		Cars:  result,
		Total: len(result),
	}
}

// ImageResponse ответ с данными изображения
type ImageResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	CreatedAt string `json:"createdAt"`
}

// ImageListResponse ответ со списком изображений
type ImageListResponse struct {
	Images []*ImageResponse `json:"images"`
	Total  int              `json:"total"`
}

// FromDomainImage конвертирует доменную модель в response
func FromDomainImage(img *domain.GalleryImage) *ImageResponse {
	return &ImageResponse{
		ID:        img.ID,
		Name:      img.Name,
		URL:       img.URL,
		CreatedAt: img.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainImageList конвертирует список изображений
func FromDomainImageList(images []*domain.GalleryImage) *ImageListResponse {
	result := make([]*ImageResponse, 0, len(images))
	for _, img := range images {
		result = append(result, FromDomainImage(img))
	}
	return &ImageListResponse{
		Images: result,
		Total:  len(result),
	}
}
