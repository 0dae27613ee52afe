package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// UpdateDiscountRequest запрос на изменение онлайн-скидки
// Значение задаётся долей от 0 до 1 включительно
type UpdateDiscountRequest struct {
	DiscountFraction string `json:"discountFraction"`
}

// DiscountResponse ответ с текущей онлайн-скидкой
type DiscountResponse struct {
	DiscountFraction string `json:"discountFraction"`
	UpdatedAt        string `json:"updatedAt"`
}

// FromDomainSetting конвертирует доменную модель в response
func FromDomainSetting(s *domain.DiscountSetting) *DiscountResponse {
	return &DiscountResponse{
		DiscountFraction: s.DiscountFraction.String(),
		UpdatedAt:        s.UpdatedAt.Format(time.RFC3339),
	}
}
