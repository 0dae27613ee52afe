package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// VehicleCategory represents the pricing tier of a car
// The four categories are exhaustive: every per-category price table
// keys on this set and nothing else
type VehicleCategory string

const (
	CategoryEconomy      VehicleCategory = "economy"
	CategoryMidSizeSedan VehicleCategory = "mid_size_sedan"
	CategoryCrossoverSUV VehicleCategory = "crossover_suv"
	CategorySevenSeater  VehicleCategory = "seven_seater"
)

// AllCategories список всех категорий в фиксированном порядке
var AllCategories = []VehicleCategory{
	CategoryEconomy,
	CategoryMidSizeSedan,
	CategoryCrossoverSUV,
	CategorySevenSeater,
}

// IsValid returns true if the category is one of the four known tiers
func (c VehicleCategory) IsValid() bool {
	switch c {
	case CategoryEconomy, CategoryMidSizeSedan, CategoryCrossoverSUV, CategorySevenSeater:
		return true
	}
	return false
}

// ParseVehicleCategory парсит категорию из строки
func ParseVehicleCategory(s string) (VehicleCategory, error) {
	c := VehicleCategory(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown vehicle category: %q", s)
	}
	return c, nil
}

// CategoryPrices per-category price table
// A missing entry means the item is not priced for that category;
// callers must treat that as an error, never as zero
type CategoryPrices map[VehicleCategory]decimal.Decimal

// For returns the price for the category and whether it is present
func (p CategoryPrices) For(category VehicleCategory) (decimal.Decimal, bool) {
	price, ok := p[category]
	return price, ok
}

// Copy возвращает независимую копию таблицы цен
// Используется при создании snapshot-ов в бронированиях
func (p CategoryPrices) Copy() CategoryPrices {
	if p == nil {
		return nil
	}
	cp := make(CategoryPrices, len(p))
	for k, v := range p {
		cp[k] = v
	}
	return cp
}
