package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Perk single line of a package description (insurance cover, roadside
// assistance and so on)
type Perk struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

// Package bundled protection/service tier with its own daily rate
// Prices хранятся уже с учётом онлайн-скидки: пересчёт выполняется
// явно при редактировании каталога (catalog.ApplyOnlineDiscount),
// а не при каждом расчёте стоимости бронирования
type Package struct {
	ID                    int64
	Name                  string
	OnlineDiscountPercent decimal.Decimal // 0-100
	Rating                decimal.Decimal
	ExcessUpto            decimal.Decimal
	OldPrices             CategoryPrices // цены до применения онлайн-скидки
	Prices                CategoryPrices // актуальные суточные цены
	Perks                 []Perk

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PackageSnapshot copy of a package embedded into a booking at creation time
type PackageSnapshot struct {
	PackageID int64          `json:"packageId"`
	Name      string         `json:"name"`
	Prices    CategoryPrices `json:"prices"`
	Perks     []Perk         `json:"perks"`
}

// Snapshot возвращает копию пакета для денормализации в бронировании
func (p *Package) Snapshot() PackageSnapshot {
	perks := make([]Perk, len(p.Perks))
	copy(perks, p.Perks)

	return PackageSnapshot{
		PackageID: p.ID,
		Name:      p.Name,
		Prices:    p.Prices.Copy(),
		Perks:     perks,
	}
}
