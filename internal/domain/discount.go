package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountSetting process-wide online discount setting
// Единственная запись; применяется только при расчёте котировки и при
// пересчёте цен каталога, в бронированиях не хранится
type DiscountSetting struct {
	ID               int64
	DiscountFraction decimal.Decimal // доля в [0,1], например 0.10 = 10%

	UpdatedAt time.Time
}

// GalleryImage картинка из галереи для карточек автомобилей
type GalleryImage struct {
	ID   int64
	Name string
	URL  string

	CreatedAt time.Time
}
