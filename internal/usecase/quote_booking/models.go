package quote_booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на расчёт стоимости бронирования
type Request struct {
	CarID     int64     // ID автомобиля
	PackageID int64     // ID пакета
	AddOnIDs  []int64   // ID выбранных дополнений
	PickupAt  time.Time // Дата и время получения
	DropoffAt time.Time // Дата и время возврата
}

// AddOnQuote расчёт стоимости одного дополнения
type AddOnQuote struct {
	AddOnID int64
	Name    string
	PerDay  bool
	Cost    decimal.Decimal
}

// Response модель ответа с расчётом стоимости
// Ничего не сохраняется: это предварительный расчёт для экрана подтверждения
type Response struct {
	NumberOfDays int
	Category     string

	PackageID        int64
	PackageName      string
	PackageDailyRate decimal.Decimal
	PackageCost      decimal.Decimal

	AddOns []AddOnQuote

	TotalPrice decimal.Decimal
	Currency   string
}
