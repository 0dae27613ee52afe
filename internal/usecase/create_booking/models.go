package create_booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer данные клиента, снимаемые в snapshot бронирования
type Customer struct {
	Name        string
	Email       string
	Phone       string
	Nationality string
}

// Request модель запроса на создание бронирования
type Request struct {
	Customer Customer // Данные клиента

	CarID     int64   // ID автомобиля
	PackageID int64   // ID пакета
	AddOnIDs  []int64 // ID выбранных дополнений

	PickupAt        time.Time // Дата и время получения
	DropoffAt       time.Time // Дата и время возврата
	PickupLocation  string    // Место получения
	DropoffLocation string    // Место возврата

	IsPaid bool // Оплачено при создании (онлайн-оплата)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID int64 // ID созданного бронирования

	CarID        int64  // ID автомобиля из snapshot
	CarName      string // Название автомобиля
	Category     string // Категория автомобиля
	PackageID    int64  // ID пакета из snapshot
	PackageName  string // Название пакета
	NumberOfDays int    // Количество оплачиваемых суток

	TotalPrice decimal.Decimal // Зафиксированная стоимость
	Currency   string          // Валюта
	IsPaid     bool            // Флаг оплаты
	Status     string          // Статус бронирования

	CreatedAt time.Time // Время создания
}
