package bookings

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	SetPaid(ctx context.Context, id int64, isPaid bool) error
	ReplaceCarSnapshot(ctx context.Context, id int64, car domain.CarSnapshot) error
	Delete(ctx context.Context, id int64) error
}

// CarRepository интерфейс репозитория автопарка
// Нужен для переназначения автомобиля в бронировании
type CarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
