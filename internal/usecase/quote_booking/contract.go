package quote_booking

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

// AddOnRepository интерфейс репозитория дополнений
type AddOnRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.AddOn, error)
}

// PackageRepository интерфейс репозитория пакетов
type PackageRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
