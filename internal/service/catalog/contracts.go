package catalog

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// AddOnRepository интерфейс для работы с дополнениями
type AddOnRepository interface {
	Create(ctx context.Context, addon *domain.AddOn) (*domain.AddOn, error)
	GetByID(ctx context.Context, id int64) (*domain.AddOn, error)
	List(ctx context.Context) ([]*domain.AddOn, error)
	Update(ctx context.Context, addon *domain.AddOn) error
	Delete(ctx context.Context, id int64) error
}

// PackageRepository интерфейс для работы с пакетами
type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
	List(ctx context.Context) ([]*domain.Package, error)
	Update(ctx context.Context, pkg *domain.Package) error
	UpdatePrices(ctx context.Context, id int64, prices domain.CategoryPrices) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
