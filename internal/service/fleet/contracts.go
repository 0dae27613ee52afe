package fleet

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CarRepository интерфейс для работы с автомобилями
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	List(ctx context.Context) ([]*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int64) error
}

// ImageRepository интерфейс для работы с галереей изображений
type ImageRepository interface {
	Create(ctx context.Context, image *domain.GalleryImage) (*domain.GalleryImage, error)
	List(ctx context.Context) ([]*domain.GalleryImage, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
