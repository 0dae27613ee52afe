package fleet

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	"github.com/m04kA/SMC-RentalService/internal/infra/storage/image"
	"github.com/m04kA/SMC-RentalService/internal/service/fleet/models"
)

// Service сервис управления автопарком и галереей
type Service struct {
	carRepo   CarRepository
	imageRepo ImageRepository
	logger    Logger
}

func NewService(carRepo CarRepository, imageRepo ImageRepository, logger Logger) *Service {
	return &Service{
		carRepo:   carRepo,
		imageRepo: imageRepo,
		logger:    logger,
	}
}

// CreateCar создаёт автомобиль в каталоге
func (s *Service) CreateCar(ctx context.Context, req *models.CreateCarRequest) (*models.CarResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("CreateCar: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.carRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("CreateCar: failed to create car: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCar: car created: id=%d, name=%s %s", created.ID, created.Brand, created.Name)
	return models.FromDomainCar(created), nil
}

// GetCar получает автомобиль по ID
func (s *Service) GetCar(ctx context.Context, id int64) (*models.CarResponse, error) {
	c, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, car.ErrCarNotFound) {
			s.logger.Warn("GetCar: car not found: id=%d", id)
			return nil, fmt.Errorf("%w: id %d", ErrCarNotFound, id)
		}
		s.logger.Error("GetCar: failed to get car: id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return models.FromDomainCar(c), nil
}

// ListCars получает список всех автомобилей
func (s *Service) ListCars(ctx context.Context) (*models.CarListResponse, error) {
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCars: failed to list cars: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return models.FromDomainCarList(cars), nil
}

// UpdateCar применяет частичные изменения автомобиля
// Изменения каталога не затрагивают снимки в существующих бронированиях
func (s *Service) UpdateCar(ctx context.Context, id int64, req *models.UpdateCarRequest) (*models.CarResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("UpdateCar: validation failed: id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	c, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, car.ErrCarNotFound) {
			s.logger.Warn("UpdateCar: car not found: id=%d", id)
			return nil, fmt.Errorf("%w: id %d", ErrCarNotFound, id)
		}
		s.logger.Error("UpdateCar: failed to get car: id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	req.ApplyTo(c)

	if err := s.carRepo.Update(ctx, c); err != nil {
		if errors.Is(err, car.ErrCarNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCarNotFound, id)
		}
		s.logger.Error("UpdateCar: failed to update car: id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCar: car updated: id=%d", id)
	return s.GetCar(ctx, id)
}

// DeleteCar удаляет автомобиль из каталога
func (s *Service) DeleteCar(ctx context.Context, id int64) error {
	if err := s.carRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, car.ErrCarNotFound) {
			s.logger.Warn("DeleteCar: car not found: id=%d", id)
			return fmt.Errorf("%w: id %d", ErrCarNotFound, id)
		}
		s.logger.Error("DeleteCar: failed to delete car: id=%d, error=%v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteCar: car deleted: id=%d", id)
	return nil
}

// SaveImage добавляет изображение в галерею
func (s *Service) SaveImage(ctx context.Context, req *models.SaveImageRequest) (*models.ImageResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("SaveImage: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.imageRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("SaveImage: failed to save image: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("SaveImage: image saved: id=%d, name=%s", created.ID, created.Name)
	return models.FromDomainImage(created), nil
}

// ListImages получает все изображения галереи
func (s *Service) ListImages(ctx context.Context) (*models.ImageListResponse, error) {
	images, err := s.imageRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListImages: failed to list images: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return models.FromDomainImageList(images), nil
}

// DeleteImage удаляет изображение из галереи
func (s *Service) DeleteImage(ctx context.Context, id int64) error {
	if err := s.imageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, image.ErrImageNotFound) {
			s.logger.Warn("DeleteImage: image not found: id=%d", id)
			return fmt.Errorf("%w: id %d", ErrImageNotFound, id)
		}
		s.logger.Error("DeleteImage: failed to delete image: id=%d, error=%v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteImage: image deleted: id=%d", id)
	return nil
}
