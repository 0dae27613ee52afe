package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	"github.com/m04kA/SMC-RentalService/internal/pricing"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
)

// Service сервис управления бронированиями
type Service struct {
	bookingRepo BookingRepository
	carRepo     CarRepository
	logger      Logger
}

func NewService(bookingRepo BookingRepository, carRepo CarRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID вместе с разбивкой стоимости
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking not found: id=%d", id)
			return nil, fmt.Errorf("%w: id %d", ErrBookingNotFound, id)
		}
		s.logger.Error("GetByID: failed to get booking: id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := models.FromDomainBooking(b)

	summary, err := pricing.RenderLineItems(b)
	if err != nil {
		// Цена зафиксирована в snapshot, поэтому ошибка рендера
		// возможна только при повреждённых данных
		s.logger.Error("GetByID: failed to render summary: id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	resp.Summary = summary

	return resp, nil
}

// List получает список бронирований с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to list bookings: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Update применяет частичные изменения бронирования.
// Допустимы только смена статуса, отметка об оплате и переназначение
// автомобиля; зафиксированная стоимость не пересчитывается
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	if req.IsEmpty() {
		s.logger.Warn("Update: empty update request: id=%d", id)
		return nil, fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("Update: invalid status %q: id=%d", *req.Status, id)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
			if errors.Is(err, booking.ErrBookingNotFound) {
				return nil, fmt.Errorf("%w: id %d", ErrBookingNotFound, id)
			}
			s.logger.Error("Update: failed to update status: id=%d, error=%v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	if req.IsPaid != nil {
		if err := s.bookingRepo.SetPaid(ctx, id, *req.IsPaid); err != nil {
			if errors.Is(err, booking.ErrBookingNotFound) {
				return nil, fmt.Errorf("%w: id %d", ErrBookingNotFound, id)
			}
			s.logger.Error("Update: failed to set paid flag: id=%d, error=%v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	if req.CarID != nil {
		if err := s.reassignCar(ctx, id, *req.CarID); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Update: booking updated: id=%d", id)
	return s.GetByID(ctx, id)
}

// reassignCar заменяет назначенный автомобиль на активном бронировании.
// Цена остаётся прежней: новый автомобиль должен быть заменой того же
// класса, клиент платит зафиксированную при создании сумму
func (s *Service) reassignCar(ctx context.Context, id int64, carID int64) error {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return fmt.Errorf("%w: id %d", ErrBookingNotFound, id)
		}
		s.logger.Error("reassignCar: failed to get booking: id=%d, error=%v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if !b.CanChangeCar() {
		s.logger.Warn("reassignCar: booking %d in status %s, car change rejected", id, b.Status)
		return fmt.Errorf("%w: status %s", ErrCannotChangeCar, b.Status)
	}

	c, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		if errors.Is(err, car.ErrCarNotFound) {
			return fmt.Errorf("%w: id %d", ErrCarNotFound, carID)
		}
		s.logger.Error("reassignCar: failed to get car: id=%d, error=%v", carID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.ReplaceCarSnapshot(ctx, id, c.Snapshot()); err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return fmt.Errorf("%w: id %d", ErrBookingNotFound, id)
		}
		s.logger.Error("reassignCar: failed to replace car snapshot: id=%d, error=%v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("reassignCar: booking %d reassigned to car %d (%s %s)", id, carID, c.Brand, c.Name)
	return nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking not found: id=%d", id)
			return fmt.Errorf("%w: id %d", ErrBookingNotFound, id)
		}
		s.logger.Error("Delete: failed to delete booking: id=%d, error=%v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking deleted: id=%d", id)
	return nil
}
