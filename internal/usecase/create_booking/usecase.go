package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	addonRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/addon"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	packageRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rentalpackage"
	"github.com/m04kA/SMC-RentalService/internal/pricing"
)

// UseCase use case для создания бронирования.
// Снимает snapshot-ы каталога и фиксирует итоговую стоимость:
// последующие изменения цен каталога бронирование не затрагивают
type UseCase struct {
	bookingRepo  BookingRepository
	carRepo      CarRepository
	addonRepo    AddOnRepository
	packageRepo  PackageRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	carRepo CarRepository,
	addonRepo AddOnRepository,
	packageRepo PackageRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		carRepo:      carRepo,
		addonRepo:    addonRepo,
		packageRepo:  packageRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию: snapshot-ы и расчёт стоимости
// берутся из согласованного состояния каталога
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, car=%d, package=%d, addons=%v, pickup=%s, dropoff=%s",
		req.Customer.Email, req.CarID, req.PackageID, req.AddOnIDs,
		req.PickupAt.Format(domain.DateTimeFormat), req.DropoffAt.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата получения не должна быть в прошлом
	if err := validatePickupNotInPast(req.PickupAt, now); err != nil {
		uc.logger.Warn("CreateBooking: pickup date validation failed: %v", err)
		return nil, err
	}

	// 4. Количество оплачиваемых суток аренды
	days, err := pricing.DaysBetween(req.PickupAt, req.DropoffAt)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid period: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Автомобиль определяет категорию, по которой берутся цены
		car, err := uc.carRepo.GetByID(txCtx, req.CarID)
		if err != nil {
			if errors.Is(err, carRepo.ErrCarNotFound) {
				uc.logger.Warn("CreateBooking: car id=%d not found", req.CarID)
				return ErrCarNotFound
			}
			uc.logger.Error("CreateBooking: failed to get car id=%d: %v", req.CarID, err)
			return fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
		}

		// 5.2. Пакет
		pkg, err := uc.packageRepo.GetByID(txCtx, req.PackageID)
		if err != nil {
			if errors.Is(err, packageRepo.ErrPackageNotFound) {
				uc.logger.Warn("CreateBooking: package id=%d not found", req.PackageID)
				return ErrPackageNotFound
			}
			uc.logger.Error("CreateBooking: failed to get package id=%d: %v", req.PackageID, err)
			return fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
		}

		// 5.3. Дополнения
		addons, err := uc.addonRepo.GetByIDs(txCtx, req.AddOnIDs)
		if err != nil {
			if errors.Is(err, addonRepo.ErrAddonNotFound) {
				uc.logger.Warn("CreateBooking: some addons not found: ids=%v", req.AddOnIDs)
				return ErrAddonNotFound
			}
			uc.logger.Error("CreateBooking: failed to get addons: %v", err)
			return fmt.Errorf("%w: failed to get addons: %v", ErrInternal, err)
		}

		// 5.4. Snapshot-ы каталога на момент создания
		carSnapshot := car.Snapshot()
		pkgSnapshot := pkg.Snapshot()
		addonSnapshots := make([]domain.AddOnSnapshot, 0, len(addons))
		for _, a := range addons {
			addonSnapshots = append(addonSnapshots, a.Snapshot())
		}

		// 5.5. Фиксируем итоговую стоимость по snapshot-ам
		total, err := pricing.ComputeTotal(car.Category, days, pkgSnapshot, addonSnapshots)
		if err != nil {
			return uc.mapPricingError(err)
		}

		// 5.6. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			Car: carSnapshot,
			User: domain.UserSnapshot{
				Name:        req.Customer.Name,
				Email:       req.Customer.Email,
				Phone:       req.Customer.Phone,
				Nationality: req.Customer.Nationality,
			},
			PickupAt:        req.PickupAt,
			DropoffAt:       req.DropoffAt,
			PickupLocation:  req.PickupLocation,
			DropoffLocation: req.DropoffLocation,
			NumberOfDays:    days,
			SelectedAddOns:  addonSnapshots,
			SelectedPackage: pkgSnapshot,
			TotalPrice:      total,
			IsPaid:          req.IsPaid,
			Status:          domain.StatusConfirmed,
		}

		// 5.7. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%s %s",
		result.ID, result.TotalPrice.String(), domain.CurrencyCode)

	// Конвертируем в response
	return &Response{
		ID:           result.ID,
		CarID:        result.Car.CarID,
		CarName:      result.Car.Name,
		Category:     string(result.Car.Category),
		PackageID:    result.SelectedPackage.PackageID,
		PackageName:  result.SelectedPackage.Name,
		NumberOfDays: result.NumberOfDays,
		TotalPrice:   result.TotalPrice,
		Currency:     domain.CurrencyCode,
		IsPaid:       result.IsPaid,
		Status:       string(result.Status),
		CreatedAt:    result.CreatedAt,
	}, nil
}

// mapPricingError переводит ошибки расчёта в ошибки usecase
func (uc *UseCase) mapPricingError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrMissingPrice):
		uc.logger.Warn("CreateBooking: %v", err)
		return fmt.Errorf("%w: %v", ErrPriceNotSet, err)
	case errors.Is(err, pricing.ErrInvalidRange):
		uc.logger.Warn("CreateBooking: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	default:
		uc.logger.Error("CreateBooking: pricing failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
