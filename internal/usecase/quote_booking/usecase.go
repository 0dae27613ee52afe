package quote_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	addonRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/addon"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	packageRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rentalpackage"
	"github.com/m04kA/SMC-RentalService/internal/pricing"
)

// UseCase use case расчёта стоимости бронирования.
// Ничего не записывает: собирает текущие цены каталога и считает итог
type UseCase struct {
	carRepo     CarRepository
	addonRepo   AddOnRepository
	packageRepo PackageRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	carRepo CarRepository,
	addonRepo AddOnRepository,
	packageRepo PackageRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		carRepo:     carRepo,
		addonRepo:   addonRepo,
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// Execute выполняет расчёт стоимости бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteBooking: car=%d, package=%d, addons=%v, pickup=%s, dropoff=%s",
		req.CarID, req.PackageID, req.AddOnIDs,
		req.PickupAt.Format(domain.DateTimeFormat), req.DropoffAt.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Количество оплачиваемых суток аренды
	days, err := pricing.DaysBetween(req.PickupAt, req.DropoffAt)
	if err != nil {
		uc.logger.Warn("QuoteBooking: invalid period: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	// 3. Автомобиль определяет категорию, по которой берутся цены
	car, err := uc.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("QuoteBooking: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	// 4. Пакет
	pkg, err := uc.packageRepo.GetByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			uc.logger.Warn("QuoteBooking: package id=%d not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get package id=%d: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	// 5. Дополнения
	addons, err := uc.addonRepo.GetByIDs(ctx, req.AddOnIDs)
	if err != nil {
		if errors.Is(err, addonRepo.ErrAddonNotFound) {
			uc.logger.Warn("QuoteBooking: some addons not found: ids=%v", req.AddOnIDs)
			return nil, ErrAddonNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get addons: %v", err)
		return nil, fmt.Errorf("%w: failed to get addons: %v", ErrInternal, err)
	}

	// 6. Snapshot-ы с текущими ценами каталога
	pkgSnapshot := pkg.Snapshot()
	addonSnapshots := make([]domain.AddOnSnapshot, 0, len(addons))
	for _, a := range addons {
		addonSnapshots = append(addonSnapshots, a.Snapshot())
	}

	// 7. Построчный расчёт и итог
	category := car.Category

	dailyRate, err := pricing.PackageDailyPrice(pkgSnapshot, category)
	if err != nil {
		return nil, uc.mapPricingError(err)
	}

	addonQuotes := make([]AddOnQuote, 0, len(addonSnapshots))
	for _, snapshot := range addonSnapshots {
		cost, err := pricing.AddonCost(snapshot, category, days)
		if err != nil {
			return nil, uc.mapPricingError(err)
		}
		addonQuotes = append(addonQuotes, AddOnQuote{
			AddOnID: snapshot.AddOnID,
			Name:    snapshot.Name,
			PerDay:  snapshot.PerDay,
			Cost:    cost,
		})
	}

	total, err := pricing.ComputeTotal(category, days, pkgSnapshot, addonSnapshots)
	if err != nil {
		return nil, uc.mapPricingError(err)
	}

	uc.logger.Info("QuoteBooking: car=%d, %d days, total=%s %s",
		req.CarID, days, total.String(), domain.CurrencyCode)

	return &Response{
		NumberOfDays:     days,
		Category:         string(category),
		PackageID:        pkg.ID,
		PackageName:      pkg.Name,
		PackageDailyRate: dailyRate,
		PackageCost:      dailyRate.Mul(decimal.NewFromInt(int64(days))),
		AddOns:           addonQuotes,
		TotalPrice:       total,
		Currency:         domain.CurrencyCode,
	}, nil
}

// mapPricingError переводит ошибки расчёта в ошибки usecase
func (uc *UseCase) mapPricingError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrMissingPrice):
		uc.logger.Warn("QuoteBooking: %v", err)
		return fmt.Errorf("%w: %v", ErrPriceNotSet, err)
	case errors.Is(err, pricing.ErrInvalidRange):
		uc.logger.Warn("QuoteBooking: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	default:
		uc.logger.Error("QuoteBooking: pricing failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
