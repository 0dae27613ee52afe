package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/infra/storage/addon"
	"github.com/m04kA/SMC-RentalService/internal/infra/storage/rentalpackage"
	"github.com/m04kA/SMC-RentalService/internal/pricing"
	"github.com/m04kA/SMC-RentalService/internal/service/catalog/models"
)

// Service сервис управления каталогом дополнений и пакетов
type Service struct {
	addonRepo   AddOnRepository
	packageRepo PackageRepository
	logger      Logger
}

func NewService(addonRepo AddOnRepository, packageRepo PackageRepository, logger Logger) *Service {
	return &Service{
		addonRepo:   addonRepo,
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// CreateAddOn создаёт дополнение
func (s *Service) CreateAddOn(ctx context.Context, req *models.SaveAddOnRequest) (*models.AddOnResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("CreateAddOn: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	a, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.addonRepo.Create(ctx, a)
	if err != nil {
		s.logger.Error("CreateAddOn: failed to create addon: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("CreateAddOn: addon created: id=%d, name=%s", created.ID, created.Name)
	return models.FromDomainAddOn(created), nil
}

// UpdateAddOn полностью заменяет данные дополнения.
// Снимки в существующих бронированиях не меняются
func (s *Service) UpdateAddOn(ctx context.Context, id int64, req *models.SaveAddOnRequest) (*models.AddOnResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("UpdateAddOn: validation failed: id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	a, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	a.ID = id

	if err := s.addonRepo.Update(ctx, a); err != nil {
		if errors.Is(err, addon.ErrAddonNotFound) {
			s.logger.Warn("UpdateAddOn: addon not found: id=%d", id)
			return nil, fmt.Errorf("%w: id %d", ErrAddonNotFound, id)
		}
		s.logger.Error("UpdateAddOn: failed to update addon: id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	fresh, err := s.addonRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateAddOn: failed to reload addon: id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAddOn: addon updated: id=%d", id)
	return models.FromDomainAddOn(fresh), nil
}

// ListAddOns получает список всех дополнений
func (s *Service) ListAddOns(ctx context.Context) (*models.AddOnListResponse, error) {
	addons, err := s.addonRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListAddOns: failed to list addons: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return models.FromDomainAddOnList(addons), nil
}

// DeleteAddOn удаляет дополнение из каталога
func (s *Service) DeleteAddOn(ctx context.Context, id int64) error {
	if err := s.addonRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, addon.ErrAddonNotFound) {
			s.logger.Warn("DeleteAddOn: addon not found: id=%d", id)
			return fmt.Errorf("%w: id %d", ErrAddonNotFound, id)
		}
		s.logger.Error("DeleteAddOn: failed to delete addon: id=%d, error=%v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteAddOn: addon deleted: id=%d", id)
	return nil
}

// CreatePackage создаёт пакет. Входные цены сохраняются в OldPrices,
// актуальные цены записываются уже со скидкой пакета
func (s *Service) CreatePackage(ctx context.Context, req *models.SavePackageRequest) (*models.PackageResponse, error) {
	p, err := s.buildPackage(req)
	if err != nil {
		return nil, err
	}

	created, err := s.packageRepo.Create(ctx, p)
	if err != nil {
		s.logger.Error("CreatePackage: failed to create package: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePackage: package created: id=%d, name=%s", created.ID, created.Name)
	return models.FromDomainPackage(created), nil
}

// UpdatePackage полностью заменяет данные пакета
func (s *Service) UpdatePackage(ctx context.Context, id int64, req *models.SavePackageRequest) (*models.PackageResponse, error) {
	p, err := s.buildPackage(req)
	if err != nil {
		return nil, err
	}
	p.ID = id

	if err := s.packageRepo.Update(ctx, p); err != nil {
		if errors.Is(err, rentalpackage.ErrPackageNotFound) {
			s.logger.Warn("UpdatePackage: package not found: id=%d", id)
			return nil, fmt.Errorf("%w: id %d", ErrPackageNotFound, id)
		}
		s.logger.Error("UpdatePackage: failed to update package: id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	fresh, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdatePackage: failed to reload package: id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePackage: package updated: id=%d", id)
	return models.FromDomainPackage(fresh), nil
}

// ListPackages получает список всех пакетов
func (s *Service) ListPackages(ctx context.Context) (*models.PackageListResponse, error) {
	packages, err := s.packageRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListPackages: failed to list packages: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return models.FromDomainPackageList(packages), nil
}

// DeletePackage удаляет пакет из каталога
func (s *Service) DeletePackage(ctx context.Context, id int64) error {
	if err := s.packageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, rentalpackage.ErrPackageNotFound) {
			s.logger.Warn("DeletePackage: package not found: id=%d", id)
			return fmt.Errorf("%w: id %d", ErrPackageNotFound, id)
		}
		s.logger.Error("DeletePackage: failed to delete package: id=%d, error=%v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("DeletePackage: package deleted: id=%d", id)
	return nil
}

// ApplyOnlineDiscount пересчитывает актуальные цены пакета от OldPrices
// с новой долей скидки. Пересчёт явный и однократный: расчёт стоимости
// бронирования берёт цены как есть и скидку повторно не применяет
func (s *Service) ApplyOnlineDiscount(ctx context.Context, id int64, fraction decimal.Decimal) (*models.PackageResponse, error) {
	if err := pricing.ValidateDiscountFraction(fraction); err != nil {
		s.logger.Warn("ApplyOnlineDiscount: invalid fraction %s: id=%d", fraction.String(), id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	p, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rentalpackage.ErrPackageNotFound) {
			s.logger.Warn("ApplyOnlineDiscount: package not found: id=%d", id)
			return nil, fmt.Errorf("%w: id %d", ErrPackageNotFound, id)
		}
		s.logger.Error("ApplyOnlineDiscount: failed to get package: id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	prices := make(domain.CategoryPrices, len(p.OldPrices))
	for category, base := range p.OldPrices {
		discounted, err := pricing.DiscountedDailyPrice(base, fraction)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		prices[category] = discounted
	}

	if err := s.packageRepo.UpdatePrices(ctx, id, prices); err != nil {
		if errors.Is(err, rentalpackage.ErrPackageNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrPackageNotFound, id)
		}
		s.logger.Error("ApplyOnlineDiscount: failed to update prices: id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	p.Prices = prices

	s.logger.Info("ApplyOnlineDiscount: package %d repriced with discount %s", id, fraction.String())
	return models.FromDomainPackage(p), nil
}

// buildPackage валидирует запрос и рассчитывает цены со скидкой
func (s *Service) buildPackage(req *models.SavePackageRequest) (*domain.Package, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("buildPackage: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	p, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fraction := p.OnlineDiscountPercent.Div(decimal.NewFromInt(100))
	for category, base := range p.OldPrices {
		discounted, err := pricing.DiscountedDailyPrice(base, fraction)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		p.Prices[category] = discounted
	}

	return p, nil
}
