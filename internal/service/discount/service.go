package discount

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	storage "github.com/m04kA/SMC-RentalService/internal/infra/storage/discount"
	"github.com/m04kA/SMC-RentalService/internal/pricing"
	"github.com/m04kA/SMC-RentalService/internal/service/discount/models"
)

// Service сервис управления глобальной онлайн-скидкой
type Service struct {
	settingRepo SettingRepository
	logger      Logger
}

func NewService(settingRepo SettingRepository, logger Logger) *Service {
	return &Service{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// Get возвращает текущую долю онлайн-скидки
func (s *Service) Get(ctx context.Context) (*models.DiscountResponse, error) {
	setting, err := s.settingRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSettingNotFound) {
			s.logger.Warn("Get: discount setting missing")
			return nil, ErrSettingNotFound
		}
		s.logger.Error("Get: failed to get discount setting: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return models.FromDomainSetting(setting), nil
}

// Update записывает новую долю онлайн-скидки.
// Значение вне [0,1] отклоняется до обращения к хранилищу
func (s *Service) Update(ctx context.Context, req *models.UpdateDiscountRequest) (*models.DiscountResponse, error) {
	fraction, err := decimal.NewFromString(req.DiscountFraction)
	if err != nil {
		s.logger.Warn("Update: invalid discountFraction %q", req.DiscountFraction)
		return nil, fmt.Errorf("%w: invalid discountFraction %q", ErrInvalidInput, req.DiscountFraction)
	}

	if err := pricing.ValidateDiscountFraction(fraction); err != nil {
		s.logger.Warn("Update: discount fraction out of range: %s", fraction.String())
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	setting, err := s.settingRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSettingNotFound) {
			return nil, ErrSettingNotFound
		}
		s.logger.Error("Update: failed to get discount setting: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := s.settingRepo.Update(ctx, setting.ID, fraction); err != nil {
		if errors.Is(err, storage.ErrSettingNotFound) {
			return nil, ErrSettingNotFound
		}
		s.logger.Error("Update: failed to update discount setting: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Update: online discount set to %s", fraction.String())
	return s.Get(ctx)
}
