package discount

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// SettingRepository интерфейс для записи онлайн-скидки
type SettingRepository interface {
	Get(ctx context.Context) (*domain.DiscountSetting, error)
	Update(ctx context.Context, id int64, fraction decimal.Decimal) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
