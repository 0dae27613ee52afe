package apply_package_discount

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/service/catalog/models"
)

type CatalogService interface {
	ApplyOnlineDiscount(ctx context.Context, id int64, fraction decimal.Decimal) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
