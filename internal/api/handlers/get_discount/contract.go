package get_discount

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/discount/models"
)

type DiscountService interface {
	Get(ctx context.Context) (*models.DiscountResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
