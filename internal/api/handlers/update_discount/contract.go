package update_discount

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/discount/models"
)

type DiscountService interface {
	Update(ctx context.Context, req *models.UpdateDiscountRequest) (*models.DiscountResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
