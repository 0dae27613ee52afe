package list_cars

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/fleet/models"
)

type FleetService interface {
	ListCars(ctx context.Context) (*models.CarListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
