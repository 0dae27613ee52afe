package create_car

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/fleet/models"
)

type FleetService interface {
	CreateCar(ctx context.Context, req *models.CreateCarRequest) (*models.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
