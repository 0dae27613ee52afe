package update_car

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/fleet/models"
)

type FleetService interface {
	UpdateCar(ctx context.Context, id int64, req *models.UpdateCarRequest) (*models.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
