package list_images

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/fleet/models"
)

type FleetService interface {
	ListImages(ctx context.Context) (*models.ImageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
