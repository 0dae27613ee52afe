package save_image

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/fleet/models"
)

type FleetService interface {
	SaveImage(ctx context.Context, req *models.SaveImageRequest) (*models.ImageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
