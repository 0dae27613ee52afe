package save_addon

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateAddOn(ctx context.Context, req *models.SaveAddOnRequest) (*models.AddOnResponse, error)
	UpdateAddOn(ctx context.Context, id int64, req *models.SaveAddOnRequest) (*models.AddOnResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
