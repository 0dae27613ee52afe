package list_addons

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/catalog/models"
)

type CatalogService interface {
	ListAddOns(ctx context.Context) (*models.AddOnListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
