package save_package

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/catalog/models"
)

type CatalogService interface {
	CreatePackage(ctx context.Context, req *models.SavePackageRequest) (*models.PackageResponse, error)
	UpdatePackage(ctx context.Context, id int64, req *models.SavePackageRequest) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
