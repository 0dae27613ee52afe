package set_user_role

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/users/models"
)

type UsersService interface {
	SetRole(ctx context.Context, uid string, req *models.SetRoleRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
