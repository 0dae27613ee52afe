package block_user

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/users/models"
)

type UsersService interface {
	SetBlocked(ctx context.Context, uid string, req *models.BlockUserRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
