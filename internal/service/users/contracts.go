package users

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/integrations/authservice"
)

// AuthClient интерфейс клиента сервиса аутентификации
type AuthClient interface {
	ListUsers(ctx context.Context) ([]authservice.User, error)
	SetDisabled(ctx context.Context, uid string, disabled bool) error
	SetRole(ctx context.Context, uid string, role string) error
	Delete(ctx context.Context, uid string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
