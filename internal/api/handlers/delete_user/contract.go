package delete_user

import "context"

type UsersService interface {
	Delete(ctx context.Context, uid string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
