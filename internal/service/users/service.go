package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/integrations/authservice"
	"github.com/m04kA/SMC-RentalService/internal/service/users/models"
)

// Service сервис управления пользователями поверх сервиса
// аутентификации. Учётные записи живут во внешнем сервисе,
// здесь только проксирование админских операций
type Service struct {
	authClient AuthClient
	logger     Logger
}

func NewService(authClient AuthClient, logger Logger) *Service {
	return &Service{
		authClient: authClient,
		logger:     logger,
	}
}

// List получает список всех пользователей
func (s *Service) List(ctx context.Context) (*models.UserListResponse, error) {
	users, err := s.authClient.ListUsers(ctx)
	if err != nil {
		s.logger.Error("List: failed to list users: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return models.FromAuthUserList(users), nil
}

// SetBlocked блокирует или разблокирует пользователя
func (s *Service) SetBlocked(ctx context.Context, uid string, req *models.BlockUserRequest) error {
	if uid == "" {
		return fmt.Errorf("%w: uid is required", ErrInvalidInput)
	}

	if err := s.authClient.SetDisabled(ctx, uid, req.Disabled); err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			s.logger.Warn("SetBlocked: user not found: uid=%s", uid)
			return fmt.Errorf("%w: uid %s", ErrUserNotFound, uid)
		}
		s.logger.Error("SetBlocked: failed to set disabled flag: uid=%s, error=%v", uid, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("SetBlocked: user %s disabled=%t", uid, req.Disabled)
	return nil
}

// SetRole назначает пользователю роль
func (s *Service) SetRole(ctx context.Context, uid string, req *models.SetRoleRequest) error {
	if uid == "" {
		return fmt.Errorf("%w: uid is required", ErrInvalidInput)
	}
	if err := req.Validate(); err != nil {
		s.logger.Warn("SetRole: validation failed: uid=%s, error=%v", uid, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.authClient.SetRole(ctx, uid, req.Role); err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			s.logger.Warn("SetRole: user not found: uid=%s", uid)
			return fmt.Errorf("%w: uid %s", ErrUserNotFound, uid)
		}
		s.logger.Error("SetRole: failed to set role: uid=%s, error=%v", uid, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("SetRole: user %s role=%s", uid, req.Role)
	return nil
}

// Delete удаляет учётную запись пользователя
func (s *Service) Delete(ctx context.Context, uid string) error {
	if uid == "" {
		return fmt.Errorf("%w: uid is required", ErrInvalidInput)
	}

	if err := s.authClient.Delete(ctx, uid); err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			s.logger.Warn("Delete: user not found: uid=%s", uid)
			return fmt.Errorf("%w: uid %s", ErrUserNotFound, uid)
		}
		s.logger.Error("Delete: failed to delete user: uid=%s, error=%v", uid, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: user deleted: uid=%s", uid)
	return nil
}
