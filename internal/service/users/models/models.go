package models

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/integrations/authservice"
)

var (
	// ErrValidation ошибка валидации входных данных
	ErrValidation = errors.New("validation error")
)

// Роли, которые принимает сервис аутентификации
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// BlockUserRequest запрос на блокировку/разблокировку пользователя
type BlockUserRequest struct {
	Disabled bool `json:"disabled"`
}

// SetRoleRequest запрос на смену роли пользователя
type SetRoleRequest struct {
	Role string `json:"role"`
}

// Validate проверяет корректность запроса
func (r *SetRoleRequest) Validate() error {
	if r.Role != RoleAdmin && r.Role != RoleUser {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, r.Role)
	}
	return nil
}

// UserResponse ответ с данными пользователя
type UserResponse struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Phone       string `json:"phone,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
	Provider    string `json:"provider,omitempty"`
	Role        string `json:"role"`
	Disabled    bool   `json:"disabled"`
}

// UserListResponse ответ со списком пользователей
type UserListResponse struct {
	Users []*UserResponse `json:"users"`
	Total int             `json:"total"`
}

// FromAuthUser конвертирует модель клиента в response
func FromAuthUser(u authservice.User) *UserResponse {
	return &UserResponse{
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Phone:       u.Phone,
		Nationality: u.Nationality,
		PhotoURL:    u.PhotoURL,
		Provider:    u.Provider,
		Role:        u.Role,
		Disabled:    u.Disabled,
	}
}

// FromAuthUserList конвертирует список пользователей
func FromAuthUserList(users []authservice.User) *UserListResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, FromAuthUser(u))
	}
	return &UserListResponse{
		Users: result,
		Total: len(result),
	}
}
