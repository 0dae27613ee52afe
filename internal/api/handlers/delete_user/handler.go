package delete_user

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/users"
)

const (
	msgMissingUID   = "не указан идентификатор пользователя"
	msgUserNotFound = "пользователь не найден"
)

type Handler struct {
	service UsersService
	logger  Logger
}

func NewHandler(service UsersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/users/{uid}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	if uid == "" {
		h.logger.Warn("DELETE /users/{uid} - Missing uid")
		handlers.RespondBadRequest(w, msgMissingUID)
		return
	}

	if err := h.service.Delete(r.Context(), uid); err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("DELETE /users/{uid} - User not found: uid=%s", uid)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("DELETE /users/{uid} - Failed to delete user: uid=%s, error=%v", uid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /users/{uid} - User deleted: uid=%s", uid)
	handlers.RespondNoContent(w)
}
