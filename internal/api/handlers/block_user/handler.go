package block_user

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/users"
	"github.com/m04kA/SMC-RentalService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUID         = "не указан идентификатор пользователя"
	msgUserNotFound       = "пользователь не найден"
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

// Handle PUT /api/v1/users/{uid}/block
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	if uid == "" {
		h.logger.Warn("PUT /users/{uid}/block - Missing uid")
		handlers.RespondBadRequest(w, msgMissingUID)
		return
	}

	var req models.BlockUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{uid}/block - Invalid request body: uid=%s, error=%v", uid, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetBlocked(r.Context(), uid, &req); err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("PUT /users/{uid}/block - User not found: uid=%s", uid)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PUT /users/{uid}/block - Validation failed: uid=%s, error=%v", uid, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /users/{uid}/block - Failed to set blocked: uid=%s, error=%v", uid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/{uid}/block - User blocked state updated: uid=%s, disabled=%t", uid, req.Disabled)
	handlers.RespondNoContent(w)
}
