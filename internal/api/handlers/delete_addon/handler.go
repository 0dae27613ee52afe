package delete_addon

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/catalog"
)

const (
	msgInvalidAddonID = "некорректный идентификатор дополнения"
	msgAddonNotFound  = "дополнение не найдено"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/addons/{addonId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "addonId")
	if err != nil {
		h.logger.Warn("DELETE /addons/{addonId} - Invalid addon id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAddonID)
		return
	}

	if err := h.service.DeleteAddOn(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrAddonNotFound):
			h.logger.Warn("DELETE /addons/{addonId} - Addon not found: id=%d", id)
			handlers.RespondNotFound(w, msgAddonNotFound)

		default:
			h.logger.Error("DELETE /addons/{addonId} - Failed to delete addon: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /addons/{addonId} - Addon deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
