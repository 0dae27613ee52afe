package save_addon

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/catalog"
	"github.com/m04kA/SMC-RentalService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAddonID     = "некорректный идентификатор дополнения"
	msgAddonNotFound      = "дополнение не найдено"
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

// HandleCreate POST /api/v1/addons
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.SaveAddOnRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /addons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateAddOn(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /addons - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /addons - Failed to create addon: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /addons - Addon created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/addons/{addonId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "addonId")
	if err != nil {
		h.logger.Warn("PUT /addons/{addonId} - Invalid addon id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAddonID)
		return
	}

	var req models.SaveAddOnRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /addons/{addonId} - Invalid request body: id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateAddOn(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrAddonNotFound):
			h.logger.Warn("PUT /addons/{addonId} - Addon not found: id=%d", id)
			handlers.RespondNotFound(w, msgAddonNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /addons/{addonId} - Validation failed: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /addons/{addonId} - Failed to update addon: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /addons/{addonId} - Addon updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
