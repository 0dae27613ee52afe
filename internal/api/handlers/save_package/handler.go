package save_package

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/catalog"
	"github.com/m04kA/SMC-RentalService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPackageID   = "некорректный идентификатор пакета"
	msgPackageNotFound    = "пакет не найден"
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

// HandleCreate POST /api/v1/packages
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.SavePackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /packages - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /packages - Failed to create package: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /packages - Package created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/packages/{packageId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "packageId")
	if err != nil {
		h.logger.Warn("PUT /packages/{packageId} - Invalid package id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	var req models.SavePackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /packages/{packageId} - Invalid request body: id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdatePackage(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrPackageNotFound):
			h.logger.Warn("PUT /packages/{packageId} - Package not found: id=%d", id)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /packages/{packageId} - Validation failed: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /packages/{packageId} - Failed to update package: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /packages/{packageId} - Package updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
