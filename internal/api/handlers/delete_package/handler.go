package delete_package

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/catalog"
)

const (
	msgInvalidPackageID = "некорректный идентификатор пакета"
	msgPackageNotFound  = "пакет не найден"
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

// Handle DELETE /api/v1/packages/{packageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "packageId")
	if err != nil {
		h.logger.Warn("DELETE /packages/{packageId} - Invalid package id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	if err := h.service.DeletePackage(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrPackageNotFound):
			h.logger.Warn("DELETE /packages/{packageId} - Package not found: id=%d", id)
			handlers.RespondNotFound(w, msgPackageNotFound)

		default:
			h.logger.Error("DELETE /packages/{packageId} - Failed to delete package: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /packages/{packageId} - Package deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
