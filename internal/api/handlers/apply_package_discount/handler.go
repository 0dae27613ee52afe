package apply_package_discount

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPackageID   = "некорректный идентификатор пакета"
	msgInvalidFraction    = "доля скидки должна быть числом от 0 до 1"
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

// Handle POST /api/v1/packages/{packageId}/apply-discount
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "packageId")
	if err != nil {
		h.logger.Warn("POST /packages/{packageId}/apply-discount - Invalid package id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	var req ApplyDiscountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages/{packageId}/apply-discount - Invalid request body: id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	fraction, err := decimal.NewFromString(req.DiscountFraction)
	if err != nil {
		h.logger.Warn("POST /packages/{packageId}/apply-discount - Invalid fraction %q: id=%d", req.DiscountFraction, id)
		handlers.RespondBadRequest(w, msgInvalidFraction)
		return
	}

	result, err := h.service.ApplyOnlineDiscount(r.Context(), id, fraction)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrPackageNotFound):
			h.logger.Warn("POST /packages/{packageId}/apply-discount - Package not found: id=%d", id)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /packages/{packageId}/apply-discount - Validation failed: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidFraction)

		default:
			h.logger.Error("POST /packages/{packageId}/apply-discount - Failed to apply discount: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /packages/{packageId}/apply-discount - Discount applied: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
