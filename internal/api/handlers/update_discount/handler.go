package update_discount

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/discount"
	"github.com/m04kA/SMC-RentalService/internal/service/discount/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFraction    = "доля скидки должна быть числом от 0 до 1"
	msgSettingNotFound    = "настройка скидки не найдена"
)

type Handler struct {
	service DiscountService
	logger  Logger
}

func NewHandler(service DiscountService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/discount
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateDiscountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /discount - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, discount.ErrInvalidInput):
			h.logger.Warn("PUT /discount - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFraction)

		case errors.Is(err, discount.ErrSettingNotFound):
			h.logger.Warn("PUT /discount - Setting not found")
			handlers.RespondNotFound(w, msgSettingNotFound)

		default:
			h.logger.Error("PUT /discount - Failed to update discount: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /discount - Discount updated: fraction=%s", result.DiscountFraction)
	handlers.RespondJSON(w, http.StatusOK, result)
}
