package get_discount

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/discount"
)

const (
	msgSettingNotFound = "настройка скидки не найдена"
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

// Handle GET /api/v1/discount
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, discount.ErrSettingNotFound):
			h.logger.Warn("GET /discount - Setting not found")
			handlers.RespondNotFound(w, msgSettingNotFound)

		default:
			h.logger.Error("GET /discount - Failed to get discount: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
