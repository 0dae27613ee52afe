package list_cars

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

type Handler struct {
	service FleetService
	logger  Logger
}

func NewHandler(service FleetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCars(r.Context())
	if err != nil {
		h.logger.Error("GET /cars - Failed to list cars: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
