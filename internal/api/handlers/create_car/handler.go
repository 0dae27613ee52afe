package create_car

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/fleet"
	"github.com/m04kA/SMC-RentalService/internal/service/fleet/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cars - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateCar(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrInvalidInput):
			h.logger.Warn("POST /cars - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /cars - Failed to create car: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cars - Car created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
