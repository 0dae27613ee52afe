package update_car

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/fleet"
	"github.com/m04kA/SMC-RentalService/internal/service/fleet/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCarID       = "некорректный идентификатор автомобиля"
	msgCarNotFound        = "автомобиль не найден"
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

// Handle PUT /api/v1/cars/{carId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "carId")
	if err != nil {
		h.logger.Warn("PUT /cars/{carId} - Invalid car id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	var req models.UpdateCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /cars/{carId} - Invalid request body: id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateCar(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrCarNotFound):
			h.logger.Warn("PUT /cars/{carId} - Car not found: id=%d", id)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, fleet.ErrInvalidInput):
			h.logger.Warn("PUT /cars/{carId} - Validation failed: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /cars/{carId} - Failed to update car: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /cars/{carId} - Car updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
