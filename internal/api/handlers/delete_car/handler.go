package delete_car

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/fleet"
)

const (
	msgInvalidCarID = "некорректный идентификатор автомобиля"
	msgCarNotFound  = "автомобиль не найден"
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

// Handle DELETE /api/v1/cars/{carId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "carId")
	if err != nil {
		h.logger.Warn("DELETE /cars/{carId} - Invalid car id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	if err := h.service.DeleteCar(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, fleet.ErrCarNotFound):
			h.logger.Warn("DELETE /cars/{carId} - Car not found: id=%d", id)
			handlers.RespondNotFound(w, msgCarNotFound)

		default:
			h.logger.Error("DELETE /cars/{carId} - Failed to delete car: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cars/{carId} - Car deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
