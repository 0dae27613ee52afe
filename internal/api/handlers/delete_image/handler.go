package delete_image

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/fleet"
)

const (
	msgInvalidImageID = "некорректный идентификатор изображения"
	msgImageNotFound  = "изображение не найдено"
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

// Handle DELETE /api/v1/gallery/{imageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "imageId")
	if err != nil {
		h.logger.Warn("DELETE /gallery/{imageId} - Invalid image id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidImageID)
		return
	}

	if err := h.service.DeleteImage(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, fleet.ErrImageNotFound):
			h.logger.Warn("DELETE /gallery/{imageId} - Image not found: id=%d", id)
			handlers.RespondNotFound(w, msgImageNotFound)

		default:
			h.logger.Error("DELETE /gallery/{imageId} - Failed to delete image: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /gallery/{imageId} - Image deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
