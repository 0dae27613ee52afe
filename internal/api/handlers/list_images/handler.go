package list_images

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

// Handle GET /api/v1/gallery
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListImages(r.Context())
	if err != nil {
		h.logger.Error("GET /gallery - Failed to list images: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
