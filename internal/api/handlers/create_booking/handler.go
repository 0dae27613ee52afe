package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты, ожидается YYYY-MM-DD HH:MM"
	msgInvalidPeriod      = "некорректный период аренды"
	msgPickupInPast       = "дата получения уже прошла"
	msgCarNotFound        = "автомобиль не найден"
	msgPackageNotFound    = "пакет не найден"
	msgAddonNotFound      = "дополнение не найдено"
	msgPriceNotSet        = "в каталоге нет цены для категории автомобиля"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrCarNotFound):
			h.logger.Warn("POST /bookings - Car not found: car_id=%d", req.CarID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, createBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings - Package not found: package_id=%d", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createBooking.ErrAddonNotFound):
			h.logger.Warn("POST /bookings - Addon not found: addon_ids=%v", req.AddOnIDs)
			handlers.RespondNotFound(w, msgAddonNotFound)

		case errors.Is(err, createBooking.ErrInvalidPeriod):
			h.logger.Warn("POST /bookings - Invalid period: car_id=%d", req.CarID)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, createBooking.ErrPickupInPast):
			h.logger.Warn("POST /bookings - Pickup in past: car_id=%d, pickup=%s", req.CarID, req.PickupAt)
			handlers.RespondBadRequest(w, msgPickupInPast)

		case errors.Is(err, createBooking.ErrPriceNotSet):
			h.logger.Warn("POST /bookings - Price not set: car_id=%d, package_id=%d", req.CarID, req.PackageID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPriceNotSet)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: car_id=%d, error=%v", req.CarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, total=%s %s",
		result.ID, result.TotalPrice.String(), result.Currency)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
