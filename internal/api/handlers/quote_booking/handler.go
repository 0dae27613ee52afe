package quote_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	quoteBooking "github.com/m04kA/SMC-RentalService/internal/usecase/quote_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты, ожидается YYYY-MM-DD HH:MM"
	msgInvalidPeriod      = "некорректный период аренды"
	msgCarNotFound        = "автомобиль не найден"
	msgPackageNotFound    = "пакет не найден"
	msgAddonNotFound      = "дополнение не найдено"
	msgPriceNotSet        = "в каталоге нет цены для категории автомобиля"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/quote - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrCarNotFound):
			h.logger.Warn("POST /bookings/quote - Car not found: car_id=%d", req.CarID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, quoteBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings/quote - Package not found: package_id=%d", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, quoteBooking.ErrAddonNotFound):
			h.logger.Warn("POST /bookings/quote - Addon not found: addon_ids=%v", req.AddOnIDs)
			handlers.RespondNotFound(w, msgAddonNotFound)

		case errors.Is(err, quoteBooking.ErrInvalidPeriod):
			h.logger.Warn("POST /bookings/quote - Invalid period: car_id=%d", req.CarID)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, quoteBooking.ErrPriceNotSet):
			h.logger.Warn("POST /bookings/quote - Price not set: car_id=%d, package_id=%d", req.CarID, req.PackageID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPriceNotSet)

		case errors.Is(err, quoteBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/quote - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/quote - Failed to quote booking: car_id=%d, error=%v", req.CarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/quote - Quote computed: car_id=%d, days=%d, total=%s",
		req.CarID, result.NumberOfDays, result.TotalPrice.String())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
