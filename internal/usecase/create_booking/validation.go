package create_booking

import (
	"fmt"
	"strings"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Customer.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Customer.Email) == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}

	if !strings.Contains(req.Customer.Email, "@") {
		return fmt.Errorf("%w: invalid customer email", ErrInvalidInput)
	}

	if req.CarID <= 0 {
		return fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}

	if req.PackageID <= 0 {
		return fmt.Errorf("%w: packageID must be positive", ErrInvalidInput)
	}

	for _, id := range req.AddOnIDs {
		if id <= 0 {
			return fmt.Errorf("%w: addOnIDs must be positive", ErrInvalidInput)
		}
	}

	if req.PickupAt.IsZero() {
		return fmt.Errorf("%w: pickupAt is required", ErrInvalidInput)
	}

	if req.DropoffAt.IsZero() {
		return fmt.Errorf("%w: dropoffAt is required", ErrInvalidInput)
	}

	if req.PickupLocation == "" {
		return fmt.Errorf("%w: pickupLocation is required", ErrInvalidInput)
	}

	if req.DropoffLocation == "" {
		return fmt.Errorf("%w: dropoffLocation is required", ErrInvalidInput)
	}

	return nil
}

// validatePickupNotInPast проверяет, что дата получения ещё не прошла
// Сравнение по дням: бронирование на сегодня допустимо
func validatePickupNotInPast(pickupAt, now time.Time) error {
	pickupDay := time.Date(pickupAt.Year(), pickupAt.Month(), pickupAt.Day(), 0, 0, 0, 0, pickupAt.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if pickupDay.Before(today) {
		return ErrPickupInPast
	}

	return nil
}
