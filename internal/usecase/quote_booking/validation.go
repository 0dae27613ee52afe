package quote_booking

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
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

	return nil
}
