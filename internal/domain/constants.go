package domain

// Business validation constants
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
	MaxLocationLength    = 200
	MaxPerksPerPackage   = 20
)

// Time format constants
const (
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

// Currency displayed to operators and printed on receipts
const CurrencyCode = "AED"

// ValidStatuses список допустимых статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusConfirmed,
	StatusActive,
	StatusCompleted,
	StatusCancelled,
}

// IsValidStatus проверяет, что статус входит в допустимый набор
func IsValidStatus(s BookingStatus) bool {
	for _, status := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}
