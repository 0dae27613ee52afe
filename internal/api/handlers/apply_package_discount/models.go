package apply_package_discount

// ApplyDiscountRequest HTTP request model
// Доля скидки от 0 до 1 включительно, строкой для точного парсинга
type ApplyDiscountRequest struct {
	DiscountFraction string `json:"discountFraction"`
}
