package domain

import "time"

// AddOn optional extra service/item attached to a booking
// Priced per vehicle category; charged once or per rental day (PerDay)
type AddOn struct {
	ID          int64
	Name        string
	Description string
	Type        string
	PerDay      bool
	Prices      CategoryPrices

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AddOnSnapshot copy of an add-on embedded into a booking at creation time
type AddOnSnapshot struct {
	AddOnID int64          `json:"addonId"`
	Name    string         `json:"name"`
	PerDay  bool           `json:"perDay"`
	Prices  CategoryPrices `json:"prices"`
}

// Snapshot возвращает копию дополнения для денормализации в бронировании
func (a *AddOn) Snapshot() AddOnSnapshot {
	return AddOnSnapshot{
		AddOnID: a.ID,
		Name:    a.Name,
		PerDay:  a.PerDay,
		Prices:  a.Prices.Copy(),
	}
}
