package model

import "time"

// Item is a single wishlist entry.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	Link      string    `json:"link"`
	Image     string    `json:"image"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Item statuses.
const (
	StatusWant     = "want"
	StatusBought   = "bought"
	StatusArchived = "archived"
	StatusReserved = "reserved"
)

// Currencies.
const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyRUB = "RUB"
)

// DefaultImage is the placeholder stored when no image is given.
const DefaultImage = "Image"

// Statuses lists all valid item statuses.
var Statuses = []string{StatusWant, StatusBought, StatusArchived, StatusReserved}

// Currencies lists all valid currencies.
var Currencies = []string{CurrencyUSD, CurrencyEUR, CurrencyRUB}

// ValidStatus reports whether status is one of the known statuses.
func ValidStatus(status string) bool {
	switch status {
	case StatusWant, StatusBought, StatusArchived, StatusReserved:
		return true
	}
	return false
}

// ValidCurrency reports whether currency is one of the known currencies.
func ValidCurrency(currency string) bool {
	switch currency {
	case CurrencyUSD, CurrencyEUR, CurrencyRUB:
		return true
	}
	return false
}

// NewItem holds the fields for creating an item. Price is a pointer so a
// missing price can be told apart from a free item.
type NewItem struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Currency string   `json:"currency"`
	Link     string   `json:"link"`
	Image    string   `json:"image"`
	Status   string   `json:"status"`
}

// ItemPatch holds a partial update. Nil fields are left untouched.
type ItemPatch struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Currency *string  `json:"currency"`
	Link     *string  `json:"link"`
	Image    *string  `json:"image"`
	Status   *string  `json:"status"`
}

// Apply merges the patch onto item, preserving its ID and CreatedAt.
func (p ItemPatch) Apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Currency != nil {
		item.Currency = *p.Currency
	}
	if p.Link != nil {
		item.Link = *p.Link
	}
	if p.Image != nil {
		item.Image = *p.Image
	}
	if p.Status != nil {
		item.Status = *p.Status
	}
}
