package client

import (
	"strconv"

	"github.com/totokartonio/wishlist/internal/model"
)

// fieldsRequiredMessage is the single generic error shown for any local
// validation failure.
const fieldsRequiredMessage = "Please fill in all fields"

// Form holds transient draft fields for the add/edit flow, separate from
// committed items.
type Form struct {
	Name     string
	Price    string
	Currency string
	Link     string

	err string
}

// Validate checks that all required drafts are non-empty and that the price
// parses as a non-negative number. It records a single generic error and
// reports whether the drafts are ready to commit.
func (f *Form) Validate() bool {
	if f.Name == "" || f.Price == "" || f.Currency == "" || f.Link == "" {
		f.err = fieldsRequiredMessage
		return false
	}
	price, err := strconv.ParseFloat(f.Price, 64)
	if err != nil || price < 0 {
		f.err = fieldsRequiredMessage
		return false
	}
	f.err = ""
	return true
}

// Err returns the current validation error, if any.
func (f *Form) Err() string {
	return f.err
}

// Blur clears the validation error on the next field interaction.
func (f *Form) Blur() {
	f.err = ""
}

// Reset clears all drafts and the error.
func (f *Form) Reset() {
	*f = Form{}
}

// Fields builds the commit payload from validated drafts. Call Validate
// first; Fields assumes the price parses.
func (f *Form) Fields() model.NewItem {
	price, _ := strconv.ParseFloat(f.Price, 64)
	return model.NewItem{
		Name:     f.Name,
		Price:    &price,
		Currency: f.Currency,
		Link:     f.Link,
	}
}
