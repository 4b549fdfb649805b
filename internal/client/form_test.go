package client

import "testing"

func TestFormValidateEmptyName(t *testing.T) {
	f := &Form{Price: "100", Currency: "USD", Link: "https://amazon.de"}

	if f.Validate() {
		t.Fatal("expected validation to fail with empty name")
	}
	if f.Err() == "" {
		t.Fatal("expected a validation error to be shown")
	}

	// Focusing and blurring a field clears the error.
	f.Blur()
	if f.Err() != "" {
		t.Errorf("expected error cleared after blur, got %q", f.Err())
	}
}

func TestFormValidateOK(t *testing.T) {
	f := &Form{Name: "Headphones", Price: "100", Currency: "USD", Link: "https://amazon.de"}

	if !f.Validate() {
		t.Fatalf("expected validation to pass, got error %q", f.Err())
	}

	fields := f.Fields()
	if fields.Name != "Headphones" || fields.Currency != "USD" || fields.Link != "https://amazon.de" {
		t.Errorf("unexpected fields %+v", fields)
	}
	if fields.Price == nil || *fields.Price != 100 {
		t.Errorf("expected price 100, got %v", fields.Price)
	}
}

func TestFormValidateBadPrice(t *testing.T) {
	for _, price := range []string{"abc", "-5"} {
		f := &Form{Name: "X", Price: price, Currency: "USD", Link: "https://a"}
		if f.Validate() {
			t.Errorf("expected validation to fail for price %q", price)
		}
	}
}

func TestFormReset(t *testing.T) {
	f := &Form{Name: "X", Price: "1", Currency: "USD", Link: "https://a"}
	f.Validate()
	f.Reset()

	if f.Name != "" || f.Price != "" || f.Currency != "" || f.Link != "" || f.Err() != "" {
		t.Errorf("expected empty form after reset, got %+v", f)
	}
}
