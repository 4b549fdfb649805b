package store

import (
	"context"
	"fmt"

	"github.com/totokartonio/wishlist/internal/model"
)

func ptr(v float64) *float64 { return &v }

// seedItems are the demo items inserted on first run.
var seedItems = []model.NewItem{
	{
		Name:     "Sony WH-1000XM5 Headphones",
		Price:    ptr(350),
		Currency: model.CurrencyEUR,
		Link:     "https://www.amazon.de/dp/B09XS7JWHH",
	},
	{
		Name:     `MacBook Pro 16"`,
		Price:    ptr(2500),
		Currency: model.CurrencyUSD,
		Link:     "https://www.apple.com/macbook-pro",
	},
	{
		Name:     "Mechanical Keyboard",
		Price:    ptr(150),
		Currency: model.CurrencyUSD,
		Link:     "https://www.keychron.com",
		Status:   model.StatusBought,
	},
}

// Seed inserts the demo items if the store is empty.
func Seed(ctx context.Context, s Store) error {
	items, err := s.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("checking existing items: %w", err)
	}
	if len(items) > 0 {
		return nil
	}

	for _, fields := range seedItems {
		if _, err := s.CreateItem(ctx, fields); err != nil {
			return fmt.Errorf("seeding item %q: %w", fields.Name, err)
		}
	}
	return nil
}
