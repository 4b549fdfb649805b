// Package client holds the client-side view of the wishlist: an optimistic
// in-memory item list, transient form drafts, and an HTTP client for the API.
package client

import "github.com/totokartonio/wishlist/internal/model"

// State is the in-memory item list driven by user actions. Mutations are
// local, synchronous, and optimistic; the caller fires the matching API call
// and trusts success.
type State struct {
	items     []model.Item
	editingID string
}

// NewState creates a state holding the given items.
func NewState(items []model.Item) *State {
	return &State{items: items}
}

// Items returns the current item list.
func (s *State) Items() []model.Item {
	return s.items
}

// Add appends an item to the list.
func (s *State) Add(item model.Item) {
	s.items = append(s.items, item)
}

// Update replaces the item with a matching ID and closes any open edit form.
func (s *State) Update(item model.Item) {
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			break
		}
	}
	s.editingID = ""
}

// Delete removes the item with the given ID.
func (s *State) Delete(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
}

// ChangeStatus replaces just the status of the item with the given ID.
func (s *State) ChangeStatus(id, status string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			break
		}
	}
}

// StartEdit marks an item as being edited.
func (s *State) StartEdit(id string) {
	s.editingID = id
}

// EditingItem returns the item being edited, or nil when no edit is open.
func (s *State) EditingItem() *model.Item {
	if s.editingID == "" {
		return nil
	}
	for i := range s.items {
		if s.items[i].ID == s.editingID {
			return &s.items[i]
		}
	}
	return nil
}
