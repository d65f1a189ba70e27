package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateID is returned when two customers share an id
var ErrDuplicateID = errors.New("duplicate customer id")

// Customer is a single row of the customer list
type Customer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
}

// MatchesName reports whether the customer name contains term.
// Matching is case-sensitive; an empty term matches every customer.
func (c Customer) MatchesName(term string) bool {
	return strings.Contains(c.Name, term)
}

// GetDisplayName returns the name, or placeholder when the name is blank
func (c Customer) GetDisplayName(placeholder string) string {
	if strings.TrimSpace(c.Name) == "" {
		return placeholder
	}
	return c.Name
}

// NextID returns the id the next added customer should get: max existing id + 1,
// or 1 for an empty list.
func NextID(customers []Customer) int {
	if len(customers) == 0 {
		return 1
	}
	maxID := customers[0].ID
	for _, c := range customers[1:] {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return maxID + 1
}

// IndexOf returns the position of the customer with the given id, or -1
func IndexOf(customers []Customer, id int) int {
	for i, c := range customers {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// ValidateIDs checks that every id in customers is unique
func ValidateIDs(customers []Customer) error {
	seen := make(map[int]struct{}, len(customers))
	for i, c := range customers {
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("%w %d at position %d", ErrDuplicateID, c.ID, i)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}
