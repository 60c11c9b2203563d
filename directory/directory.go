// Package directory implements the admin-side user listing: conjunctive
// filtering, stable sorting, and the farmer-to-employee assignment view.
// The whole user set is small, so everything works over an in-memory list
// fetched wholesale, recomputed on every call.
package directory

import (
	"sort"
	"strings"

	"cropconnect/models"
)

// Sort fields
const (
	SortByName      = "name"
	SortByRole      = "role"
	SortByCreatedAt = "createdAt"
)

// Filter narrows the user list. Empty fields match everything; populated
// fields are combined with AND. Search matches name or email,
// case-insensitive.
type Filter struct {
	Role   string
	Region string
	Search string
}

// Sort picks the field and direction of the ordering. Unknown fields fall
// back to creation time. Direction is "asc" or "desc".
type Sort struct {
	Field     string
	Direction string
}

// Apply filters and sorts a copy of the list, leaving the input untouched.
func Apply(users []models.User, f Filter, s Sort) []models.User {
	filtered := make([]models.User, 0, len(users))
	search := strings.ToLower(f.Search)

	for _, u := range users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Region != "" && u.Region != f.Region {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		filtered = append(filtered, u)
	}

	desc := s.Direction == "desc"
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		var less bool
		switch s.Field {
		case SortByName:
			less = a.Name < b.Name
		case SortByRole:
			less = a.Role < b.Role
		default:
			less = a.CreatedAt.Before(b.CreatedAt)
		}
		if desc {
			return !less && !equalOn(s.Field, a, b)
		}
		return less
	})

	return filtered
}

func equalOn(field string, a, b models.User) bool {
	switch field {
	case SortByName:
		return a.Name == b.Name
	case SortByRole:
		return a.Role == b.Role
	default:
		return a.CreatedAt.Equal(b.CreatedAt)
	}
}

// AssignedFarmers returns every farmer assigned to the given employee.
// Linear scan; the set is not maintained incrementally.
func AssignedFarmers(users []models.User, employeeID uint) []models.User {
	assigned := make([]models.User, 0)
	for _, u := range users {
		if u.Role == models.RoleFarmer && u.AssignedTo != nil && *u.AssignedTo == employeeID {
			assigned = append(assigned, u)
		}
	}
	return assigned
}
