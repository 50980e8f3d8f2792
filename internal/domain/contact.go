package domain

import (
	"time"
)

// Contact status constants.
const (
	ContactStatusLead     = "Lead"
	ContactStatusProspect = "Prospect"
	ContactStatusCustomer = "Customer"
	ContactStatusInactive = "Inactive"
)

// Contact is a CRM contact record.
type Contact struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Company       string     `json:"company"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes"`
	LastContacted *time.Time `json:"lastContacted,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// ValidContactStatuses returns the set of allowed contact statuses.
func ValidContactStatuses() []string {
	return []string{ContactStatusLead, ContactStatusProspect, ContactStatusCustomer, ContactStatusInactive}
}

// IsValidContactStatus reports whether the given status is in the allowed set.
func IsValidContactStatus(status string) bool {
	for _, s := range ValidContactStatuses() {
		if s == status {
			return true
		}
	}
	return false
}
