// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is the closed set of notification kinds.
type Category string

const (
	CategorySystem    Category = "SYSTEM"
	CategoryBilling   Category = "BILLING"
	CategorySupport   Category = "SUPPORT"
	CategorySecurity  Category = "SECURITY"
	CategoryAccount   Category = "ACCOUNT"
	CategoryMarketing Category = "MARKETING"
)

// Categories lists every valid category.
var Categories = []Category{
	CategorySystem,
	CategoryBilling,
	CategorySupport,
	CategorySecurity,
	CategoryAccount,
	CategoryMarketing,
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// Notification represents a notification owned by a single user.
// Everything except Read is immutable once created.
type Notification struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the notification.
	OwnerID   uuid.UUID `json:"owner_id"`   // The ID of the user who owns this notification.
	Title     string    `json:"title"`      // Short headline.
	Content   string    `json:"content"`    // Body text.
	Category  Category  `json:"category"`   // Kind of notification.
	Read      bool      `json:"read"`       // Whether the owner has read it.
	ActionURL *string   `json:"action_url"` // Optional deep link.
	Version   int64     `json:"version"`    // Incremented by the store on every update.
	CreatedAt time.Time `json:"created_at"` // Timestamp used for newest-first ordering.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// Clone returns a copy that shares no pointers with n.
func (n *Notification) Clone() *Notification {
	if n == nil {
		return nil
	}

	cloned := *n
	if n.ActionURL != nil {
		actionURL := *n.ActionURL
		cloned.ActionURL = &actionURL
	}

	return &cloned
}

// NewerThan reports whether n sorts before other in newest-first order.
// Ties on CreatedAt are broken by ID so the order is total.
func (n *Notification) NewerThan(other *Notification) bool {
	if !n.CreatedAt.Equal(other.CreatedAt) {
		return n.CreatedAt.After(other.CreatedAt)
	}

	return n.ID.String() > other.ID.String()
}

// NotificationFilter narrows a notification listing. Nil fields are ignored.
type NotificationFilter struct {
	Category *Category `json:"category,omitempty"`
	Read     *bool     `json:"read,omitempty"`
}

// Page is a limit/offset window.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NotificationPage is one page of a listing plus the total matching rows.
type NotificationPage struct {
	Rows  []*Notification `json:"rows"`
	Total int64           `json:"total"`
}

// NotificationFields are the caller-provided fields of a new notification.
type NotificationFields struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Category  Category `json:"category"`
	ActionURL *string  `json:"action_url,omitempty"`
}

// BatchResult reports how many rows a batch mutation asked for and how many the store affected.
type BatchResult struct {
	Requested int `json:"requested"`
	Affected  int `json:"affected"`
}

// Mismatch reports whether the store affected fewer rows than requested.
func (r BatchResult) Mismatch() bool {
	return r.Affected < r.Requested
}
