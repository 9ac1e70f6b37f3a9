package model

import "time"

// Variant is the toast style. Destructive marks a rejected user action.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient toast shown to the operator.
type Notification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsError reports whether the notification signals a rejected action.
func (n Notification) IsError() bool {
	return n.Variant == VariantDestructive
}
