package domain

import "time"

// StartRequest carries the fields needed to open a new entry. Activity,
// ProjectID and Category are normally resolved from the catalog first.
type StartRequest struct {
	Type            EntryType
	Activity        string
	ProjectID       string
	Category        string
	Comment         string
	ExternalComment string
}

// EntryUpdate is a partial edit of a completed entry. Nil fields are left
// unchanged.
type EntryUpdate struct {
	AdjustedDuration *time.Duration
	Comment          *string
}

// IsEmpty reports whether the update changes nothing.
func (u EntryUpdate) IsEmpty() bool {
	return u.AdjustedDuration == nil && u.Comment == nil
}
