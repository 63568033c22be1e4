package repository

import (
	"time"

	"missed-call-recovery/internal/model"
)

// CreateLeadOptions holds parameters for inserting a new Lead.
type CreateLeadOptions struct {
	Name   string
	Phone  string
	Source string
}

// GetOneLeadOptions holds filter parameters for fetching a single Lead.
// All non-empty fields are applied as AND conditions.
type GetOneLeadOptions struct {
	ID    string
	Phone string
}

// ListLeadsOptions holds filter and pagination parameters for listing Leads.
type ListLeadsOptions struct {
	Status  string
	Limit   int
	Offset  int
	OrderBy string
}

// UpdateLeadOptions holds parameters for a partial Lead update. Nil
// pointer fields are left untouched.
type UpdateLeadOptions struct {
	ID                string
	Name              *string
	Status            *model.LeadStatus
	ScheduledAt       *time.Time
	RemindAt          *time.Time
	ClearRemindAt     bool // NULL out remind_at (e.g. when a booking lands)
	CallbackRequested *bool
	OptedOut          *bool
	AwaitingTime      *bool
}
