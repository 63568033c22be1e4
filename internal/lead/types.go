package lead

import (
	"time"

	"missed-call-recovery/internal/model"
)

// --- UseCase Inputs ---

type CreateLeadInput struct {
	Name   string
	Phone  string
	Source string
}

type ListLeadsInput struct {
	Status string
	Limit  int
	Offset int
}

type UpdateLeadInput struct {
	ID     string
	Name   string
	Status string
}

// BookLeadInput schedules a confirmed appointment for a lead.
type BookLeadInput struct {
	LeadID      string
	ScheduledAt time.Time
}

// SnoozeLeadInput defers the lead's reminder.
type SnoozeLeadInput struct {
	LeadID   string
	RemindAt time.Time
}

// --- UseCase Outputs ---

type CreateLeadOutput struct {
	Lead model.Lead
}

type ListLeadsOutput struct {
	Leads  []model.Lead
	Total  int
	Limit  int
	Offset int
}

type DetailLeadOutput struct {
	Lead model.Lead
}

type UpdateLeadOutput struct {
	Lead model.Lead
}
