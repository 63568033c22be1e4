package repository

import (
	"context"

	"missed-call-recovery/internal/model"
)

// Repository is the composed interface for the lead domain data store.
type Repository interface {
	LeadRepository
}

// LeadRepository defines all data access methods for the Lead entity.
type LeadRepository interface {
	CreateLead(ctx context.Context, opt CreateLeadOptions) (model.Lead, error)
	GetOneLead(ctx context.Context, opt GetOneLeadOptions) (model.Lead, error)
	ListLeads(ctx context.Context, opt ListLeadsOptions) ([]model.Lead, int, error)
	UpdateLead(ctx context.Context, opt UpdateLeadOptions) (model.Lead, error)
	DeleteLead(ctx context.Context, id string) error
}
