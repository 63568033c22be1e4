package usecase

import (
	"context"
	"errors"
	"strings"

	"missed-call-recovery/internal/lead"
	"missed-call-recovery/internal/lead/repository"
	"missed-call-recovery/internal/model"
)

// Create registers a new lead, typically from a missed-call event.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input lead.CreateLeadInput) (lead.CreateLeadOutput, error) {
	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return lead.CreateLeadOutput{}, lead.ErrInvalidPhone
	}

	existing, err := uc.repo.GetOneLead(ctx, repository.GetOneLeadOptions{Phone: phone})
	if err != nil {
		return lead.CreateLeadOutput{}, err
	}
	if existing.ID != "" {
		return lead.CreateLeadOutput{}, lead.ErrDuplicatePhone
	}

	created, err := uc.repo.CreateLead(ctx, repository.CreateLeadOptions{
		Name:   input.Name,
		Phone:  phone,
		Source: input.Source,
	})
	if err != nil {
		// Race between the existence check and the insert.
		if errors.Is(err, repository.ErrDuplicatePhone) {
			return lead.CreateLeadOutput{}, lead.ErrDuplicatePhone
		}
		return lead.CreateLeadOutput{}, err
	}

	uc.l.Infof(ctx, "lead created: id=%s source=%s", created.ID, created.Source)
	return lead.CreateLeadOutput{Lead: created}, nil
}

// List returns a paginated page of leads for the dashboard.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input lead.ListLeadsInput) (lead.ListLeadsOutput, error) {
	leads, total, err := uc.repo.ListLeads(ctx, repository.ListLeadsOptions{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return lead.ListLeadsOutput{}, err
	}
	return lead.ListLeadsOutput{
		Leads:  leads,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Detail returns a single lead by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (lead.DetailLeadOutput, error) {
	found, err := uc.repo.GetOneLead(ctx, repository.GetOneLeadOptions{ID: id})
	if err != nil {
		return lead.DetailLeadOutput{}, err
	}
	if found.ID == "" {
		return lead.DetailLeadOutput{}, lead.ErrLeadNotFound
	}
	return lead.DetailLeadOutput{Lead: found}, nil
}

// Update applies a partial edit from the dashboard.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input lead.UpdateLeadInput) (lead.UpdateLeadOutput, error) {
	opt := repository.UpdateLeadOptions{ID: input.ID}
	if input.Name != "" {
		opt.Name = &input.Name
	}
	if input.Status != "" {
		status := model.LeadStatus(input.Status)
		opt.Status = &status
	}

	updated, err := uc.repo.UpdateLead(ctx, opt)
	if err != nil {
		return lead.UpdateLeadOutput{}, err
	}
	if updated.ID == "" {
		return lead.UpdateLeadOutput{}, lead.ErrLeadNotFound
	}
	return lead.UpdateLeadOutput{Lead: updated}, nil
}

// Delete removes a lead permanently.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	found, err := uc.repo.GetOneLead(ctx, repository.GetOneLeadOptions{ID: id})
	if err != nil {
		return err
	}
	if found.ID == "" {
		return lead.ErrLeadNotFound
	}
	return uc.repo.DeleteLead(ctx, id)
}
