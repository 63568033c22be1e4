package usecase

import (
	"context"

	"missed-call-recovery/internal/lead"
	"missed-call-recovery/internal/lead/repository"
	"missed-call-recovery/internal/model"
)

// GetByPhone looks up the lead behind an inbound SMS sender.
func (uc *implUseCase) GetByPhone(ctx context.Context, phone string) (model.Lead, error) {
	found, err := uc.repo.GetOneLead(ctx, repository.GetOneLeadOptions{Phone: phone})
	if err != nil {
		return model.Lead{}, err
	}
	if found.ID == "" {
		return model.Lead{}, lead.ErrLeadNotFound
	}
	return found, nil
}

// Book confirms an appointment time for the lead. Any pending snooze
// reminder is cleared and the clarification flag is reset.
func (uc *implUseCase) Book(ctx context.Context, sc model.Scope, input lead.BookLeadInput) (model.Lead, error) {
	current, err := uc.repo.GetOneLead(ctx, repository.GetOneLeadOptions{ID: input.LeadID})
	if err != nil {
		return model.Lead{}, err
	}
	if current.ID == "" {
		return model.Lead{}, lead.ErrLeadNotFound
	}
	if current.OptedOut {
		return model.Lead{}, lead.ErrOptedOut
	}

	status := model.LeadStatusBooked
	awaiting := false
	updated, err := uc.repo.UpdateLead(ctx, repository.UpdateLeadOptions{
		ID:            input.LeadID,
		Status:        &status,
		ScheduledAt:   &input.ScheduledAt,
		ClearRemindAt: true,
		AwaitingTime:  &awaiting,
	})
	if err != nil {
		return model.Lead{}, err
	}

	uc.l.Infof(ctx, "lead booked: id=%s at=%s", updated.ID, input.ScheduledAt)
	return updated, nil
}

// Snooze defers the lead's reminder to a later instant.
func (uc *implUseCase) Snooze(ctx context.Context, sc model.Scope, input lead.SnoozeLeadInput) (model.Lead, error) {
	current, err := uc.repo.GetOneLead(ctx, repository.GetOneLeadOptions{ID: input.LeadID})
	if err != nil {
		return model.Lead{}, err
	}
	if current.ID == "" {
		return model.Lead{}, lead.ErrLeadNotFound
	}
	if current.OptedOut {
		return model.Lead{}, lead.ErrOptedOut
	}

	status := model.LeadStatusSnoozed
	awaiting := false
	updated, err := uc.repo.UpdateLead(ctx, repository.UpdateLeadOptions{
		ID:           input.LeadID,
		Status:       &status,
		RemindAt:     &input.RemindAt,
		AwaitingTime: &awaiting,
	})
	if err != nil {
		return model.Lead{}, err
	}

	uc.l.Infof(ctx, "lead snoozed: id=%s until=%s", updated.ID, input.RemindAt)
	return updated, nil
}

// RequestCallback flags the lead for a human call back.
func (uc *implUseCase) RequestCallback(ctx context.Context, sc model.Scope, id string) (model.Lead, error) {
	current, err := uc.repo.GetOneLead(ctx, repository.GetOneLeadOptions{ID: id})
	if err != nil {
		return model.Lead{}, err
	}
	if current.ID == "" {
		return model.Lead{}, lead.ErrLeadNotFound
	}
	if current.OptedOut {
		return model.Lead{}, lead.ErrOptedOut
	}

	status := model.LeadStatusContacted
	requested := true
	awaiting := false
	updated, err := uc.repo.UpdateLead(ctx, repository.UpdateLeadOptions{
		ID:                id,
		Status:            &status,
		CallbackRequested: &requested,
		AwaitingTime:      &awaiting,
	})
	if err != nil {
		return model.Lead{}, err
	}

	uc.l.Infof(ctx, "callback requested: id=%s", updated.ID)
	return updated, nil
}

// SetOptOut records a STOP or START keyword from the lead.
func (uc *implUseCase) SetOptOut(ctx context.Context, sc model.Scope, id string, optedOut bool) error {
	current, err := uc.repo.GetOneLead(ctx, repository.GetOneLeadOptions{ID: id})
	if err != nil {
		return err
	}
	if current.ID == "" {
		return lead.ErrLeadNotFound
	}

	opt := repository.UpdateLeadOptions{
		ID:       id,
		OptedOut: &optedOut,
	}
	if optedOut {
		status := model.LeadStatusOptedOut
		awaiting := false
		opt.Status = &status
		opt.AwaitingTime = &awaiting
		opt.ClearRemindAt = true
	}

	if _, err := uc.repo.UpdateLead(ctx, opt); err != nil {
		return err
	}

	uc.l.Infof(ctx, "lead opt-out set: id=%s opted_out=%t", id, optedOut)
	return nil
}

// SetAwaitingTime toggles the clarification flag so the next inbound
// message from this lead is read as a time reply.
func (uc *implUseCase) SetAwaitingTime(ctx context.Context, sc model.Scope, id string, awaiting bool) error {
	current, err := uc.repo.GetOneLead(ctx, repository.GetOneLeadOptions{ID: id})
	if err != nil {
		return err
	}
	if current.ID == "" {
		return lead.ErrLeadNotFound
	}

	_, err = uc.repo.UpdateLead(ctx, repository.UpdateLeadOptions{
		ID:           id,
		AwaitingTime: &awaiting,
	})
	return err
}
