package lead

import (
	"context"

	"missed-call-recovery/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Dashboard CRUD
	Create(ctx context.Context, sc model.Scope, input CreateLeadInput) (CreateLeadOutput, error)
	List(ctx context.Context, sc model.Scope, input ListLeadsInput) (ListLeadsOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailLeadOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateLeadInput) (UpdateLeadOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Reply-driven mutations
	GetByPhone(ctx context.Context, phone string) (model.Lead, error)
	Book(ctx context.Context, sc model.Scope, input BookLeadInput) (model.Lead, error)
	Snooze(ctx context.Context, sc model.Scope, input SnoozeLeadInput) (model.Lead, error)
	RequestCallback(ctx context.Context, sc model.Scope, id string) (model.Lead, error)
	SetOptOut(ctx context.Context, sc model.Scope, id string, optedOut bool) error
	SetAwaitingTime(ctx context.Context, sc model.Scope, id string, awaiting bool) error
}
