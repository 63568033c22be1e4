package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	repo "missed-call-recovery/internal/lead/repository"
	"missed-call-recovery/internal/model"
)

const leadColumns = `id, name, phone, source, status, scheduled_at, remind_at,
	callback_requested, opted_out, awaiting_time, created_at, updated_at`

func scanLead(row interface{ Scan(...any) error }) (model.Lead, error) {
	var lead model.Lead
	err := row.Scan(
		&lead.ID, &lead.Name, &lead.Phone, &lead.Source, &lead.Status,
		&lead.ScheduledAt, &lead.RemindAt,
		&lead.CallbackRequested, &lead.OptedOut, &lead.AwaitingTime,
		&lead.CreatedAt, &lead.UpdatedAt,
	)
	return lead, err
}

// CreateLead inserts a new Lead row and returns the created entity.
func (r *implRepository) CreateLead(ctx context.Context, opt repo.CreateLeadOptions) (model.Lead, error) {
	query := fmt.Sprintf(`
		INSERT INTO leads (id, name, phone, source, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'new', NOW(), NOW())
		RETURNING %s`, leadColumns)

	lead, err := scanLead(r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.Name, opt.Phone, opt.Source))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return model.Lead{}, repo.ErrDuplicatePhone
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateLead"), err)
		return model.Lead{}, repo.ErrFailedToInsert
	}
	return lead, nil
}

// GetOneLead retrieves a single Lead by the provided filters (AND condition).
// Returns zero-value Lead (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneLead(ctx context.Context, opt repo.GetOneLeadOptions) (model.Lead, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM leads WHERE %s LIMIT 1", leadColumns, mods)

	lead, err := scanLead(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Lead{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneLead"), err)
		return model.Lead{}, repo.ErrFailedToGet
	}
	return lead, nil
}

// ListLeads returns a paginated list of Leads and the total count.
func (r *implRepository) ListLeads(ctx context.Context, opt repo.ListLeadsOptions) ([]model.Lead, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM leads WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListLeads"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM leads %s", leadColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLeads"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var leads []model.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		leads = append(leads, lead)
	}
	return leads, total, nil
}

// UpdateLead applies a partial update by ID and returns the updated entity.
func (r *implRepository) UpdateLead(ctx context.Context, opt repo.UpdateLeadOptions) (model.Lead, error) {
	sets, args, err := r.buildUpdateQuery(opt)
	if err != nil {
		return model.Lead{}, err
	}
	query := fmt.Sprintf(
		"UPDATE leads SET %s WHERE id = $%d RETURNING %s",
		sets, len(args)+1, leadColumns,
	)
	args = append(args, opt.ID)

	lead, scanErr := scanLead(r.db.QueryRowContext(ctx, query, args...))
	if scanErr == sql.ErrNoRows {
		return model.Lead{}, nil
	}
	if scanErr != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateLead"), scanErr)
		return model.Lead{}, repo.ErrFailedToUpdate
	}
	return lead, nil
}

// DeleteLead removes a Lead by ID.
func (r *implRepository) DeleteLead(ctx context.Context, id string) error {
	const query = `DELETE FROM leads WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteLead"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
