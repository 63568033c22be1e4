package postgre

import (
	"fmt"
	"strings"

	repo "missed-call-recovery/internal/lead/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneLead.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneLeadOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Phone != "" {
		conditions = append(conditions, fmt.Sprintf("phone = $%d", idx))
		args = append(args, opt.Phone)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildCountQuery builds WHERE clause + args for counting Leads (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListLeadsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListLeads.
func (r *implRepository) buildListQuery(opt repo.ListLeadsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	// Filters
	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	// Sorting
	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	// Pagination
	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
		idx++
	}

	return strings.Join(parts, " "), args
}

// buildUpdateQuery builds the SET clause + args for UpdateLead from the
// non-nil option fields. updated_at is always touched.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateLeadOptions) (string, []any, error) {
	var sets []string
	var args []any
	idx := 1

	set := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if opt.Name != nil {
		set("name", *opt.Name)
	}
	if opt.Status != nil {
		set("status", *opt.Status)
	}
	if opt.ScheduledAt != nil {
		set("scheduled_at", *opt.ScheduledAt)
	}
	if opt.RemindAt != nil {
		set("remind_at", *opt.RemindAt)
	}
	if opt.ClearRemindAt {
		sets = append(sets, "remind_at = NULL")
	}
	if opt.CallbackRequested != nil {
		set("callback_requested", *opt.CallbackRequested)
	}
	if opt.OptedOut != nil {
		set("opted_out", *opt.OptedOut)
	}
	if opt.AwaitingTime != nil {
		set("awaiting_time", *opt.AwaitingTime)
	}

	if len(sets) == 0 {
		return "", nil, repo.ErrNothingToSet
	}

	sets = append(sets, "updated_at = NOW()")
	return strings.Join(sets, ", "), args, nil
}
