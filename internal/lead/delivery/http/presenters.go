package http

import (
	"time"

	"missed-call-recovery/internal/lead"
	"missed-call-recovery/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name   string `json:"name"   binding:"max=255"`
	Phone  string `json:"phone"  binding:"required,min=7,max=20"`
	Source string `json:"source" binding:"max=64"`
}

func (r createReq) toInput() lead.CreateLeadInput {
	return lead.CreateLeadInput{
		Name:   r.Name,
		Phone:  r.Phone,
		Source: r.Source,
	}
}

// ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=new contacted booked snoozed opted_out"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() lead.ListLeadsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return lead.ListLeadsInput{
		Status: r.Status,
		Limit:  limit,
		Offset: offset,
	}
}

// ---

type updateReq struct {
	ID     string `json:"-"` // populated from URI param
	Name   string `json:"name"   binding:"omitempty,min=1,max=255"`
	Status string `json:"status" binding:"omitempty,oneof=new contacted booked snoozed opted_out"`
}

func (r updateReq) toInput() lead.UpdateLeadInput {
	return lead.UpdateLeadInput{
		ID:     r.ID,
		Name:   r.Name,
		Status: r.Status,
	}
}

// --- Response DTOs ---

type leadResp struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Phone             string     `json:"phone"`
	Source            string     `json:"source"`
	Status            string     `json:"status"`
	ScheduledAt       *time.Time `json:"scheduled_at,omitempty"`
	RemindAt          *time.Time `json:"remind_at,omitempty"`
	CallbackRequested bool       `json:"callback_requested"`
	OptedOut          bool       `json:"opted_out"`
	AwaitingTime      bool       `json:"awaiting_time"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func newLeadResp(l model.Lead) leadResp {
	return leadResp{
		ID:                l.ID,
		Name:              l.Name,
		Phone:             l.Phone,
		Source:            l.Source,
		Status:            string(l.Status),
		ScheduledAt:       l.ScheduledAt,
		RemindAt:          l.RemindAt,
		CallbackRequested: l.CallbackRequested,
		OptedOut:          l.OptedOut,
		AwaitingTime:      l.AwaitingTime,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

type createResp struct {
	Lead leadResp `json:"lead"`
}

func (h *handler) newCreateResp(out lead.CreateLeadOutput) createResp {
	return createResp{Lead: newLeadResp(out.Lead)}
}

type listResp struct {
	Leads  []leadResp `json:"leads"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out lead.ListLeadsOutput) listResp {
	leads := make([]leadResp, len(out.Leads))
	for i, l := range out.Leads {
		leads[i] = newLeadResp(l)
	}
	return listResp{
		Leads:  leads,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Lead leadResp `json:"lead"`
}

func (h *handler) newDetailResp(out lead.DetailLeadOutput) detailResp {
	return detailResp{Lead: newLeadResp(out.Lead)}
}

type updateResp struct {
	Lead leadResp `json:"lead"`
}

func (h *handler) newUpdateResp(out lead.UpdateLeadOutput) updateResp {
	return updateResp{Lead: newLeadResp(out.Lead)}
}
