package model

import "time"

// LeadStatus is the lifecycle state of a recovered lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"       // missed call ingested, recovery SMS sent
	LeadStatusContacted LeadStatus = "contacted" // lead replied at least once
	LeadStatusBooked    LeadStatus = "booked"    // appointment scheduled
	LeadStatusSnoozed   LeadStatus = "snoozed"   // reminder deferred by the lead
	LeadStatusOptedOut  LeadStatus = "opted_out" // STOP received
)

// Lead is a caller whose missed call the service is trying to recover.
type Lead struct {
	ID                string
	Name              string
	Phone             string // E.164, unique per lead
	Source            string // which webhook created the lead (e.g. "voice_ai")
	Status            LeadStatus
	ScheduledAt       *time.Time // booked appointment, nil until booked
	RemindAt          *time.Time // next reminder instant, nil when none pending
	CallbackRequested bool
	OptedOut          bool
	AwaitingTime      bool // a clarification prompt is outstanding
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
