package model

import "time"

// CallEventSource identifies the platform that delivered a call event.
type CallEventSource string

const (
	SourceVoiceAI CallEventSource = "voice_ai"
	SourceManual  CallEventSource = "manual"
)

// CallEvent is a parsed voice-AI webhook event describing a phone call.
type CallEvent struct {
	Source     CallEventSource
	EventType  string // call_missed, call_ended
	CallID     string
	FromNumber string // caller (the future lead)
	ToNumber   string // business line that was called
	CallerName string // best-effort name from the voice agent transcript
	Duration   int    // seconds, 0 for missed calls
	Summary    string // voice agent call summary, may be empty
	ReceivedAt time.Time
}

// Answered reports whether the caller actually spoke to someone, in which
// case no recovery SMS is needed.
func (e CallEvent) Answered() bool {
	return e.EventType == "call_ended" && e.Duration > 0
}
