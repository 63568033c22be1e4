package smstime

import "time"

// ParseResult is the outcome of interpreting a free-text time phrase.
// Exactly one of the two shapes is populated: a resolved DateTime on
// success, or a clarification prompt to send back to the customer.
type ParseResult struct {
	Success             bool
	DateTime            time.Time
	NeedsClarification  bool
	ClarificationPrompt string
}

// SnoozeResult is the outcome of interpreting a snooze phrase.
// DisplayText is derived from the parsed quantity and unit ("3 hours",
// "Tomorrow at 9 AM"), not reformatted from the absolute instant.
type SnoozeResult struct {
	Success     bool
	Until       time.Time
	DisplayText string
	Error       string
}

// Clarification prompts. The bare-TODAY prompt is the only
// category-specific one; everything else unrecognized gets the generic
// re-prompt.
const (
	PromptWhatTimeToday = "What time today? Reply with a time like 2PM."
	PromptUnrecognized  = "Sorry, I didn't catch that. Reply with a time like TUE 2PM, TOMORROW, or ASAP."
)

// Snooze rejection messages. Callers branch on Success and forward these
// to the customer as-is, so the three cases stay distinct.
const (
	ErrMsgSnoozeTooShort     = "That's too soon - the minimum snooze is 10 minutes. Try 30M or 1H."
	ErrMsgSnoozeTooLong      = "That's longer than a day. Reply TOMORROW instead, or book a time like TUE 2PM."
	ErrMsgSnoozeUnrecognized = "Sorry, I didn't catch that. Reply with something like 3H, 30M, or TOMORROW."
)

// Default hour injected when a phrase names a day but no time.
const (
	defaultHour   = 9
	afternoonHour = 14
	eveningHour   = 17
)

// Snooze bounds.
const (
	minSnoozeMinutes = 10
	maxSnoozeHours   = 24
)

func clarify(prompt string) ParseResult {
	return ParseResult{NeedsClarification: true, ClarificationPrompt: prompt}
}

func resolved(t time.Time) ParseResult {
	return ParseResult{Success: true, DateTime: t}
}

func snoozeErr(msg string) SnoozeResult {
	return SnoozeResult{Error: msg}
}
