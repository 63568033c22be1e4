package smstime

import (
	"fmt"
	"time"
)

// Layout used in outbound confirmation texts, e.g. "Tuesday, Mar 3 at 2:00 PM".
const confirmLayout = "Monday, Jan 2 at 3:04 PM"

// FormatBookingConfirmation renders the outbound text confirming a booked
// appointment and its placement on the calendar.
func FormatBookingConfirmation(name string, dateTime time.Time) string {
	return fmt.Sprintf(
		"Thanks %s! You're booked for %s. We've added it to the calendar - see you then!",
		name, dateTime.Format(confirmLayout),
	)
}

// FormatSnoozeConfirmation renders the outbound text confirming a snoozed
// reminder. The "Reminder" wording is what distinguishes it from a booking
// confirmation on the customer's phone.
func FormatSnoozeConfirmation(name string, until time.Time) string {
	return fmt.Sprintf(
		"Snoozed: %s. Reminder: %s.",
		name, until.Format(confirmLayout),
	)
}
