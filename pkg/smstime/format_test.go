package smstime_test

import (
	"strings"
	"testing"
	"time"

	"missed-call-recovery/pkg/smstime"
)

func TestFormatBookingConfirmation(t *testing.T) {
	when := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	got := smstime.FormatBookingConfirmation("John Smith", when)

	if !strings.Contains(got, "John Smith") {
		t.Errorf("confirmation missing customer name: %q", got)
	}
	if !strings.Contains(got, "calendar") {
		t.Errorf("confirmation missing calendar placement phrase: %q", got)
	}
	if !strings.Contains(got, "Monday, Mar 10 at 2:00 PM") {
		t.Errorf("confirmation missing formatted date: %q", got)
	}
}

func TestFormatSnoozeConfirmation(t *testing.T) {
	until := time.Date(2025, 3, 4, 18, 30, 0, 0, time.UTC)
	got := smstime.FormatSnoozeConfirmation("John Smith", until)

	if !strings.Contains(got, "Snoozed: John Smith") {
		t.Errorf("confirmation missing snooze prefix: %q", got)
	}
	if !strings.Contains(got, "Reminder:") {
		t.Errorf("confirmation missing reminder wording: %q", got)
	}
	if !strings.Contains(got, "Tuesday, Mar 4 at 6:30 PM") {
		t.Errorf("confirmation missing formatted date: %q", got)
	}
}
