package smstime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	snoozeHoursPattern    = regexp.MustCompile(`^(\d+)\s*(?:H|HR|HRS|HOUR|HOURS)?$`)
	snoozeMinutesPattern  = regexp.MustCompile(`^(\d+)\s*(?:M|MIN|MINS|MINUTE|MINUTES)$`)
	snoozeTomorrowPattern = regexp.MustCompile(`^(?:TOMORROW|TMRW|TMR)(?:\s+(AM|PM))?$`)
)

// ParseSnooze converts a free-text snooze phrase into an absolute "until"
// instant plus a human label for the chosen quantity and unit. A bare
// integer is read as hours; anything longer than a day is rejected so the
// TOMORROW form stays the only way to defer past 24 hours.
func (p *Parser) ParseSnooze(text string, now time.Time) SnoozeResult {
	input := strings.ToUpper(strings.TrimSpace(text))
	if input == "" {
		return snoozeErr(ErrMsgSnoozeUnrecognized)
	}

	now = now.In(p.location)

	if m := snoozeTomorrowPattern.FindStringSubmatch(input); m != nil {
		hour, label := defaultHour, "Tomorrow at 9 AM"
		if m[1] == "PM" {
			hour, label = afternoonHour, "Tomorrow at 2 PM"
		}
		return SnoozeResult{
			Success:     true,
			Until:       p.at(now, 1, hour, 0),
			DisplayText: label,
		}
	}

	if m := snoozeMinutesPattern.FindStringSubmatch(input); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		if minutes < minSnoozeMinutes {
			return snoozeErr(ErrMsgSnoozeTooShort)
		}
		if minutes > maxSnoozeHours*60 {
			return snoozeErr(ErrMsgSnoozeTooLong)
		}
		return SnoozeResult{
			Success:     true,
			Until:       now.Add(time.Duration(minutes) * time.Minute),
			DisplayText: pluralize(minutes, "minute"),
		}
	}

	if m := snoozeHoursPattern.FindStringSubmatch(input); m != nil {
		hours, _ := strconv.Atoi(m[1])
		if hours < 1 {
			return snoozeErr(ErrMsgSnoozeTooShort)
		}
		if hours > maxSnoozeHours {
			return snoozeErr(ErrMsgSnoozeTooLong)
		}
		return SnoozeResult{
			Success:     true,
			Until:       now.Add(time.Duration(hours) * time.Hour),
			DisplayText: pluralize(hours, "hour"),
		}
	}

	return snoozeErr(ErrMsgSnoozeUnrecognized)
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
