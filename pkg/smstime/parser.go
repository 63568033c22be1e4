package smstime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser interprets free-text SMS phrases against an explicit reference
// instant. It never reads the real clock, so identical (text, now) inputs
// always produce identical results.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string,
// e.g. "America/Chicago". Resolved instants carry this location.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// timeMatcher attempts one phrase category. It reports false when the
// input does not belong to its category, letting the next matcher try.
type timeMatcher func(p *Parser, text string, now time.Time) (ParseResult, bool)

// Matchers are tried in a fixed priority order; the first category that
// claims the input wins. Keyword categories come before the bare
// clock-reading so phrases like "TOMORROW 2PM" are not split.
var timeMatchers = []timeMatcher{
	(*Parser).matchRelativeDay,
	(*Parser).matchWeekday,
	(*Parser).matchCalendarDate,
	(*Parser).matchClockOnly,
	(*Parser).matchPreset,
}

// ParseTime converts a free-text phrase plus a reference instant into an
// absolute date-time, or a clarification prompt when the phrase cannot be
// resolved on its own. Every input maps to exactly one result; malformed
// text is an expected outcome, never an error or panic.
func (p *Parser) ParseTime(text string, now time.Time) ParseResult {
	input := strings.ToUpper(strings.TrimSpace(text))
	if input == "" {
		return clarify(PromptUnrecognized)
	}

	now = now.In(p.location)
	for _, match := range timeMatchers {
		if res, ok := match(p, input, now); ok {
			return res
		}
	}
	return clarify(PromptUnrecognized)
}

// matchRelativeDay handles TODAY and TOMORROW (aliases TMRW, TMR), with an
// optional trailing time-of-day. A bare TODAY is too ambiguous to schedule
// and asks for the time instead.
func (p *Parser) matchRelativeDay(input string, now time.Time) (ParseResult, bool) {
	keyword, rest := splitKeyword(input)

	switch keyword {
	case "TODAY":
		if rest == "" {
			return clarify(PromptWhatTimeToday), true
		}
		hour, minute, ok := parseClock(rest)
		if !ok {
			return ParseResult{}, false
		}
		return resolved(p.at(now, 0, hour, minute)), true

	case "TOMORROW", "TMRW", "TMR":
		if rest == "" {
			return resolved(p.at(now, 1, defaultHour, 0)), true
		}
		hour, minute, ok := parseClock(rest)
		if !ok {
			return ParseResult{}, false
		}
		return resolved(p.at(now, 1, hour, minute)), true
	}
	return ParseResult{}, false
}

var weekdays = map[string]time.Weekday{
	"MON": time.Monday, "MONDAY": time.Monday,
	"TUE": time.Tuesday, "TUESDAY": time.Tuesday,
	"WED": time.Wednesday, "WEDNESDAY": time.Wednesday,
	"THU": time.Thursday, "THURSDAY": time.Thursday,
	"FRI": time.Friday, "FRIDAY": time.Friday,
	"SAT": time.Saturday, "SATURDAY": time.Saturday,
	"SUN": time.Sunday, "SUNDAY": time.Sunday,
}

// matchWeekday handles MON..SUN and full weekday names, optionally
// prefixed with NEXT. Resolution is always the nearest occurrence
// strictly after the reference day: TUE on a Tuesday means a week out.
// The NEXT prefix states that intent explicitly but changes nothing.
func (p *Parser) matchWeekday(input string, now time.Time) (ParseResult, bool) {
	keyword, rest := splitKeyword(input)
	if keyword == "NEXT" {
		keyword, rest = splitKeyword(rest)
	}

	target, ok := weekdays[keyword]
	if !ok {
		return ParseResult{}, false
	}

	daysAhead := int(target - now.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}

	hour, minute := defaultHour, 0
	if rest != "" {
		if hour, minute, ok = parseClock(rest); !ok {
			return ParseResult{}, false
		}
	}
	return resolved(p.at(now, daysAhead, hour, minute)), true
}

var calendarDatePattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})(?:\s+(.+))?$`)

// matchCalendarDate handles explicit MM/DD and MM-DD dates. The year is
// the current one; a date that has already passed rolls forward to next
// year rather than booking into the past.
func (p *Parser) matchCalendarDate(input string, now time.Time) (ParseResult, bool) {
	m := calendarDatePattern.FindStringSubmatch(input)
	if m == nil {
		return ParseResult{}, false
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ParseResult{}, false
	}

	hour, minute := defaultHour, 0
	if m[3] != "" {
		var ok bool
		if hour, minute, ok = parseClock(m[3]); !ok {
			return ParseResult{}, false
		}
	}

	candidate := time.Date(now.Year(), time.Month(month), day, hour, minute, 0, 0, p.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, p.location)
	if candidate.Before(today) {
		candidate = candidate.AddDate(1, 0, 0)
	}
	return resolved(candidate), true
}

// matchClockOnly handles a bare time-of-day: the resolved date is the
// reference day, interpreted as "today at that time". Unlike bare TODAY
// this needs no clarification because the time is explicit.
func (p *Parser) matchClockOnly(input string, now time.Time) (ParseResult, bool) {
	hour, minute, ok := parseClock(input)
	if !ok {
		return ParseResult{}, false
	}
	return resolved(p.at(now, 0, hour, minute)), true
}

// matchPreset handles the fixed keywords ASAP, NOW, MORNING, AFTERNOON
// and EVENING.
func (p *Parser) matchPreset(input string, now time.Time) (ParseResult, bool) {
	switch input {
	case "ASAP":
		return resolved(now.Add(time.Hour)), true
	case "NOW":
		return resolved(now), true
	case "MORNING":
		return resolved(p.at(now, 0, defaultHour, 0)), true
	case "AFTERNOON":
		return resolved(p.at(now, 0, afternoonHour, 0)), true
	case "EVENING":
		return resolved(p.at(now, 0, eveningHour, 0)), true
	}
	return ParseResult{}, false
}

// at builds an instant daysAhead calendar days from the reference day at
// the given wall-clock time in the parser's location.
func (p *Parser) at(now time.Time, daysAhead, hour, minute int) time.Time {
	d := now.AddDate(0, 0, daysAhead)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, p.location)
}

var clockPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(AM|PM)?$`)

// parseClock reads a time-of-day in the forms H AM/PM, H:MM AM/PM, or
// 24-hour HH:MM. Noon is 12PM (hour 12) and midnight is 12AM (hour 0).
// A bare hour without a meridiem is rejected as ambiguous.
func parseClock(s string) (hour, minute int, ok bool) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, false
	}

	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	meridiem := m[3]

	switch {
	case meridiem != "":
		if hour < 1 || hour > 12 || minute > 59 {
			return 0, 0, false
		}
		if meridiem == "PM" && hour != 12 {
			hour += 12
		}
		if meridiem == "AM" && hour == 12 {
			hour = 0
		}
	case m[2] != "":
		// 24-hour HH:MM
		if hour > 23 || minute > 59 {
			return 0, 0, false
		}
	default:
		// bare number, no meridiem, no minutes
		return 0, 0, false
	}
	return hour, minute, true
}

// splitKeyword separates the first whitespace-delimited token from the
// remainder of the phrase.
func splitKeyword(s string) (keyword, rest string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}
