package reply

import "strings"

// Classify maps the leading token of an inbound reply to a command tier.
// The second return value is the remainder after the command token; for
// Freeform it is the whole trimmed text.
func Classify(text string) (Command, string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return CommandFreeform, ""
	}

	token := trimmed
	rest := ""
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		token = trimmed[:i]
		rest = strings.TrimSpace(trimmed[i+1:])
	}

	switch strings.ToUpper(token) {
	case "1":
		return CommandBook, rest
	case "2", "CALL":
		return CommandCallback, rest
	case "3", "SNOOZE":
		return CommandSnooze, rest
	case "4":
		return CommandReschedule, rest
	case "5", "STOP":
		return CommandStopAll, rest
	case "START":
		return CommandResubscribe, rest
	default:
		return CommandFreeform, trimmed
	}
}
