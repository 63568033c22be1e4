package reply

// Command is the tier an inbound SMS reply falls into.
type Command string

const (
	CommandBook        Command = "book"
	CommandCallback    Command = "callback"
	CommandSnooze      Command = "snooze"
	CommandReschedule  Command = "reschedule"
	CommandStopAll     Command = "stop_all"
	CommandResubscribe Command = "resubscribe"
	CommandFreeform    Command = "freeform"
)

// ProcessReplyInput is one inbound SMS message.
type ProcessReplyInput struct {
	MessageSID string
	From       string // lead's phone, E.164
	To         string // our number
	Body       string
}

// ProcessReplyOutput reports what was done and the text sent back.
type ProcessReplyOutput struct {
	Command   Command
	ReplyBody string // empty when no outbound SMS was sent
}
