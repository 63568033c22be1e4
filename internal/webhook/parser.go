package webhook

import (
	"encoding/json"
	"fmt"
	"time"

	"missed-call-recovery/internal/model"
)

// CallEventParser parses voice-AI webhook payloads.
type CallEventParser struct{}

func NewCallEventParser() *CallEventParser {
	return &CallEventParser{}
}

// ParseCallEvent parses a call_missed or call_ended payload.
func (p *CallEventParser) ParseCallEvent(payload []byte, eventType string) (*model.CallEvent, error) {
	var event struct {
		CallID     string `json:"call_id"`
		From       string `json:"from"`
		To         string `json:"to"`
		CallerName string `json:"caller_name"`
		Duration   int    `json:"duration_seconds"`
		Summary    string `json:"summary"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse %s event: %w", eventType, err)
	}
	if event.From == "" {
		return nil, fmt.Errorf("%s event missing caller number", eventType)
	}

	return &model.CallEvent{
		Source:     model.SourceVoiceAI,
		EventType:  eventType,
		CallID:     event.CallID,
		FromNumber: event.From,
		ToNumber:   event.To,
		CallerName: event.CallerName,
		Duration:   event.Duration,
		Summary:    event.Summary,
		ReceivedAt: time.Now(),
	}, nil
}
