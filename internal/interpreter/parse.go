package interpreter

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"personal-dashboard/internal/calendar"
)

var codeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse strips a surrounding markdown fence. Anything else is
// left for the decoder to accept or reject.
func sanitizeJSONResponse(text string) string {
	if matches := codeFence.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	return strings.TrimSpace(text)
}

// decodeCommand validates the payload field by field. A payload must be an
// object with a non-empty string action; optional fields of the wrong type are
// dropped rather than failing the whole command.
func decodeCommand(raw string) (calendar.Command, error) {
	text := sanitizeJSONResponse(raw)
	if !strings.HasPrefix(text, "{") {
		return calendar.Command{}, fmt.Errorf("%w: payload is not an object", calendar.ErrMalformedCommand)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return calendar.Command{}, fmt.Errorf("%w: %v", calendar.ErrMalformedCommand, err)
	}

	action, _ := payload["action"].(string)
	if action == "" {
		return calendar.Command{}, fmt.Errorf("%w: missing action", calendar.ErrMalformedCommand)
	}

	cmd := calendar.Command{
		Action:           calendar.Action(action),
		TargetEventTitle: stringField(payload, "targetEventTitle"),
		ResponseMessage:  stringField(payload, "responseMessage"),
	}
	if event, ok := payload["event"].(map[string]interface{}); ok {
		cmd.Event = decodeEvent(event)
	}
	return cmd, nil
}

func decodeEvent(m map[string]interface{}) *calendar.EventFields {
	return &calendar.EventFields{
		Title:                 stringField(m, "title"),
		Date:                  stringField(m, "date"),
		Time:                  stringField(m, "time"),
		Description:           stringField(m, "description"),
		CalendarID:            stringField(m, "calendarId"),
		ReminderMinutesBefore: minutesField(m, "reminderMinutesBefore"),
	}
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

// minutesField accepts only non-negative whole numbers.
func minutesField(m map[string]interface{}, key string) *int {
	f, ok := m[key].(float64)
	if !ok || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return nil
	}
	n := int(f)
	return &n
}
