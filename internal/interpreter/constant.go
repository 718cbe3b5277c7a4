package interpreter

// systemInstructionTemplate takes the current time as an ISO-8601 UTC timestamp.
const systemInstructionTemplate = `You are an intelligent calendar assistant. Your task is to interpret user commands and translate them into a structured JSON format.
The current date is %s. Use this for relative dates like "tomorrow" or "next Friday".
Analyze the user's request and determine the appropriate action: CREATE, UPDATE, DELETE, or READ.
- For CREATE, you must provide the event title, date, and time.
- For DELETE, you must identify the event by its title in 'targetEventTitle'.
- For UPDATE, you must provide the 'targetEventTitle' and the new 'event' details.
- If the user asks to set a reminder, parse the duration and set 'reminderMinutesBefore'. For example, 'remind me 15 minutes before' should result in reminderMinutesBefore: 15.
- If the user's intent is unclear, set action to UNKNOWN.
- Always respond in the specified JSON format.
- Default calendarId to 'personal' if not specified.
- Date format must be 'yyyy-MM-dd'.
- Time format must be 'HH:mm' (24-hour).
`

// isoTimestampLayout matches JavaScript's Date.toISOString.
const isoTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

const logPrefix = "internal.interpreter.Interpret"

// responseSchema is the structured output schema sent with every request.
var responseSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"action": map[string]interface{}{
			"type":        "STRING",
			"enum":        []string{"CREATE", "UPDATE", "DELETE", "READ", "UNKNOWN"},
			"description": "The action to be performed on the calendar.",
		},
		"event": map[string]interface{}{
			"type": "OBJECT",
			"properties": map[string]interface{}{
				"title":       map[string]interface{}{"type": "STRING", "description": "The title of the event."},
				"date":        map[string]interface{}{"type": "STRING", "description": "The date of the event in 'yyyy-MM-dd' format."},
				"time":        map[string]interface{}{"type": "STRING", "description": "The time of the event in 'HH:mm' 24-hour format."},
				"description": map[string]interface{}{"type": "STRING", "description": "A brief description of the event."},
				"calendarId": map[string]interface{}{
					"type":        "STRING",
					"enum":        []string{"personal", "work", "team"},
					"description": "The calendar to add the event to. Defaults to 'personal'.",
				},
				"reminderMinutesBefore": map[string]interface{}{
					"type":        "INTEGER",
					"description": "Number of minutes before the event to send a reminder. e.g., 15 for 'remind me 15 minutes before'.",
				},
			},
			"description": "Details of the event to be created or updated. Required for CREATE and UPDATE actions.",
		},
		"targetEventTitle": map[string]interface{}{
			"type":        "STRING",
			"description": "The title of the event to be updated or deleted. Required for UPDATE and DELETE actions.",
		},
		"responseMessage": map[string]interface{}{
			"type":        "STRING",
			"description": "A friendly message to the user confirming the action.",
		},
	},
}
