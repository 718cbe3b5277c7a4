package usecase

// Assistant replies.
const (
	ReplyCreated          = "Okay, I've added \"%s\" to your calendar."
	ReplyDeleted          = "I've removed \"%s\" from your calendar."
	ReplyUpdated          = "I've updated the event \"%s\"."
	ReplyFallback         = "I'm not sure how to respond to that."
	ReplyInvalidDate      = "I'm sorry, I couldn't understand that date. Could you try again?"
	ReplyCreateIncomplete = "I seem to be missing some details. Could you please provide the event title and date?"
	ReplyDeleteIncomplete = "I need to know which event you'd like to delete."
	ReplyUpdateIncomplete = "I'm missing some information. What event do you want to update, and what should I change?"
	ReplyUnrecognized     = "I'm not quite sure what you mean. Could you rephrase that?"
	ReplyMalformed        = "Sorry, I couldn't understand that command."
	ReplyInterpreterError = "An error occurred while communicating with the AI."
)

// Error banners.
const (
	BannerInvalidDate      = "AI returned an invalid date format: %s"
	BannerCreateIncomplete = "AI response for creating an event was incomplete."
	BannerDeleteIncomplete = "AI did not specify which event to delete."
	BannerUpdateIncomplete = "AI response for updating an event was incomplete."
	BannerUnknownAction    = "Unknown action from AI: %s"
)

// ActionLabelNone labels commands that never reached the reconciler.
const ActionLabelNone = "none"

const (
	defaultClock      = "00:00"
	defaultCalendarID = "personal"
)

// Log prefixes
const (
	LogPrefixSubmit    = "internal.calendar.usecase.Submit"
	LogPrefixExportICS = "internal.calendar.usecase.ExportICS"
)
