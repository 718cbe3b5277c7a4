package deepseek

import "time"

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "deepseek-chat"

	// DefaultTimeout is the HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// ResponseFormatJSON enables JSON mode
	ResponseFormatJSON = "json_object"
)
