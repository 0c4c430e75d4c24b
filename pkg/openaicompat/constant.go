package openaicompat

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	chatCompletionsPath = "/chat/completions"
)

// Known vendors serving the chat completions API.
const (
	VendorDeepSeek = "deepseek"
	VendorQwen     = "qwen"
	VendorOpenAI   = "openai"
)

var defaultBaseURLs = map[string]string{
	VendorDeepSeek: "https://api.deepseek.com/v1",
	VendorQwen:     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	VendorOpenAI:   "https://api.openai.com/v1",
}

var defaultModels = map[string]string{
	VendorDeepSeek: "deepseek-chat",
	VendorQwen:     "qwen-plus",
	VendorOpenAI:   "gpt-4o-mini",
}

// Finish reasons reported in choices.
const (
	FinishReasonStop          = "stop"
	FinishReasonLength        = "length"
	FinishReasonContentFilter = "content_filter"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
