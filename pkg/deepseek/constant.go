package deepseek

import "time"

const (
	DefaultBaseURL = "https://api.deepseek.com/v1"
	DefaultModel   = "deepseek-chat"
	DefaultTimeout = 60 * time.Second

	// QwenBaseURL is DashScope's OpenAI-compatible endpoint.
	QwenBaseURL      = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	QwenDefaultModel = "qwen-plus"
)
