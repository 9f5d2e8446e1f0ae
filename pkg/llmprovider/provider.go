package llmprovider

import "context"

// Provider defines the interface for LLM providers.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g. "gemini", "deepseek").
	Name() string

	Model() string
}

// Request is a normalized single-shot text generation request.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	// JSONMode asks providers that support it to return a bare JSON object.
	JSONMode bool
}

// Message is one conversation message. Role is "user" or "assistant".
type Message struct {
	Role string
	Text string
}

// Response is a normalized generation response.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
