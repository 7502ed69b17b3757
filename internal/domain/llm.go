package domain

import "context"

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRole_System    ChatRole = "system"
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
)

// LLMChatMessage represents a message in a chat request to the LLM API.
type LLMChatMessage struct {
	Role    ChatRole `yaml:"role"`
	Content string   `yaml:"content"`
}

// LLMChatRequest represents a request to the LLM API.
type LLMChatRequest struct {
	Model    string
	Messages []LLMChatMessage
	// Optional parameters.
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
}

// LLMUsage is the token accounting reported by the LLM API.
type LLMUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// LLMChatResponse represents the response from a chat request to the LLM API.
type LLMChatResponse struct {
	Content string
	Usage   LLMUsage
}

// LLMClient defines the interface for interacting with the generative
// language service.
type LLMClient interface {
	// Chat sends a chat request to the LLM and returns the full assistant
	// response. Returns ErrNotConfigured when no endpoint is configured.
	Chat(ctx context.Context, req LLMChatRequest) (LLMChatResponse, error)

	// Configured reports whether an endpoint is configured at all. Callers
	// that have a deterministic fallback should check this before paying for
	// a round trip that cannot succeed.
	Configured() bool
}
