package interfaces

import "context"

// Message represents a single turn in an LLM conversation.
type Message struct {
	Role    string `json:"role"` // "system", "user", or "assistant"
	Content string `json:"content"`
}

// LLMService is the provider-agnostic chat completion interface implemented
// by the Claude and Gemini services.
type LLMService interface {
	// Chat generates a completion for the conversation history.
	Chat(ctx context.Context, messages []Message) (string, error)

	// Name returns the provider name for logging.
	Name() string

	// Close releases provider resources.
	Close() error
}
