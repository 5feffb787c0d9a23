// Package genai defines the assistant-generation port and its adapters.
package genai

import (
	"context"

	"github.com/Vk18phoenix/friday"
)

// Generator produces an assistant reply for a user message given the prior
// conversation. Calls may take arbitrary time and may fail; the engine
// absorbs failures with a fixed apology so the conversation never stalls.
type Generator interface {
	Generate(ctx context.Context, text string, prior []friday.Message) (string, error)
}
