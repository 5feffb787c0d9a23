package genai

import (
	"context"
	"fmt"

	"github.com/Vk18phoenix/friday"
)

// Mock is a scriptable Generator for tests and offline runs. With no Reply
// func set it echoes the user's text.
type Mock struct {
	Reply func(ctx context.Context, text string, prior []friday.Message) (string, error)
}

// NewMock returns a Mock with the default echo behavior.
func NewMock() *Mock {
	return &Mock{}
}

// Generate implements Generator.
func (m *Mock) Generate(ctx context.Context, text string, prior []friday.Message) (string, error) {
	if m.Reply != nil {
		return m.Reply(ctx, text, prior)
	}
	return fmt.Sprintf("You said %q. Tell me more.", text), nil
}

// Compile-time check that Mock implements Generator
var _ Generator = (*Mock)(nil)
