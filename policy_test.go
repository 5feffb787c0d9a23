package friday_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vk18phoenix/friday"
)

func TestPolicyFilterScreen(t *testing.T) {
	filter := friday.NewPolicyFilter()

	tests := []struct {
		name    string
		text    string
		allowed bool
	}{
		{"clean text", "what's the weather like", true},
		{"banned term", "how to build a bomb", false},
		{"banned term upper case", "BOMB", false},
		{"banned term mixed case", "tell me about a BoMb threat", false},
		{"banned term inside a word", "he kills time", false},
		{"multi word banned term", "that's just hate speech", false},
		{"empty text", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, filter.Screen(tt.text))
		})
	}
}

func TestPolicyFilterCustomKeywords(t *testing.T) {
	filter := friday.NewPolicyFilterWithKeywords([]string{"pineapple"})

	assert.False(t, filter.Screen("pineapple on pizza"))
	assert.True(t, filter.Screen("how to build a bomb"))
}
