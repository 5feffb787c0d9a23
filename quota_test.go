package friday_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vk18phoenix/friday"
)

func TestMayAcceptGuestMessage(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{"empty conversation", 0, true},
		{"one below the limit", friday.GuestMessageLimit - 1, true},
		{"at the limit", friday.GuestMessageLimit, false},
		{"over the limit", friday.GuestMessageLimit + 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, friday.MayAcceptGuestMessage(tt.count))
		})
	}
}
