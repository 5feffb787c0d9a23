package engine

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vk18phoenix/friday"
	"github.com/Vk18phoenix/friday/auth"
)

func ids(sessions []friday.Session) []string {
	out := make([]string, len(sessions))
	for i, s := range sessions {
		out[i] = s.ID
	}
	return out
}

func TestCompareIDsDesc(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"numeric descending", "200", "100", -1},
		{"numeric ascending", "100", "200", 1},
		{"numeric equal", "100", "100", 0},
		{"numeric beats digit count", "900", "1000", 1},
		{"both non-numeric string desc", "beta", "alpha", -1},
		{"mixed falls back to string", "abc", "100", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compareIDsDesc(tt.a, tt.b))
		})
	}
}

func TestSortedViewPinnedFirstThenIDDesc(t *testing.T) {
	f := authedFixture(t)

	// Insert in scrambled order; the view must not depend on it.
	f.remote.histories["user-1"] = []friday.Session{
		{ID: "100", Title: "oldest"},
		{ID: "300", Title: "newest"},
		{ID: "150", Title: "pinned old", Pinned: true},
		{ID: "200", Title: "middle"},
		{ID: "250", Title: "pinned new", Pinned: true},
	}
	require.NoError(t, f.engine.Hydrate(context.Background()))

	got := ids(view(f.engine))
	assert.Equal(t, []string{"250", "150", "300", "200", "100"}, got)
}

func TestSortedViewNonNumericIDs(t *testing.T) {
	f := authedFixture(t)

	f.remote.histories["user-1"] = []friday.Session{
		{ID: "alpha"},
		{ID: "omega"},
		{ID: "beta"},
	}
	require.NoError(t, f.engine.Hydrate(context.Background()))

	got := ids(view(f.engine))
	assert.Equal(t, []string{"omega", "beta", "alpha"}, got)
}

func TestSortedViewIsRecomputedPerIteration(t *testing.T) {
	f := authedFixture(t)
	ctx := context.Background()

	require.NoError(t, f.engine.SendMessage(ctx, "one"))
	first := f.engine.ActiveID()
	require.NoError(t, f.engine.NewSession())
	require.NoError(t, f.engine.SendMessage(ctx, "two"))

	seq := f.engine.SortedView()
	before := ids(slices.Collect(seq))
	require.Len(t, before, 2)
	assert.NotEqual(t, first, before[0], "newer session sorts first")

	// Pinning between two iterations of the same sequence changes the order.
	require.NoError(t, f.engine.TogglePin(ctx, first))
	after := ids(slices.Collect(seq))
	assert.Equal(t, first, after[0])
}

func TestSortedViewEarlyBreak(t *testing.T) {
	f := authedFixture(t)

	f.remote.histories["user-1"] = []friday.Session{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	require.NoError(t, f.engine.Hydrate(context.Background()))

	n := 0
	for range f.engine.SortedView() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestDeleteAllThenSortedViewEmpty(t *testing.T) {
	f := authedFixture(t)
	ctx := context.Background()

	require.NoError(t, f.engine.SendMessage(ctx, "hello"))
	require.NoError(t, f.engine.DeleteAllSessions(ctx))

	assert.Empty(t, slices.Collect(f.engine.SortedView()))
	assert.Empty(t, f.engine.ActiveID())
}

func TestModeAccessors(t *testing.T) {
	guest := guestFixture(t)
	assert.Equal(t, auth.ModeGuest, guest.engine.Mode())
	assert.False(t, guest.engine.Sending())

	authed := authedFixture(t)
	assert.Equal(t, auth.ModeAuthenticated, authed.engine.Mode())
	assert.Empty(t, authed.engine.ActiveMessages())
}
