package tempchat_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vk18phoenix/friday"
	"github.com/Vk18phoenix/friday/tempchat"
)

var sample = []friday.Message{
	{ID: "1", Text: "hi", Sender: friday.SenderUser},
	{ID: "2", Text: "hello there", Sender: friday.SenderAssistant},
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := tempchat.NewStore(tempchat.StoreTypeMemory)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Save(ctx, sample))

	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestMemoryStoreSaveCopies(t *testing.T) {
	ctx := context.Background()
	store, err := tempchat.NewStore(tempchat.StoreTypeMemory)
	require.NoError(t, err)
	defer store.Close()

	in := append([]friday.Message(nil), sample...)
	require.NoError(t, store.Save(ctx, in))

	in[0].Text = "mutated"

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hi", got[0].Text)
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "tempchat.json")

	store, err := tempchat.NewStore(tempchat.StoreTypeFile, tempchat.WithPath(path))
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "missing file should read as an empty sequence")

	require.NoError(t, store.Save(ctx, sample))

	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample, got)

	// Full replace, not append.
	require.NoError(t, store.Save(ctx, sample[:1]))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample[:1], got)
}

func TestNewStoreValidation(t *testing.T) {
	_, err := tempchat.NewStore(tempchat.StoreTypeFile)
	assert.ErrorIs(t, err, tempchat.ErrInvalidConfig)

	_, err = tempchat.NewStore(tempchat.StoreTypeRedis)
	assert.ErrorIs(t, err, tempchat.ErrInvalidConfig)

	_, err = tempchat.NewStore(tempchat.StoreType("bolt"))
	assert.ErrorIs(t, err, tempchat.ErrInvalidStoreType)
}
