package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingRedis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := NewClient(addr, os.Getenv("REDIS_PASSWORD"), 0)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())

	userID := uint(time.Now().UnixNano() % 1_000_000)
	c := NewListingRedis(client, time.Minute)

	ver, err := c.Version(ctx, userID)
	require.NoError(t, err)

	_, ok, err := c.Get(ctx, userID, ver, "MON|")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, userID, ver, "MON|", []byte(`{"lines":[]}`)))
	data, ok, err := c.Get(ctx, userID, ver, "MON|")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"lines":[]}`, string(data))

	require.NoError(t, c.Invalidate(ctx, userID))
	next, err := c.Version(ctx, userID)
	require.NoError(t, err)
	assert.Greater(t, next, ver)

	_, ok, err = c.Get(ctx, userID, next, "MON|")
	require.NoError(t, err)
	assert.False(t, ok)

	// A listing loaded before the invalidation lands under the old version.
	require.NoError(t, c.Set(ctx, userID, ver, "MON|", []byte(`{"lines":["stale"]}`)))
	_, ok, err = c.Get(ctx, userID, next, "MON|")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "listing:ver:4", versionKey(4))
	assert.Equal(t, "listing:4:2:MON,TUE|alex", entryKey(4, 2, "MON,TUE|alex"))
}
