package deadletter_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/payhook/internal/config"
	"github.com/gyaneshwarpardhi/payhook/internal/deadletter"
)

func entry(i int) deadletter.Entry {
	return deadletter.Entry{
		DeliveryID: fmt.Sprintf("dlv_%d", i),
		Reason:     deadletter.ReasonMalformed,
		Body:       "{",
		ReceivedAt: time.Unix(int64(i), 0).UTC(),
	}
}

func TestMemorySink_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := deadletter.NewMemorySink(3)
	for i := 1; i <= 2; i++ {
		require.NoError(t, s.Put(ctx, entry(i)))
	}

	got, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "dlv_2", got[0].DeliveryID)
	assert.Equal(t, "dlv_1", got[1].DeliveryID)
}

func TestMemorySink_Wraps(t *testing.T) {
	ctx := context.Background()
	s := deadletter.NewMemorySink(3)
	for i := 1; i <= 5; i++ {
		require.NoError(t, s.Put(ctx, entry(i)))
	}
	assert.Equal(t, 3, s.Len())

	got, err := s.List(ctx, 10)
	require.NoError(t, err)
	ids := []string{got[0].DeliveryID, got[1].DeliveryID, got[2].DeliveryID}
	assert.Equal(t, []string{"dlv_5", "dlv_4", "dlv_3"}, ids)

	got, err = s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "dlv_5", got[0].DeliveryID)
}

func TestOpen(t *testing.T) {
	s, err := deadletter.Open(context.Background(), config.DeadLetterConf{Driver: "memory", MaxLen: 2})
	require.NoError(t, err)
	assert.IsType(t, &deadletter.MemorySink{}, s)
	assert.NoError(t, s.Close())

	_, err = deadletter.Open(context.Background(), config.DeadLetterConf{Driver: "kafka"})
	assert.Error(t, err)
}

func TestConnect_ParsesURL(t *testing.T) {
	c, err := deadletter.Connect(context.Background(), "redis://:secret@localhost:6390/2")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6390", c.Options().Addr)
	assert.Equal(t, 2, c.Options().DB)
	_ = c.Close()

	c, err = deadletter.Connect(context.Background(), "localhost:6391")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6391", c.Options().Addr)
	_ = c.Close()

	_, err = deadletter.Connect(context.Background(), "redis://localhost:notaport")
	assert.Error(t, err)
}

// Runs against a live server when PAYHOOK_TEST_REDIS_URL is set.
func TestRedisSink(t *testing.T) {
	url := os.Getenv("PAYHOOK_TEST_REDIS_URL")
	if url == "" {
		t.Skip("PAYHOOK_TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	client, err := deadletter.Connect(ctx, url)
	require.NoError(t, err)

	key := fmt.Sprintf("payhook:test:%d", time.Now().UnixNano())
	t.Cleanup(func() { client.Del(ctx, key) })

	s := deadletter.NewRedisSink(client, key, 2)
	for i := 1; i <= 3; i++ {
		require.NoError(t, s.Put(ctx, entry(i)))
	}
	got, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "dlv_3", got[0].DeliveryID)
	assert.Equal(t, time.Unix(3, 0).UTC(), got[0].ReceivedAt)
}
