package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *Metrics) {
	t.Helper()
	m := NewMetrics(prometheus.NewRegistry(), "test")
	c := NewCache(ttl, m)
	t.Cleanup(c.Close)
	return c, m
}

func TestCache_SetGet(t *testing.T) {
	c, m := newTestCache(t, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "key", []byte("value"))

	got, ok := c.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, "value", string(got))

	_, ok = c.Get(ctx, "missing")
	assert.False(t, ok)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Hits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Misses))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Items))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Bytes))
}

func TestCache_Overwrite(t *testing.T) {
	c, m := newTestCache(t, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "key", []byte("first"))
	c.Set(ctx, "key", []byte("second!"))

	got, ok := c.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, "second!", string(got))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Items))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.Bytes))
}

func TestCache_Expiration(t *testing.T) {
	c, m := newTestCache(t, 50*time.Millisecond)
	ctx := context.Background()

	c.Set(ctx, "key", []byte("value"))
	time.Sleep(80 * time.Millisecond)

	_, ok := c.Get(ctx, "key")
	assert.False(t, ok)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Items))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Bytes))
}

func TestCache_Cleanup(t *testing.T) {
	c, m := newTestCache(t, 20*time.Millisecond)

	c.Set(context.Background(), "key", []byte("value"))
	assert.Eventually(t, func() bool { return testutil.ToFloat64(m.Items) == 0 }, time.Second, 10*time.Millisecond)
}

func TestCache_Disabled(t *testing.T) {
	c, m := newTestCache(t, 0)
	ctx := context.Background()

	assert.False(t, c.Enabled())
	c.Set(ctx, "key", []byte("value"))
	_, ok := c.Get(ctx, "key")
	assert.False(t, ok)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Items))
}

func TestCache_Concurrency(t *testing.T) {
	c, m := newTestCache(t, time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", id%5)
			c.Set(ctx, key, []byte("value"))
			_, ok := c.Get(ctx, key)
			assert.True(t, ok)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5.0, testutil.ToFloat64(m.Items))
}

func TestCache_CloseIdempotent(t *testing.T) {
	c := NewCache(time.Minute, nil)
	c.Close()
	c.Close()
}
