package collection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_BlocksSameKey(t *testing.T) {
	var k keyedMutex
	ctx := context.Background()

	unlock, err := k.Lock(ctx, "a")
	require.NoError(t, err)

	other, err := k.Lock(ctx, "b")
	require.NoError(t, err, "different keys do not block")
	other()

	acquired := make(chan struct{})
	go func() {
		u, err := k.Lock(ctx, "a")
		if err == nil {
			u()
		}
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second lock on the same key must wait")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()
	unlock()
	<-acquired
	assert.Equal(t, 0, k.size())
}

func TestKeyedMutex_ContextCancel(t *testing.T) {
	var k keyedMutex
	unlock, err := k.Lock(context.Background(), "a")
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = k.Lock(ctx, "a")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestKeyedMutex_LockAll(t *testing.T) {
	var k keyedMutex
	ctx := context.Background()

	unlock, err := k.LockAll(ctx, []string{"b", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, k.size())
	unlock()
	assert.Equal(t, 0, k.size())

	held, err := k.Lock(ctx, "c")
	require.NoError(t, err)
	defer held()

	cctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	_, err = k.LockAll(cctx, []string{"a", "c"})
	require.Error(t, err)
	assert.Equal(t, 1, k.size(), "partially acquired locks are released")
}
