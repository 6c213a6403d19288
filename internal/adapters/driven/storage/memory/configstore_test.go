package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tunesearch/internal/core/ports/driven"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.Equal(t, ":memory:", store.Path())
	_, ok := store.Get("ui.theme")
	assert.False(t, ok)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("ui.theme", "dark"))
	require.NoError(t, store.Set("search.limit", 50))

	val, ok := store.Get("ui.theme")
	assert.True(t, ok)
	assert.Equal(t, "dark", val)
	assert.Equal(t, "dark", store.GetString("ui.theme"))
	assert.Equal(t, 50, store.GetInt("search.limit"))

	require.NoError(t, store.Set("ui.theme", "light"))
	assert.Equal(t, "light", store.GetString("ui.theme"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("as-int64", int64(30)))
	require.NoError(t, store.Set("as-float", float64(12)))
	require.NoError(t, store.Set("as-string", "25"))
	require.NoError(t, store.Set("as-bool", true))

	tests := []struct {
		name string
		got  any
		want any
	}{
		{name: "int from int64", got: store.GetInt("as-int64"), want: 30},
		{name: "int from float64", got: store.GetInt("as-float"), want: 12},
		{name: "int from string is zero", got: store.GetInt("as-string"), want: 0},
		{name: "int missing is zero", got: store.GetInt("missing"), want: 0},
		{name: "string from int is empty", got: store.GetString("as-int64"), want: ""},
		{name: "string missing is empty", got: store.GetString("missing"), want: ""},
		{name: "bool", got: store.GetBool("as-bool"), want: true},
		{name: "bool from string is false", got: store.GetBool("as-string"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigStore_SaveAndLoadAreNoOps(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("search.entity", "album"))

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, "album", store.GetString("search.entity"))
}

func TestConfigStore_InstancesAreIsolated(t *testing.T) {
	a := NewConfigStore()
	b := NewConfigStore()

	require.NoError(t, a.Set("ui.theme", "dark"))

	assert.Equal(t, "dark", a.GetString("ui.theme"))
	assert.Empty(t, b.GetString("ui.theme"))
}

func TestConfigStore_InterfaceCompliance(t *testing.T) {
	var store driven.ConfigStore = NewConfigStore()
	_, ok := store.(driven.ConfigWatcher)
	assert.True(t, ok)
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Set(fmt.Sprintf("key.%d", i%5), i)
		}(i)
		go func(i int) {
			defer wg.Done()
			_ = store.GetInt(fmt.Sprintf("key.%d", i%5))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		_, ok := store.Get(fmt.Sprintf("key.%d", i))
		assert.True(t, ok)
	}
}

func TestConfigStore_Watch_NotifiesOnSet(t *testing.T) {
	store := NewConfigStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, func() { changed <- struct{}{} })
	}()

	// Wait until the watcher is registered.
	require.Eventually(t, func() bool {
		store.mu.RLock()
		defer store.mu.RUnlock()
		return len(store.watchers) == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, store.Set("ui.theme", "dark"))

	select {
	case <-changed:
	case <-time.After(time.Second):
		t.Fatal("watcher was not notified")
	}

	cancel()
	assert.NoError(t, <-done)

	store.mu.RLock()
	assert.Empty(t, store.watchers)
	store.mu.RUnlock()
}

func TestConfigStore_Watch_CoalescesNotifications(t *testing.T) {
	store := NewConfigStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	release := make(chan struct{})
	var calls int
	var mu sync.Mutex
	go func() {
		_ = store.Watch(ctx, func() {
			<-release
			mu.Lock()
			calls++
			mu.Unlock()
		})
	}()

	require.Eventually(t, func() bool {
		store.mu.RLock()
		defer store.mu.RUnlock()
		return len(store.watchers) == 1
	}, time.Second, 5*time.Millisecond)

	for i := 0; i < 10; i++ {
		require.NoError(t, store.Set("ui.theme", "dark"))
	}
	close(release)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 1
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	assert.LessOrEqual(t, calls, 2)
	mu.Unlock()
}
