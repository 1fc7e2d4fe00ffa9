package injection_test

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/mogud/snowlog/injection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handle struct {
	name string
}

func TestLazySynchronizedComputesOnce(t *testing.T) {
	var counter atomic.Int32
	start := make(chan struct{})
	lazy := injection.NewLazy(injection.LazySynchronized, func() (*handle, error) {
		counter.Add(1)
		return &handle{name: "OrderService"}, nil
	})

	const n = 32
	results := make([]*handle, n)
	wg := sync.WaitGroup{}
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			<-start
			v, err := lazy.Get()
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), counter.Load())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
	assert.True(t, lazy.IsResolved())
}

func TestLazyPublicationFirstResultWins(t *testing.T) {
	var counter atomic.Int32
	start := make(chan struct{})
	lazy := injection.NewLazy(injection.LazyPublication, func() (*handle, error) {
		counter.Add(1)
		return &handle{name: "OrderService"}, nil
	})

	const n = 16
	results := make([]*handle, n)
	wg := sync.WaitGroup{}
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], _ = lazy.Get()
		}(i)
	}
	close(start)
	wg.Wait()

	assert.GreaterOrEqual(t, counter.Load(), int32(1))
	for _, r := range results {
		assert.Same(t, results[0], r)
	}

	before := counter.Load()
	_, _ = lazy.Get()
	assert.Equal(t, before, counter.Load(), "published value must not be recomputed")
}

func TestLazyPublicationDistinctValues(t *testing.T) {
	var counter atomic.Int32
	start := make(chan struct{})
	lazy := injection.NewLazy(injection.LazyPublication, func() (*handle, error) {
		id := counter.Add(1)
		return &handle{name: fmt.Sprintf("worker-%d", id)}, nil
	})

	const n = 16
	results := make([]*handle, n)
	wg := sync.WaitGroup{}
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], _ = lazy.Get()
		}(i)
	}
	close(start)
	wg.Wait()

	published, err := lazy.Get()
	require.NoError(t, err)
	assert.True(t, lazy.IsResolved())
	for _, r := range results {
		assert.Same(t, published, r)
	}
}

func TestLazySynchronizedRetriesAfterPanic(t *testing.T) {
	calls := 0
	lazy := injection.NewLazy(injection.LazySynchronized, func() (string, error) {
		calls++
		if calls == 1 {
			panic("not ready")
		}
		return "Billing", nil
	})

	assert.PanicsWithValue(t, "not ready", func() { _, _ = lazy.Get() })
	assert.False(t, lazy.IsResolved())

	v, err := lazy.Get()
	require.NoError(t, err)
	assert.Equal(t, "Billing", v)
	assert.True(t, lazy.IsResolved())
	assert.Equal(t, 2, calls)
}

func TestLazyNilInitializer(t *testing.T) {
	for _, mode := range []injection.LazyMode{injection.LazySynchronized, injection.LazyPublication, injection.LazyNone} {
		t.Run(mode.String(), func(t *testing.T) {
			lazy := injection.NewLazy[int](mode, nil)
			_, err := lazy.Get()
			assert.ErrorIs(t, err, injection.ErrNilInitializer)
			assert.True(t, lazy.IsResolved())
		})
	}
}

func TestLazyNone(t *testing.T) {
	calls := 0
	lazy := injection.NewLazy(injection.LazyNone, func() (string, error) {
		calls++
		return "Billing", nil
	})
	assert.False(t, lazy.IsResolved())

	v := lazy.MustGet()
	assert.Equal(t, "Billing", v)
	v = lazy.MustGet()
	assert.Equal(t, "Billing", v)
	assert.Equal(t, 1, calls)
	assert.Equal(t, injection.LazyNone, lazy.Mode())
}

func TestLazyMemoizesError(t *testing.T) {
	boom := errors.New("boom")
	for _, mode := range []injection.LazyMode{injection.LazySynchronized, injection.LazyPublication, injection.LazyNone} {
		t.Run(mode.String(), func(t *testing.T) {
			calls := 0
			lazy := injection.NewLazy(mode, func() (int, error) {
				calls++
				return 0, boom
			})

			_, err := lazy.Get()
			require.ErrorIs(t, err, boom)
			_, err = lazy.Get()
			require.ErrorIs(t, err, boom)
			assert.Equal(t, 1, calls)
			assert.PanicsWithError(t, "boom", func() { lazy.MustGet() })
		})
	}
}

func TestNewLazyValue(t *testing.T) {
	lazy := injection.NewLazyValue(7)
	assert.True(t, lazy.IsResolved())
	v, err := lazy.Get()
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestParameters(t *testing.T) {
	params := injection.NewParameters("OrderService", 3)
	assert.Equal(t, 2, params.Len())

	s, err := injection.GetParameter[string](params, 0)
	assert.NoError(t, err)
	assert.Equal(t, "OrderService", s)

	_, err = injection.GetParameter[string](params, 1)
	assert.ErrorContains(t, err, "parameter 1 is int")

	_, err = params.Get(2)
	assert.Error(t, err)

	var empty *injection.Parameters
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Values())
}

func TestLevelRoundTrip(t *testing.T) {
	for _, level := range []injection.Level{injection.DEBUG, injection.INFO, injection.ERROR, injection.NONE} {
		parsed, err := injection.ParseLevel(level.String())
		assert.NoError(t, err)
		assert.Equal(t, level, parsed)
	}

	_, err := injection.ParseLevel("verbose")
	assert.Error(t, err)
}
