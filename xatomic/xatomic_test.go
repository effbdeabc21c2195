package xatomic_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paretosp/xatomic"
)

func TestAddInt64ReturnsPreviousValue(t *testing.T) {
	var v int64 = 10
	got := xatomic.Add(&v, 5)
	require.Equal(t, int64(10), got)
	require.Equal(t, int64(15), xatomic.Load(&v))
}

func TestAddUint64ReturnsPreviousValue(t *testing.T) {
	var v uint64 = 10
	got := xatomic.Add(&v, 5)
	require.Equal(t, uint64(10), got)
}

func TestCompareAndSwapInt32(t *testing.T) {
	var v int32 = 1
	require.True(t, xatomic.CompareAndSwap(&v, int32(1), int32(2)))
	require.False(t, xatomic.CompareAndSwap(&v, int32(1), int32(3)))
	require.Equal(t, int32(2), xatomic.Load(&v))
}

func TestCounterConcurrentAdds(t *testing.T) {
	var c xatomic.Counter
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(1)
		}()
	}
	wg.Wait()
	require.Equal(t, int64(100), c.Load())
}
