package cache

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingularGetSet(t *testing.T) {
	t.Parallel()

	c := NewSingular[[]string]("locations")

	var dest []string
	assert.ErrorIs(t, c.Get(&dest), ErrNotFound)

	require.NoError(t, c.Set([]string{"Nairobi", "Mombasa"}, time.Minute))
	require.NoError(t, c.Get(&dest))
	assert.Equal(t, []string{"Nairobi", "Mombasa"}, dest)

	require.NoError(t, c.Delete())
	assert.ErrorIs(t, c.Get(&dest), ErrNotFound)
}

func TestSingularMutexGetSetComputesOnce(t *testing.T) {
	t.Parallel()

	c := NewSingular[int]("stats")

	var calls int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var dest int
			err := c.MutexGetSet(&dest, func() (int, error) {
				atomic.AddInt32(&calls, 1)
				return 42, nil
			}, time.Minute)
			assert.NoError(t, err)
			assert.Equal(t, 42, dest)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}
