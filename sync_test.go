package rangeindex

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncIndex(t *testing.T) {
	t.Parallel()

	const n = 64
	const writers = 8
	const rounds = 200

	s := NewSync(mustNew(t, make([]int64, n)))

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				if err := s.Add((w*rounds+i)%n, 1); err != nil {
					t.Error(err)
					return
				}
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				total, err := s.Query(0, n-1)
				if err != nil {
					t.Error(err)
					return
				}
				if total < 0 || total > writers*rounds {
					t.Errorf("Impossible total %d", total)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(writers*rounds), s.Total())
	assert.Equal(t, n, s.Len())

	snapshot := s.Snapshot()
	checkInvariants(t, snapshot, s.Values())
}

func TestSyncIndexErrors(t *testing.T) {
	t.Parallel()

	s := NewSync(mustNew(t, []int64{1, 2, 3}))

	assert.ErrorIs(t, s.Update(3, 0), ErrIndexOutOfRange)
	_, err := s.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	require.NoError(t, s.Update(0, 10))
	v, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, int64(10), v)
}
