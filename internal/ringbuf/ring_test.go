package ringbuf

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireCursors[T Number](t *testing.T, r *RingBuffer[T]) {
	t.Helper()
	head, tail, count := r.Cursors()
	require.Equal(t, (head+count)%r.Cap(), tail, "head=%d tail=%d count=%d", head, tail, count)
	require.GreaterOrEqual(t, count, 0)
	require.LessOrEqual(t, count, r.Cap())
}

func TestNewCapacity(t *testing.T) {
	_, err := New[int](0)
	require.ErrorIs(t, err, ErrCapacity)
	_, err = New[int](-3)
	require.ErrorIs(t, err, ErrCapacity)
	require.Panics(t, func() { MustNew[int](0) })

	r, err := New[int](5)
	require.NoError(t, err)
	assert.Equal(t, 5, r.Cap())
	assert.Equal(t, 0, r.Len())
	assert.True(t, r.IsEmpty())
	assert.False(t, r.IsFull())
}

func TestPopEmpty(t *testing.T) {
	r := MustNew[int](5)
	_, err := r.Pop()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = r.Peek()
	require.ErrorIs(t, err, ErrEmpty)
	requireCursors(t, r)
}

func TestFIFORoundTrip(t *testing.T) {
	for n := 0; n <= 5; n++ {
		r := MustNew[int](5)
		for i := 0; i < n; i++ {
			require.NoError(t, r.Push(i*10))
		}
		for i := 0; i < n; i++ {
			v, err := r.Pop()
			require.NoError(t, err)
			require.Equal(t, i*10, v)
		}
		require.True(t, r.IsEmpty())
	}
}

func TestPushFull(t *testing.T) {
	r := MustNew[int](5)
	for i := 1; i <= 5; i++ {
		require.NoError(t, r.Push(i))
	}
	require.True(t, r.IsFull())

	err := r.Push(6)
	require.ErrorIs(t, err, ErrFull)
	assert.Equal(t, 5, r.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, r.Snapshot())
	requireCursors(t, r)
}

func TestPushOverwrite(t *testing.T) {
	r := MustNew[int](5)
	for i := 1; i <= 5; i++ {
		_, ok := r.PushOverwrite(i)
		require.False(t, ok)
	}

	evicted, ok := r.PushOverwrite(6)
	require.True(t, ok)
	assert.Equal(t, 1, evicted)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, r.Snapshot())
	requireCursors(t, r)

	evicted, ok = r.PushOverwrite(7)
	require.True(t, ok)
	assert.Equal(t, 2, evicted)
	assert.Equal(t, []int{3, 4, 5, 6, 7}, r.Snapshot())
}

func TestPeekDoesNotMutate(t *testing.T) {
	r := MustNew[int](3)
	require.NoError(t, r.Push(4))
	require.NoError(t, r.Push(8))

	h0, t0, c0 := r.Cursors()
	v, err := r.Peek()
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	h1, t1, c1 := r.Cursors()
	assert.Equal(t, []int{h0, t0, c0}, []int{h1, t1, c1})
}

func TestAverage(t *testing.T) {
	r := MustNew[int](5)
	assert.Equal(t, 0.0, r.Average())

	for _, v := range []int{2, 4, 6} {
		require.NoError(t, r.Push(v))
	}
	assert.Equal(t, 4.0, r.Average())

	// wrapped window
	r = MustNew[int](3)
	for _, v := range []int{100, 1, 2, 3} {
		r.PushOverwrite(v)
	}
	assert.Equal(t, 2.0, r.Average())

	f := MustNew[float64](2)
	require.NoError(t, f.Push(0.5))
	require.NoError(t, f.Push(1.0))
	assert.InDelta(t, 0.75, f.Average(), 1e-9)
}

func TestStrictScenario(t *testing.T) {
	r := MustNew[int](5)
	for i := 1; i <= 5; i++ {
		require.NoError(t, r.Push(i))
	}
	require.ErrorIs(t, r.Push(6), ErrFull)

	v, err := r.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = r.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	require.NoError(t, r.Push(6))
	require.NoError(t, r.Push(7))
	assert.Equal(t, []int{3, 4, 5, 6, 7}, r.Snapshot())
	requireCursors(t, r)
}

func TestReset(t *testing.T) {
	r := MustNew[int](4)
	for i := 0; i < 6; i++ {
		r.PushOverwrite(i)
	}
	r.Reset()
	assert.True(t, r.IsEmpty())
	assert.Empty(t, r.Snapshot())
	requireCursors(t, r)
	require.NoError(t, r.Push(9))
	assert.Equal(t, []int{9}, r.Snapshot())
}

func TestSnapshotIsCopy(t *testing.T) {
	r := MustNew[int](3)
	require.NoError(t, r.Push(1))
	s := r.Snapshot()
	s[0] = 42
	v, err := r.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

// TestRandomOps checks the cursor invariant and FIFO order against a slice
// model over a long random sequence of operations.
func TestRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, capacity := range []int{1, 2, 5, 7} {
		r := MustNew[int](capacity)
		var model []int
		for i := 0; i < 2000; i++ {
			switch rng.Intn(4) {
			case 0:
				err := r.Push(i)
				if len(model) == capacity {
					require.ErrorIs(t, err, ErrFull)
				} else {
					require.NoError(t, err)
					model = append(model, i)
				}
			case 1:
				evicted, ok := r.PushOverwrite(i)
				if len(model) == capacity {
					require.True(t, ok)
					require.Equal(t, model[0], evicted)
					model = model[1:]
				} else {
					require.False(t, ok)
				}
				model = append(model, i)
			case 2:
				v, err := r.Pop()
				if len(model) == 0 {
					require.ErrorIs(t, err, ErrEmpty)
				} else {
					require.NoError(t, err)
					require.Equal(t, model[0], v)
					model = model[1:]
				}
			case 3:
				v, err := r.Peek()
				if len(model) == 0 {
					require.ErrorIs(t, err, ErrEmpty)
				} else {
					require.NoError(t, err)
					require.Equal(t, model[0], v)
				}
			}
			requireCursors(t, r)
			require.False(t, r.IsEmpty() && r.IsFull())
			require.Equal(t, len(model), r.Len())
			if len(model) == 0 {
				require.Empty(t, r.Snapshot())
			} else {
				require.Equal(t, model, r.Snapshot())
			}
		}
	}
}
