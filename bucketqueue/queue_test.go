package bucketqueue_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/dimacspath/bucketqueue"
)

func TestNew_BadWidth(t *testing.T) {
	_, err := bucketqueue.New(0)
	require.True(t, errors.Is(err, bucketqueue.ErrBadWidth))

	_, err = bucketqueue.New(-5)
	require.True(t, errors.Is(err, bucketqueue.ErrBadWidth))
}

func TestPushPop_MonotoneOrder(t *testing.T) {
	q, err := bucketqueue.New(100)
	require.NoError(t, err)

	q.Push(10, 5)
	q.Push(20, 2)
	q.Push(30, 8)
	q.Push(40, 2)

	var order []int32
	for !q.Empty() {
		v, err := q.Pop()
		require.NoError(t, err)
		order = append(order, v)
	}
	// key=2 bucket holds [20,40] pushed in that order -> LIFO pop is 40,20;
	// then key 5 (10) and key 8 (30).
	require.Equal(t, []int32{40, 20, 10, 30}, order)
}

func TestPop_Empty(t *testing.T) {
	q, err := bucketqueue.New(10)
	require.NoError(t, err)
	_, err = q.Pop()
	require.True(t, errors.Is(err, bucketqueue.ErrEmpty))
}

func TestPush_CursorPulledBackForNonConsistentKey(t *testing.T) {
	q, err := bucketqueue.New(50)
	require.NoError(t, err)
	q.Push(1, 10)
	q.Push(2, 3) // smaller than the first pushed key
	v, err := q.Pop()
	require.NoError(t, err)
	require.Equal(t, int32(2), v)
	v, err = q.Pop()
	require.NoError(t, err)
	require.Equal(t, int32(1), v)
}

func TestClear_ResetsStateButKeepsUsable(t *testing.T) {
	q, err := bucketqueue.New(20)
	require.NoError(t, err)
	q.Push(1, 5)
	q.Push(2, 7)
	require.Equal(t, 2, q.Len())

	q.Clear()
	require.True(t, q.Empty())
	require.Equal(t, 0, q.Len())

	q.Push(9, 1)
	v, err := q.Pop()
	require.NoError(t, err)
	require.Equal(t, int32(9), v)
}

func TestDuplicateVertexPushesAreMultiset(t *testing.T) {
	q, err := bucketqueue.New(10)
	require.NoError(t, err)
	q.Push(7, 1)
	q.Push(7, 1)
	require.Equal(t, 2, q.Len())
	v1, _ := q.Pop()
	v2, _ := q.Pop()
	require.Equal(t, int32(7), v1)
	require.Equal(t, int32(7), v2)
	require.True(t, q.Empty())
}

func TestMonotonePopOrder_ManyKeys(t *testing.T) {
	q, err := bucketqueue.New(1000)
	require.NoError(t, err)
	keys := []int{42, 1, 999, 17, 0, 500, 3}
	for i, k := range keys {
		q.Push(int32(i), k)
	}
	var last int = -1
	for !q.Empty() {
		// Re-derive key from cursor-bucket behavior indirectly: pop order
		// must be non-decreasing in the key each vertex was pushed at.
		// We track via a parallel map built from the pushes above.
		v, err := q.Pop()
		require.NoError(t, err)
		k := keys[v]
		require.GreaterOrEqual(t, k, last)
		last = k
	}
}

func TestWidth(t *testing.T) {
	q, err := bucketqueue.New(256)
	require.NoError(t, err)
	require.Equal(t, 256, q.Width())
}
