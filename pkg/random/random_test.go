package random_test

import (
	"slices"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ophite/pkg/random"
)

func TestShuffle(t *testing.T) {
	t.Parallel()

	t.Run("same seed same permutation", func(t *testing.T) {
		t.Parallel()

		a := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		b := slices.Clone(a)
		random.Shuffle(random.New(7), a)
		random.Shuffle(random.New(7), b)
		assert.Equal(t, a, b)
	})

	t.Run("keeps every element", func(t *testing.T) {
		t.Parallel()

		items := []string{"a", "b", "c", "d", "e"}
		random.Shuffle(random.NewFromTime(), items)
		sorted := slices.Clone(items)
		slices.Sort(sorted)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, sorted)
	})

	t.Run("changes order", func(t *testing.T) {
		t.Parallel()

		src := random.New(1)
		original := make([]int, 50)
		for i := range original {
			original[i] = i
		}
		items := slices.Clone(original)
		random.Shuffle(src, items)
		assert.NotEqual(t, original, items)
	})

	t.Run("short slices", func(t *testing.T) {
		t.Parallel()

		var empty []int
		random.Shuffle(random.New(1), empty)
		assert.Nil(t, empty)

		one := []int{42}
		random.Shuffle(random.New(1), one)
		assert.Equal(t, []int{42}, one)
	})
}

func TestSource(t *testing.T) {
	t.Parallel()

	src := random.New(3)
	for range 100 {
		v := src.Intn(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)

		f := src.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)

		assert.GreaterOrEqual(t, src.Int63(), int64(0))
	}
	assert.Equal(t, 0, src.Intn(0))
	assert.Equal(t, 0, src.Intn(-5))

	v, ok := random.Pick(src, []string{"only"})
	require.True(t, ok)
	assert.Equal(t, "only", v)

	_, ok = random.Pick[int](src, nil)
	assert.False(t, ok)
}

func TestSource_Concurrent(t *testing.T) {
	t.Parallel()

	src := random.New(99)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items := []int{1, 2, 3, 4}
			for range 100 {
				random.Shuffle(src, items)
				_ = src.Intn(100)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkShuffle(b *testing.B) {
	src := random.New(1)
	items := make([]int, 1000)
	for b.Loop() {
		random.Shuffle(src, items)
	}
}

func TestUUID(t *testing.T) {
	t.Parallel()

	a, b := random.New(42), random.New(42)
	first := random.UUID(a)
	assert.Equal(t, first, random.UUID(b))
	assert.Equal(t, uuid.Version(4), first.Version())
	assert.Equal(t, uuid.RFC4122, first.Variant())
	assert.NotEqual(t, first, random.UUID(a))
}
