package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func numbers(n int) *BaseIterable[int] {
	return NewGeneratorIterable(func(idx int) int { return idx + 1 }, n)
}

func TestBaseIterable_Restartable(t *testing.T) {
	evens := numbers(6).Where(isEven)
	assert.Equal(t, []int{2, 4, 6}, evens.ToList())
	assert.Equal(t, []int{2, 4, 6}, evens.ToList(), "every cursor re-runs the chain")
}

func TestBaseIterable_TakeSkip(t *testing.T) {
	assert.Equal(t, []int{1, 2}, numbers(5).Take(2).ToList())
	assert.Empty(t, numbers(5).Take(0).ToList())
	assert.Equal(t, []int{4, 5}, numbers(5).Skip(3).ToList())
	assert.Empty(t, numbers(2).Skip(3).ToList())

	it := numbers(3).Take(2).Itr()
	it.Move()
	it.Move()
	assert.False(t, it.HasNext())
}

func TestBaseIterable_TakeWhileSkipWhile(t *testing.T) {
	small := func(v int) bool { return v < 3 }

	assert.Equal(t, []int{1, 2}, numbers(5).TakeWhile(small).ToList())
	assert.Equal(t, []int{3, 4, 5}, numbers(5).SkipWhile(small).ToList())
	assert.Empty(t, numbers(2).SkipWhile(small).ToList())

	it := numbers(5).TakeWhile(small).Itr()
	assert.Equal(t, 2, Size(it))
	assert.False(t, it.HasNext(), "TakeWhile stays done after the first miss")
}

func TestBaseIterable_FollowedBy(t *testing.T) {
	chained := numbers(2).FollowedBy(NewEmptyIterable[int](), NewSliceIterable([]int{7, 8}))
	assert.Equal(t, []int{1, 2, 7, 8}, chained.ToList())
	assert.Equal(t, []int{1, 2, 7, 8}, chained.ToList())
	assert.Equal(t, "[1, 2, 7, 8]", chained.String())
}

func TestBaseIterable_Reversed(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, numbers(3).Reversed().ToList())
	assert.False(t, numbers(0).Reversed().Itr().HasNext())
}

func TestBaseIterable_AnyEveryForEach(t *testing.T) {
	assert.True(t, numbers(3).Any(isEven))
	assert.False(t, numbers(3).Every(isEven))

	sum := 0
	numbers(4).ForEach(func(v int) { sum += v })
	assert.Equal(t, 10, sum)
}

func TestFrom(t *testing.T) {
	base := numbers(3)
	assert.Same(t, base, From[int](base))
	assert.Equal(t, []int{1, 2, 3}, From[int](NewSliceIterable([]int{1, 2, 3})).ToList())
}

func TestMap(t *testing.T) {
	doubled := Map[int, int](numbers(3), func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled.ToList())
}
