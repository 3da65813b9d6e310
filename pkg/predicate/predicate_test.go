package predicate

import (
	"fmt"
	"testing"

	"github.com/johnjamespj/arrow/pkg/checks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	even     Predicate[int] = func(v int) bool { return v%2 == 0 }
	positive Predicate[int] = func(v int) bool { return v > 0 }
)

type set map[int]struct{}

func (s set) Contains(v int) (bool, error) {
	_, ok := s[v]
	return ok, nil
}

type brokenContainer struct{}

func (brokenContainer) Contains(int) (bool, error) {
	return true, checks.ErrTypeMismatch
}

func TestCombinators(t *testing.T) {
	assert.True(t, And(even, positive)(4))
	assert.False(t, And(even, positive)(-4))
	assert.True(t, And[int]()(7), "empty And is true")

	assert.True(t, Or(even, positive)(-4))
	assert.False(t, Or(even, positive)(-3))
	assert.False(t, Or[int]()(7), "empty Or is false")

	assert.True(t, Not(even)(3))
	assert.True(t, even.And(positive).Apply(2))
	assert.True(t, even.Or(positive).Apply(1))
	assert.True(t, even.Negate().Apply(1))

	assert.True(t, AlwaysTrue[int]()(0))
	assert.False(t, AlwaysFalse[int]()(0))
}

// TestAnd_DoesNotEvaluateEarly verifies combinators are lazy and short-circuit.
func TestAnd_DoesNotEvaluateEarly(t *testing.T) {
	calls := 0
	counting := Predicate[int](func(int) bool {
		calls++
		return true
	})

	combined := And(even, counting)
	assert.Equal(t, 0, calls)

	combined(3)
	assert.Equal(t, 0, calls, "second operand must not run after a false first operand")

	combined(2)
	assert.Equal(t, 1, calls)
}

func TestEqualTo(t *testing.T) {
	assert.True(t, EqualTo("a")("a"))
	assert.False(t, EqualTo("a")("b"))
}

func TestIn(t *testing.T) {
	in := In[int](set{1: {}, 3: {}})
	assert.True(t, in(1))
	assert.False(t, in(2))

	assert.False(t, In[int](brokenContainer{})(1), "container errors count as not in")
}

type shape interface {
	Area() float64
}

type square struct{ side float64 }

func (s square) Area() float64 { return s.side * s.side }

func TestInstanceOf(t *testing.T) {
	isString := InstanceOf[string, any]()
	assert.True(t, isString("x"))
	assert.False(t, isString(1))
	assert.False(t, isString(nil))

	isShape := InstanceOf[shape, any]()
	assert.True(t, isShape(square{2}))
	assert.False(t, isShape(fmt.Stringer(nil)))
	assert.False(t, isShape(3.0))
}

func TestMemoize(t *testing.T) {
	calls := 0
	slow := Predicate[int](func(v int) bool {
		calls++
		return v%2 == 0
	})

	memo, err := Memoize(slow, &MemoizeConfig{Size: 2})
	require.NoError(t, err)

	assert.True(t, memo(2))
	assert.True(t, memo(2))
	assert.False(t, memo(3))
	assert.Equal(t, 2, calls)

	// 4 evicts 2
	memo(4)
	memo(2)
	assert.Equal(t, 4, calls)
}

func TestMemoize_DefaultConfig(t *testing.T) {
	memo, err := Memoize(even, nil)
	require.NoError(t, err)
	assert.True(t, memo(10))
}
