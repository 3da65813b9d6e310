package iterables

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/go-softwarelab/common/pkg/slogx"
	"github.com/johnjamespj/arrow/pkg/checks"
	"github.com/johnjamespj/arrow/pkg/collection"
	"github.com/johnjamespj/arrow/pkg/predicate"
	"github.com/johnjamespj/arrow/pkg/util"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frozenList is a random-access list that accepts only setsLeft calls to
// Set before failing with checks.ErrUnsupportedOperation.
type frozenList struct {
	*collection.ArrayList[int]
	setsLeft int
}

func (f *frozenList) Set(index, v int) (int, error) {
	if f.setsLeft == 0 {
		return 0, checks.ErrUnsupportedOperation
	}
	f.setsLeft--
	return f.ArrayList.Set(index, v)
}

func TestRemoveIf_RandomAccess(t *testing.T) {
	spy := newSpyList(1, 2, 3, 4, 5, 6)

	changed, err := RemoveIf[int](spy, isEven)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{1, 3, 5}, spy.ToSlice())
	assert.Zero(t, spy.itrCalls, "random-access lists are compacted in place")

	changed, err = RemoveIf[int](spy, isEven)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, []int{1, 3, 5}, spy.ToSlice())
}

func TestRemoveIf_Sequential(t *testing.T) {
	l := collection.NewLinkedList(1, 2, 3, 4, 5, 6)

	changed, err := RemoveIf[int](l, isEven)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{1, 3, 5}, l.ToSlice())

	_, err = RemoveIf(plain(1, 2), isEven)
	assert.ErrorIs(t, err, checks.ErrUnsupportedOperation)

	_, err = RemoveIf[int](l, nil)
	assert.ErrorIs(t, err, checks.ErrNullReference)
}

// TestRemoveIf_FallbackMatchesCompaction interrupts compaction after every
// possible number of successful overwrites.
func TestRemoveIf_FallbackMatchesCompaction(t *testing.T) {
	inputs := [][]int{
		lo.Range(12),
		{2, 4, 6, 1, 3, 5},
		{1, 3, 5, 2, 4, 6},
		{1, 2, 2, 3, 3, 4, 4, 5},
		{2, 2, 2},
		{1},
		{},
	}
	preds := map[string]predicate.Predicate[int]{
		"even":       isEven,
		"small":      func(v int) bool { return v < 3 },
		"none":       predicate.AlwaysFalse[int](),
		"everything": predicate.AlwaysTrue[int](),
	}

	for name, pred := range preds {
		for _, input := range inputs {
			expected := lo.Filter(input, func(v, _ int) bool { return !pred(v) })

			for sets := 0; sets <= len(input); sets++ {
				l := &frozenList{ArrayList: collection.NewArrayList(input...), setsLeft: sets}

				changed, err := RemoveIf[int](l, pred)
				require.NoError(t, err, "%s %v sets=%d", name, input, sets)
				assert.Equal(t, len(expected) != len(input), changed, "%s %v sets=%d", name, input, sets)
				assert.Equal(t, expected, append([]int{}, l.ToSlice()...), "%s %v sets=%d", name, input, sets)
			}
		}
	}
}

func TestRemoveIf_LogsFallback(t *testing.T) {
	var buf bytes.Buffer
	util.SetLogger(slogx.NewBuilder().
		WithSlogLevel(slog.LevelDebug).
		WritingTo(&buf).
		WithTextFormat().
		Logger())
	defer util.SetLogger(nil)

	l := &frozenList{ArrayList: collection.NewArrayList(1, 2, 3, 4)}
	_, err := RemoveIf[int](l, isEven)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, l.ToSlice())
	assert.Contains(t, buf.String(), "removing remaining matches one by one")
}

func TestRemoveFirstMatching(t *testing.T) {
	l := collection.NewArrayList(1, 2, 3, 4)

	removed, err := RemoveFirstMatching[int](l, isEven)
	require.NoError(t, err)
	assert.Equal(t, 2, removed.MustGet())
	assert.Equal(t, []int{1, 3, 4}, l.ToSlice())

	removed, err = RemoveFirstMatching[int](l, func(v int) bool { return v > 10 })
	require.NoError(t, err)
	assert.False(t, removed.IsPresent())

	_, err = RemoveFirstMatching(plain(2), isEven)
	assert.ErrorIs(t, err, checks.ErrUnsupportedOperation)
}
