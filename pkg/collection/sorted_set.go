package collection

import (
	"cmp"
	"math"
	"math/rand"

	"github.com/johnjamespj/arrow/pkg/checks"
	"github.com/johnjamespj/arrow/pkg/iterator"
	"github.com/johnjamespj/arrow/pkg/predicate"
	"github.com/johnjamespj/arrow/pkg/util"
)

const defaultEstimateSize = 1024

type SortedSetConfig[V any] struct {
	// EstimateSize sizes the tower height. Zero means 1024.
	EstimateSize int

	// Compare orders the elements; equal elements are duplicates.
	Compare func(a, b V) int
}

type sortedSetNode[V any] struct {
	prev   *sortedSetNode[V]
	levels []*sortedSetNode[V]
	value  V
}

// SortedSet is a skiplist ordered by Compare. It is not safe for
// concurrent use.
type SortedSet[V any] struct {
	head      *sortedSetNode[V]
	tail      *sortedSetNode[V]
	maxHeight int
	size      int
	compare   func(a, b V) int
}

func NewSortedSet[V any](config *SortedSetConfig[V]) (*SortedSet[V], error) {
	if config == nil || config.Compare == nil {
		return nil, checks.NotNil(nil, "compare")
	}
	if err := checks.Nonnegative(config.EstimateSize, "estimate size"); err != nil {
		return nil, err
	}

	estimate := config.EstimateSize
	if estimate == 0 {
		estimate = defaultEstimateSize
	}
	height := max(1, int(math.Ceil(math.Log(float64(estimate))/math.Log(2))))

	return &SortedSet[V]{
		head:      &sortedSetNode[V]{levels: make([]*sortedSetNode[V], height)},
		maxHeight: height,
		compare:   config.Compare,
	}, nil
}

// NewComparableSortedSet orders elements by their CompareTo.
func NewComparableSortedSet[V util.Comparable[V]](estimateSize int) (*SortedSet[V], error) {
	return NewSortedSet(&SortedSetConfig[V]{
		EstimateSize: estimateSize,
		Compare:      util.Compare[V],
	})
}

// NewOrderedSortedSet returns a set of the given values in natural order.
func NewOrderedSortedSet[V cmp.Ordered](values ...V) *SortedSet[V] {
	s, _ := NewSortedSet(&SortedSetConfig[V]{
		EstimateSize: max(len(values), defaultEstimateSize),
		Compare:      cmp.Compare[V],
	})
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s *SortedSet[V]) Size() int {
	return s.size
}

func (s *SortedSet[V]) IsEmpty() bool {
	return s.size == 0
}

// getPathStack returns, per level, the last node whose value is strictly
// less than value.
func (s *SortedSet[V]) getPathStack(value V) []*sortedSetNode[V] {
	stack := make([]*sortedSetNode[V], s.maxHeight)
	current := s.head
	for level := s.maxHeight - 1; level >= 0; level-- {
		for next := current.levels[level]; next != nil && s.compare(next.value, value) < 0; next = current.levels[level] {
			current = next
		}
		stack[level] = current
	}
	return stack
}

func (s *SortedSet[V]) find(value V) (*sortedSetNode[V], []*sortedSetNode[V]) {
	stack := s.getPathStack(value)
	candidate := stack[0].levels[0]
	if candidate != nil && s.compare(candidate.value, value) == 0 {
		return candidate, stack
	}
	return nil, stack
}

func (s *SortedSet[V]) Contains(v V) (bool, error) {
	node, _ := s.find(v)
	return node != nil, nil
}

// Add inserts v unless an equal element is present.
func (s *SortedSet[V]) Add(v V) (bool, error) {
	node, stack := s.find(v)
	if node != nil {
		return false, nil
	}
	s.insertNode(v, stack)
	s.size++
	return true, nil
}

func (s *SortedSet[V]) insertNode(value V, stack []*sortedSetNode[V]) {
	height := calculateRandomHeight(s.maxHeight)
	node := &sortedSetNode[V]{
		levels: make([]*sortedSetNode[V], height),
		value:  value,
	}
	if stack[0] != s.head {
		node.prev = stack[0]
	}

	for i := 0; i < height; i++ {
		node.levels[i] = stack[i].levels[i]
		stack[i].levels[i] = node
	}

	if node.levels[0] == nil {
		s.tail = node
	} else {
		node.levels[0].prev = node
	}
}

func (s *SortedSet[V]) Remove(v V) (bool, error) {
	node, stack := s.find(v)
	if node == nil {
		return false, nil
	}
	s.unlink(node, stack)
	return true, nil
}

func (s *SortedSet[V]) unlink(node *sortedSetNode[V], stack []*sortedSetNode[V]) {
	for i := range node.levels {
		stack[i].levels[i] = node.levels[i]
	}

	next := node.levels[0]
	if next == nil {
		s.tail = node.prev
	} else {
		next.prev = node.prev
	}
	s.size--
}

func (s *SortedSet[V]) AddAll(values iterator.Iterable[V]) (bool, error) {
	return addAll[V](s, values)
}

func (s *SortedSet[V]) RemoveAll(c predicate.Container[V]) (bool, error) {
	return iterator.RemoveAll(s.Itr(), c)
}

func (s *SortedSet[V]) RetainAll(c predicate.Container[V]) (bool, error) {
	return iterator.RetainAll(s.Itr(), c)
}

func (s *SortedSet[V]) Clear() error {
	clear(s.head.levels)
	s.tail = nil
	s.size = 0
	return nil
}

func (s *SortedSet[V]) ToSlice() []V {
	return iterator.ToList(s.Itr())
}

func (s *SortedSet[V]) Itr() iterator.Iterator[V] {
	return &sortedSetIterator[V]{set: s, current: s.head.levels[0]}
}

// First returns the smallest element.
func (s *SortedSet[V]) First() (V, error) {
	if s.size == 0 {
		return *new(V), checks.ErrNoSuchElement
	}
	return s.head.levels[0].value, nil
}

// Last returns the greatest element.
func (s *SortedSet[V]) Last() (V, error) {
	if s.size == 0 {
		return *new(V), checks.ErrNoSuchElement
	}
	return s.tail.value, nil
}

// Tail iterates, in order, the elements greater than or equal to from.
func (s *SortedSet[V]) Tail(from V) *iterator.BaseIterable[V] {
	return iterator.BaseIterableFrom(func() iterator.Iterator[V] {
		stack := s.getPathStack(from)
		return &sortedSetIterator[V]{set: s, current: stack[0].levels[0]}
	})
}

func (s *SortedSet[V]) Backward() *iterator.BaseIterable[V] {
	return iterator.BaseIterableFrom(func() iterator.Iterator[V] {
		return &sortedSetReverseIterator[V]{current: s.tail}
	})
}

func (s *SortedSet[V]) String() string {
	return iterator.ToString(s.Itr())
}

func calculateRandomHeight(maxHeight int) int {
	num := rand.Intn(1 << 30)
	height := 1

	for (num&1) != 0 && height < maxHeight {
		height++
		num >>= 1
	}

	return height
}

type sortedSetIterator[V any] struct {
	set          *SortedSet[V]
	current      *sortedSetNode[V]
	lastReturned *sortedSetNode[V]
}

func (it *sortedSetIterator[V]) HasNext() bool {
	return it.current != nil
}

func (it *sortedSetIterator[V]) Move() (V, bool) {
	if it.current == nil {
		return *new(V), false
	}
	it.lastReturned = it.current
	it.current = it.current.levels[0]
	return it.lastReturned.value, true
}

func (it *sortedSetIterator[V]) Remove() error {
	if err := checks.Remove(it.lastReturned != nil); err != nil {
		return err
	}
	node, stack := it.set.find(it.lastReturned.value)
	if node != nil {
		it.set.unlink(node, stack)
	}
	it.lastReturned = nil
	return nil
}

type sortedSetReverseIterator[V any] struct {
	current *sortedSetNode[V]
}

func (it *sortedSetReverseIterator[V]) HasNext() bool {
	return it.current != nil
}

func (it *sortedSetReverseIterator[V]) Move() (V, bool) {
	if it.current == nil {
		return *new(V), false
	}
	value := it.current.value
	it.current = it.current.prev
	return value, true
}
