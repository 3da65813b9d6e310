package predicate

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultMemoizeSize = 256

type MemoizeConfig struct {
	// Size bounds the number of remembered answers. Zero means 256.
	Size int
}

// Memoize remembers the answers of an expensive pure predicate in an LRU
// cache. T must be comparable at run time; interface values holding
// slices or maps panic on lookup.
func Memoize[T comparable](p Predicate[T], config *MemoizeConfig) (Predicate[T], error) {
	size := defaultMemoizeSize
	if config != nil && config.Size > 0 {
		size = config.Size
	}

	cache, err := lru.New[T, bool](size)
	if err != nil {
		return nil, err
	}

	return func(v T) bool {
		if answer, ok := cache.Get(v); ok {
			return answer
		}
		answer := p(v)
		cache.Add(v, answer)
		return answer
	}, nil
}
