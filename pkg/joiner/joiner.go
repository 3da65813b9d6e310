// Package joiner formats sequences into delimited strings.
package joiner

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// Joiner is immutable; the configuration methods return modified copies.
type Joiner struct {
	separator string
	nilText   string
	useNil    bool
	skipNils  bool
}

// Standard is the joiner behind every ToString in this module.
var Standard = On(", ").UseForNil("null")

func On(separator string) Joiner {
	return Joiner{separator: separator}
}

// UseForNil renders nil elements as text instead of "<nil>".
func (j Joiner) UseForNil(text string) Joiner {
	j.nilText = text
	j.useNil = true
	j.skipNils = false
	return j
}

func (j Joiner) SkipNils() Joiner {
	j.skipNils = true
	j.useNil = false
	return j
}

func Join[V any](j Joiner, seq iter.Seq[V]) string {
	var sb strings.Builder
	AppendTo(j, &sb, seq)
	return sb.String()
}

func AppendTo[V any](j Joiner, sb *strings.Builder, seq iter.Seq[V]) *strings.Builder {
	first := true
	for v := range seq {
		text, ok := j.format(v)
		if !ok {
			continue
		}
		if !first {
			sb.WriteString(j.separator)
		}
		sb.WriteString(text)
		first = false
	}
	return sb
}

func (j Joiner) format(v any) (string, bool) {
	if isNil(v) {
		if j.skipNils {
			return "", false
		}
		if j.useNil {
			return j.nilText, true
		}
	}
	return fmt.Sprint(v), true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
