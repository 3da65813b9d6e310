package joiner

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, "1, 2, 3", Join(Standard, slices.Values([]int{1, 2, 3})))
	assert.Equal(t, "", Join(Standard, slices.Values([]int{})))
	assert.Equal(t, "a|b", Join(On("|"), slices.Values([]string{"a", "b"})))
}

func TestJoin_Nils(t *testing.T) {
	one := 1
	values := []*int{&one, nil}

	assert.Equal(t, "a, null, b", Join(Standard, slices.Values([]any{"a", nil, "b"})))
	assert.Equal(t, "a, b", Join(On(", ").SkipNils(), slices.Values([]any{"a", nil, "b"})))
	assert.Equal(t, "<nil>", Join(On(","), slices.Values([]any{nil})))
	assert.Equal(t, "null", Join(Standard, slices.Values(values[1:])))
}

func TestAppendTo(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("[")
	AppendTo(Standard, &sb, slices.Values([]string{"x", "y"})).WriteString("]")
	assert.Equal(t, "[x, y]", sb.String())
}
