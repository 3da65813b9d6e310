package predicate

import (
	"fmt"

	"github.com/blues/jsonata-go"
	"github.com/vmihailenco/msgpack"
)

// Expr is a compiled JSONata expression evaluated against documents.
// Values that are not already documents (maps, slices, scalars) are
// normalized through msgpack, so struct fields are addressed by their
// msgpack names.
type Expr struct {
	source   string
	compiled *jsonata.Expr
}

func CompileExpr(source string) (*Expr, error) {
	compiled, err := jsonata.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", source, err)
	}

	return &Expr{
		source:   source,
		compiled: compiled,
	}, nil
}

func MustCompileExpr(source string) *Expr {
	e, err := CompileExpr(source)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Expr) Eval(value any) (any, error) {
	doc, err := toDocument(value)
	if err != nil {
		return nil, err
	}
	return e.compiled.Eval(doc)
}

func (e *Expr) String() string {
	return e.source
}

// ExprPredicate is true only when e evaluates to boolean true. Errors and
// undefined results are false.
func ExprPredicate[T any](e *Expr) Predicate[T] {
	return func(v T) bool {
		res, err := e.Eval(v)
		if err != nil {
			return false
		}
		b, ok := res.(bool)
		return ok && b
	}
}

func toDocument(value any) (any, error) {
	switch v := value.(type) {
	case nil, bool, string, float64, map[string]any, []any:
		return v, nil
	}

	bin, err := msgpack.Marshal(value)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := msgpack.Unmarshal(bin, &doc); err == nil {
		return normalize(doc), nil
	}

	var generic any
	if err := msgpack.Unmarshal(bin, &generic); err != nil {
		return nil, err
	}
	return normalize(generic), nil
}

// normalize rewrites decoded msgpack values into the shapes JSONata
// expects: string-keyed maps and float64 numbers.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = normalize(item)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, item := range t {
			m[fmt.Sprint(k)] = normalize(item)
		}
		return m
	case []any:
		for i, item := range t {
			t[i] = normalize(item)
		}
		return t
	case int8:
		return float64(t)
	case int16:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case int:
		return float64(t)
	case uint8:
		return float64(t)
	case uint16:
		return float64(t)
	case uint32:
		return float64(t)
	case uint64:
		return float64(t)
	case uint:
		return float64(t)
	case float32:
		return float64(t)
	}
	return v
}
