package iterator

type state int

const (
	// seeking: no element is buffered; the next HasNext pulls from the source.
	seeking state = iota
	// ready: next holds the element Move will return.
	ready
	// done: the source produced its last element. Terminal.
	done
)

// lookahead buffers one element computed by compute. Adapters that must
// read ahead to answer HasNext embed it and supply compute.
type lookahead[V any] struct {
	state   state
	next    V
	compute func() (V, bool)
}

func (l *lookahead[V]) HasNext() bool {
	switch l.state {
	case ready:
		return true
	case done:
		return false
	}

	v, ok := l.compute()
	if !ok {
		l.state = done
		l.next = *new(V)
		return false
	}
	l.next = v
	l.state = ready
	return true
}

func (l *lookahead[V]) Move() (V, bool) {
	if !l.HasNext() {
		return *new(V), false
	}
	v := l.next
	l.next = *new(V)
	l.state = seeking
	return v, true
}
