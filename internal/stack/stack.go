package stack

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/mo"
)

// Absent is how a missing element is rendered in traces.
const Absent = "<none>"

// Stack is a LIFO container that narrates every mutation to out.
type Stack[T any] struct {
	items []T
	out   io.Writer
}

func New[T any](out io.Writer) *Stack[T] {
	if out == nil {
		out = io.Discard
	}
	return &Stack[T]{out: out}
}

func (st *Stack[T]) IsEmpty() bool {
	return len(st.items) <= 0
}

func (st *Stack[T]) Len() int {
	return len(st.items)
}

func (st *Stack[T]) Peek() mo.Option[T] {
	if st.IsEmpty() {
		return mo.None[T]()
	}
	n := st.Len()
	return mo.Some(st.items[n-1])
}

func (st *Stack[T]) Push(item T) {
	st.items = append(st.items, item)
	fmt.Fprintf(st.out, "📚 Pushed: %v\n", item)
	st.display()
}

// Pop removes the top element. An empty stack yields None but is still traced.
func (st *Stack[T]) Pop() mo.Option[T] {
	result := mo.None[T]()
	if !st.IsEmpty() {
		n := st.Len() - 1
		result = mo.Some(st.items[n])
		var zero T
		st.items[n] = zero
		st.items = st.items[:n]
	}
	fmt.Fprintf(st.out, "🗑️  Popped: %s\n", Format(result))
	st.display()
	return result
}

// Items returns a copy of the contents, bottom first.
func (st *Stack[T]) Items() []T {
	out := make([]T, len(st.items))
	copy(out, st.items)
	return out
}

func (st *Stack[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range st.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", item)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (st *Stack[T]) display() {
	fmt.Fprintf(st.out, "Stack: %s\n", st.String())
	fmt.Fprintf(st.out, "Size: %d\n\n", st.Len())
}

// Format renders an optional element, using Absent for None.
func Format[T any](opt mo.Option[T]) string {
	if value, ok := opt.Get(); ok {
		return fmt.Sprint(value)
	}
	return Absent
}
