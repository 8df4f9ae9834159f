package search

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// NotFound is returned when the target is absent.
const NotFound = -1

type Decision byte

const (
	DecisionFound Decision = iota
	DecisionRight
	DecisionLeft
)

var decisionNames = [...]string{
	"DecisionFound",
	"DecisionRight",
	"DecisionLeft",
}

func (d Decision) GoString() string {
	return decisionNames[d]
}

func (d Decision) String() string {
	return decisionNames[d]
}

// Step records one probe of the bisection.
type Step[N cmp.Ordered] struct {
	Left     int
	Right    int
	Mid      int
	Value    N
	Decision Decision
}

// Steps bisects arr for target and returns every probe in order. arr must be
// non-decreasing. When target occurs more than once, the search stops at
// whichever occurrence it probes first.
func Steps[N cmp.Ordered](arr []N, target N) []Step[N] {
	var steps []Step[N]
	left, right := 0, len(arr)-1
	for left <= right {
		mid := left + (right-left)/2
		step := Step[N]{Left: left, Right: right, Mid: mid, Value: arr[mid]}
		switch c := cmp.Compare(arr[mid], target); {
		case c == 0:
			step.Decision = DecisionFound
			return append(steps, step)
		case c < 0:
			step.Decision = DecisionRight
			left = mid + 1
		default:
			step.Decision = DecisionLeft
			right = mid - 1
		}
		steps = append(steps, step)
	}
	return steps
}

// Index returns the index Steps settled on, or NotFound.
func Index[N cmp.Ordered](steps []Step[N]) int {
	if n := len(steps); n > 0 && steps[n-1].Decision == DecisionFound {
		return steps[n-1].Mid
	}
	return NotFound
}

// BinarySearch returns an index i with arr[i] == target, or NotFound, and
// narrates each probe to out.
func BinarySearch[N cmp.Ordered](out io.Writer, arr []N, target N) int {
	if out == nil {
		out = io.Discard
	}

	fmt.Fprintf(out, "🔍 Searching for %v in [%s]\n", target, join(arr))

	steps := Steps(arr, target)
	for _, step := range steps {
		fmt.Fprintf(out, "   Checking index %d (value: %v)\n", step.Mid, step.Value)
		switch step.Decision {
		case DecisionRight:
			fmt.Fprintln(out, "   Target is larger, searching right half")
		case DecisionLeft:
			fmt.Fprintln(out, "   Target is smaller, searching left half")
		}
	}

	index := Index(steps)
	if index == NotFound {
		fmt.Fprintf(out, "❌ %v not found in array\n\n", target)
	} else {
		fmt.Fprintf(out, "✅ Found %v at index %d!\n\n", target, index)
	}
	return index
}

func join[N any](arr []N) string {
	parts := make([]string, len(arr))
	for i, v := range arr {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
