// Package demo holds the narrated walkthroughs and the table of available demos.
package demo

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/chronos-tachyon/dsa-demo/internal/search"
	"github.com/chronos-tachyon/dsa-demo/internal/stack"
)

const bannerWidth = 50

// SortedSample is the fixed input of the search demo.
var SortedSample = []int{2, 5, 8, 12, 16, 23, 38, 45, 67, 78}

type Demo struct {
	Name        string
	Description string
	Run         func(out io.Writer)
}

// All lists the demos in the order they appear in usage output.
var All = []Demo{
	{Name: "stack", Description: "Demonstrate stack data structure", Run: Stack},
	{Name: "search", Description: "Demonstrate binary search algorithm", Run: Search},
	{Name: "all", Description: "Run all demonstrations", Run: Everything},
}

// Normalize maps a user-supplied selector to the form used for lookup.
func Normalize(name string) string {
	return cases.Fold().String(norm.NFC.String(name))
}

func Lookup(name string) (Demo, bool) {
	name = Normalize(name)
	for _, d := range All {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

func banner(out io.Writer, title string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, rule)
}

func Stack(out io.Writer) {
	banner(out, "📚 STACK DEMONSTRATION")

	st := stack.New[string](out)
	st.Push("First")
	st.Push("Second")
	st.Push("Third")

	fmt.Fprintf(out, "Top element: %s\n", stack.Format(st.Peek()))

	st.Pop()
	st.Pop()

	fmt.Fprintf(out, "Is empty? %t\n", st.IsEmpty())
	fmt.Fprintln(out)
}

func Search(out io.Writer) {
	banner(out, "🔍 BINARY SEARCH DEMONSTRATION")

	// present
	search.BinarySearch(out, SortedSample, 23)
	search.BinarySearch(out, SortedSample, 5)

	// absent
	search.BinarySearch(out, SortedSample, 30)
}

func Everything(out io.Writer) {
	Stack(out)
	Search(out)
}
