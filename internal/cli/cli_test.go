package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chronos-tachyon/dsa-demo/internal/demo"
)

const header = "🎯 Data Structures & Algorithms Demo\n\n"

func usageText() string {
	var buf bytes.Buffer
	Usage(&buf)
	return buf.String()
}

func TestUsage(t *testing.T) {
	expect := "" +
		"Usage: dsa-demo [demo-name]\n" +
		"\n" +
		"Available demos:\n" +
		"  stack    - Demonstrate stack data structure\n" +
		"  search   - Demonstrate binary search algorithm\n" +
		"  all      - Run all demonstrations\n" +
		"\n" +
		"Examples:\n" +
		"  dsa-demo stack\n" +
		"  dsa-demo search\n" +
		"  dsa-demo all\n"
	assert.Equal(t, expect, usageText())
}

func TestRunHelp(t *testing.T) {
	tests := [][]string{
		nil,
		{},
		{"--help"},
		{"-h"},
		{"stack", "--help"},
		{"bogus", "-h"},
	}

	for _, args := range tests {
		var buf bytes.Buffer
		code := Run(args, &buf)
		assert.Equal(t, ExitOK, code, "args %q", args)
		assert.Equal(t, header+usageText(), buf.String(), "args %q", args)
	}
}

func TestRunDemos(t *testing.T) {
	render := func(fn func(*bytes.Buffer)) string {
		var buf bytes.Buffer
		fn(&buf)
		return buf.String()
	}
	stackOut := render(func(b *bytes.Buffer) { demo.Stack(b) })
	searchOut := render(func(b *bytes.Buffer) { demo.Search(b) })

	tests := []struct {
		args   []string
		expect string
	}{
		{[]string{"stack"}, stackOut},
		{[]string{"STACK"}, stackOut},
		{[]string{"search"}, searchOut},
		{[]string{"Search", "ignored"}, searchOut},
		{[]string{"all"}, stackOut + searchOut},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		code := Run(tt.args, &buf)
		assert.Equal(t, ExitOK, code, "args %q", tt.args)
		assert.Equal(t, header+tt.expect, buf.String(), "args %q", tt.args)
	}
}

func TestRunUnknown(t *testing.T) {
	var buf bytes.Buffer
	code := Run([]string{"Bogus"}, &buf)
	assert.Equal(t, ExitUnknown, code)
	assert.NotEqual(t, 0, code)

	out := buf.String()
	assert.Equal(t, header+"❌ Unknown demo: bogus\nRun with --help for available options\n", out)
	assert.False(t, strings.Contains(out, "Usage:"))
}
