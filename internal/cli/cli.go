// Package cli turns an argument list into demo output and an exit status.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/chronos-tachyon/dsa-demo/internal/demo"
)

const (
	ExitOK      = 0
	ExitUnknown = 1
)

const programName = "dsa-demo"

func wantsHelp(args []string) bool {
	if len(args) <= 0 {
		return true
	}
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

func Usage(out io.Writer) {
	fmt.Fprintf(out, "Usage: %s [demo-name]\n", programName)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Available demos:")
	for _, d := range demo.All {
		fmt.Fprintf(out, "  %-8s - %s\n", d.Name, d.Description)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	for _, d := range demo.All {
		fmt.Fprintf(out, "  %s %s\n", programName, d.Name)
	}
}

// Run writes everything to out and returns the process exit status. Only
// args[0] selects a demo; help flags anywhere take precedence.
func Run(args []string, out io.Writer) int {
	fmt.Fprintln(out, "🎯 Data Structures & Algorithms Demo")
	fmt.Fprintln(out)

	if wantsHelp(args) {
		Usage(out)
		return ExitOK
	}

	d, ok := demo.Lookup(args[0])
	if !ok {
		log.Logger.Warn().
			Str("demo", args[0]).
			Msg("unknown demo")
		fmt.Fprintf(out, "❌ Unknown demo: %s\n", strings.ToLower(args[0]))
		fmt.Fprintln(out, "Run with --help for available options")
		return ExitUnknown
	}

	log.Logger.Debug().
		Str("demo", d.Name).
		Msg("running demo")
	d.Run(out)
	return ExitOK
}
