package main

import (
	"bufio"
	"os"

	"github.com/chronos-tachyon/go-autolog"
	"github.com/rs/zerolog/log"

	"github.com/chronos-tachyon/dsa-demo/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	autolog.Init()
	defer func() {
		err := autolog.Done()
		if err != nil {
			panic(err)
		}
	}()

	stdout := bufio.NewWriter(os.Stdout)
	code := cli.Run(os.Args[1:], stdout)
	if err := stdout.Flush(); err != nil {
		log.Logger.Error().
			Err(err).
			Msg("failed to flush standard output")
		code = 1
	}
	return code
}
