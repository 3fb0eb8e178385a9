package main

import (
	"os"

	"github.com/jotdown-lang/jotdown/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, exitResult := cli.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	if exitResult := cli.Run(cfg, os.Stdout); exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}
	return 0
}
