package main

import (
	"fmt"
	"os"

	"github.com/roach88/enumview/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "enumview: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
