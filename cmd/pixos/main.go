package main

import (
	"os"

	"pixos/internal/cli"
)

func main() {
	if err := cli.BuildRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
