package main

import (
	"os"

	"github.com/EclecticGriffin/cider-parallel-test/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
