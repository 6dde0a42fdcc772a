package main

import (
	"os"

	"github.com/mstoeckl/pfafmt/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
