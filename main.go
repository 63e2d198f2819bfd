package main

import (
	"os"

	"github.com/fluentpath/fluentpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
