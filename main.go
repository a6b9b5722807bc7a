package main

import (
	"os"

	"github.com/mockview/mockview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
