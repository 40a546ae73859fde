package main

import (
	"os"

	"github.com/jmarlow/hamprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
