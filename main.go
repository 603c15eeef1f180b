package main

import (
	"os"

	"github.com/abhisek/maplecheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
