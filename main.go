package main

import (
	"os"

	"github.com/markschellhas/chic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
