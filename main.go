package main

import (
	"os"

	"github.com/pkgstrap/pkgstrap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
