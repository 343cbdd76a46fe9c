package main

import (
	"os"

	"github.com/patriknoomi/laddtider/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
