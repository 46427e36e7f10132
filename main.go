package main

import (
	"os"

	"github.com/steamseek/steamseek/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
