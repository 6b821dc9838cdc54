package main

import (
	"os"

	"github.com/mordilloSan/tallylog/internal/cmd"
)

// Usage: LOG_LEVEL=3 ./tallylog demo
func main() {
	if err := cmd.Run(os.Args[1:], os.Stdout); err != nil {
		os.Exit(1)
	}
}
