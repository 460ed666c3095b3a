// sonic serves the operations dashboard shell and manages its theme profiles.
package main

import (
	"os"

	"github.com/sonicdash/sonic/cmd/sonic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
