package main

import (
	"fmt"
	"os"

	"redeggs/cmd/redeggs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "redeggs: %v\n", err)
		os.Exit(1)
	}
}
