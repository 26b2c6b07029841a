// Command gymctl is the operator CLI for the reservation engine.
//
// It reads the same environment as the API server (DB_*, JWT_*, ORDER_*, ENGINE_TIMEZONE).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
