// Package main provides a pointer to the real entry point.
// lc3vm is an LC-3 instruction-set emulator.
//
// For the full CLI, use: go run ./cmd/lc3vm
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("lc3vm - LC-3 instruction-set emulator")
	fmt.Println("")
	fmt.Println("Usage: lc3vm [options] <image-file>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -v, --verbose       Enable debug logging")
	fmt.Println("  --profile <path>    Load a cycle-cost profile config")
	fmt.Println("  --profile-out <path> Write per-opcode cycle totals on halt")
	fmt.Println("  --no-raw            Skip raw terminal mode setup")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/lc3vm' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/lc3vm' instead.")
	}
}
