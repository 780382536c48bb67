// Command activeplan plans valve activations over a cave description.
//
// Usage:
//
//	activeplan solve [file] [--budget 30] [--agents 1] [--plan]
//	activeplan distances [file]
//
// With no file (or "-") the description is read from stdin.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
