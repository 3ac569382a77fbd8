// =============================================================================
// moxbox - Main Entry Point
// =============================================================================
//
// moxbox converts a Moxfield card-inventory export into a CSV file that
// Deckbox can import. It remaps column names, translates set-edition codes
// through static lookup tables, and normalizes purchase prices to a fixed
// two-decimal currency string.
//
// USAGE:
//   moxbox convert <input> <output>  - Convert an inventory export
//   moxbox check <input>             - Inspect an export without converting
//   moxbox sets                      - List the known edition mappings
//   moxbox version                   - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core conversion logic (not for external import)
//   - pkg/       : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/cardbench/moxbox/cmd"
)

// main is the entry point of the application.
// It delegates command execution to the cmd package, which initializes
// and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
