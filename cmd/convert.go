// =============================================================================
// moxbox - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, which performs the actual
// conversion of one inventory export into one Deckbox import CSV.
//
// COMMAND USAGE:
//   moxbox convert <input> <output>
//
// PROCESSING PIPELINE:
//   1. Load configuration and build the edition tables
//   2. Parse the input file (CSV or XLSX, picked by extension)
//   3. Convert each row independently
//   4. Write the 19-column output CSV
//   5. Print a summary
//
// Row-level problems never fail the command; only file-level I/O errors do.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardbench/moxbox/internal/converter"
	"github.com/cardbench/moxbox/pkg/fileutil"
)

// =============================================================================
// CONVERT COMMAND DEFINITION
// =============================================================================

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert an inventory export to a Deckbox import CSV",
	Long: `The convert command reads a Moxfield inventory export and writes a CSV
file in the Deckbox import format.

The input may be a CSV export or an XLSX workbook; the format is picked by
file extension. The output always carries the 19 Deckbox columns in their
fixed order.

Rows are converted independently and leniently: an edition code with no
known set name produces an empty Edition column, and a purchase price that
cannot be parsed defaults to $0.00. One bad row never aborts the batch.`,

	Args: cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0], args[1])
	},
}

// init registers the convert command with the root command.
func init() {
	rootCmd.AddCommand(convertCmd)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runConvert executes the conversion pipeline for one file pair.
func runConvert(inputPath, outputPath string) error {
	_, tables, err := setup()
	if err != nil {
		return err
	}

	if !fileutil.FileExists(inputPath) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	result, err := converter.NewRunner(inputPath, outputPath, tables).Run()
	if err != nil {
		return err
	}

	fmt.Printf("Converted %d row(s) in %s\n",
		result.Stats.RowsProcessed, result.Stats.ProcessingTime)
	fmt.Printf("Conversion complete! Output written to: %s\n", result.OutputFile)

	return nil
}
