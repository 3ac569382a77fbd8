// =============================================================================
// moxbox - Check Command
// =============================================================================
//
// This file defines the 'check' command, which inspects an inventory
// export without converting it. It reports everything the converter would
// silently default: missing recognized columns, edition codes with no
// known set name, and unparseable purchase prices.
//
// COMMAND USAGE:
//   moxbox check <input> [--report <file>]
//
// The command never fails because of row content; it fails only when the
// input file itself cannot be read.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardbench/moxbox/internal/converter"
	"github.com/cardbench/moxbox/internal/validation"
	"github.com/cardbench/moxbox/pkg/fileutil"
)

// reportPath optionally receives the formatted report.
var reportPath string

// =============================================================================
// CHECK COMMAND DEFINITION
// =============================================================================

// checkCmd represents the 'check' command.
var checkCmd = &cobra.Command{
	Use:   "check <input>",
	Short: "Inspect an inventory export without converting it",
	Long: `The check command parses an inventory export and reports anything the
conversion would silently paper over:

  - recognized columns missing from the header
  - edition codes with no known set name (Edition will be empty)
  - purchase prices that will default to $0.00

Use it before a large import to catch typo'd edition codes while they are
still easy to fix in the source collection.`,

	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(args[0])
	},
}

// init registers the check command with the root command and its flags.
func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(
		&reportPath,
		"report",
		"",
		"Also write the report to this file",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runCheck inspects one input file and prints the report.
func runCheck(inputPath string) error {
	_, tables, err := setup()
	if err != nil {
		return err
	}

	doc, err := converter.LoadDocument(inputPath)
	if err != nil {
		return err
	}

	report := validation.Inspect(doc, tables)
	formatted := report.Format()
	fmt.Print(formatted)

	if reportPath != "" {
		if err := fileutil.WriteFileAtomic(reportPath, []byte(formatted)); err != nil {
			return err
		}
		fmt.Printf("Report written to: %s\n", reportPath)
	}

	return nil
}
