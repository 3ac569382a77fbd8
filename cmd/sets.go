// =============================================================================
// moxbox - Sets Command
// =============================================================================
//
// This file defines the 'sets' command, which lists the edition mappings
// the converter knows about: the code remappings and the code -> set name
// table, including any overlays from the configuration file.
//
// COMMAND USAGE:
//   moxbox sets
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// setsCmd represents the 'sets' command.
var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List the known edition code and set name mappings",
	Long: `The sets command prints the edition lookup tables in effect: the codes
Deckbox spells differently than Moxfield, and the code -> set name table
used to fill the Edition column. Overlays from the configuration file are
included.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runSets()
	},
}

// init registers the sets command with the root command.
func init() {
	rootCmd.AddCommand(setsCmd)
}

// runSets prints both lookup tables sorted by code.
func runSets() error {
	_, tables, err := setup()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	codes := tables.Codes()
	fmt.Fprintln(w, "Edition code remappings (Moxfield -> Deckbox):")
	for _, code := range sortedKeys(codes) {
		fmt.Fprintf(w, "  %s\t%s\n", code, codes[code])
	}

	fmt.Fprintln(w, "\nSet names by edition code:")
	names := tables.Names()
	for _, code := range sortedKeys(names) {
		fmt.Fprintf(w, "  %s\t%s\n", code, names[code])
	}

	return w.Flush()
}

// sortedKeys returns the map keys in sorted order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
