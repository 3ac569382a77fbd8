// =============================================================================
// moxbox - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (moxbox)
//   ├── convertCmd (moxbox convert)
//   ├── checkCmd   (moxbox check)
//   ├── setsCmd    (moxbox sets)
//   └── versionCmd (moxbox version)
//
// The root command owns the global flags (--config, --verbose,
// --log-format) and the shared setup that loads configuration, builds the
// edition tables, and configures logging.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cardbench/moxbox/internal/config"
	"github.com/cardbench/moxbox/internal/editions"
	"github.com/cardbench/moxbox/internal/logging"
)

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

// cfgFile holds the path to the optional configuration file.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// logFormat overrides the configured log output format when non-empty.
var logFormat string

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "moxbox",
	Short: "Convert a Moxfield inventory export to a Deckbox import CSV",
	Long: `moxbox converts card-inventory exports from Moxfield into CSV files that
Deckbox can import.

The conversion remaps column names, translates set-edition codes through
static lookup tables, and normalizes purchase prices to a fixed two-decimal
currency string. Bad rows never abort a conversion: unknown edition codes
pass through (with an empty set name) and unparseable prices default to
$0.00.

Example Usage:
  moxbox convert inventory.csv deckbox.csv   # Convert an export
  moxbox check inventory.csv                 # Inspect an export first
  moxbox sets                                # List the known edition mappings`,

	// Without a subcommand there is nothing to do but print help.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"moxbox.yaml",
		"Path to an optional configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	rootCmd.PersistentFlags().StringVar(
		&logFormat,
		"log-format",
		"",
		"Log output format: text or json (default from config)",
	)
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// setup loads the configuration, configures logging, and builds the
// edition lookup tables. The config file is optional unless the user
// pointed at one explicitly with --config.
func setup() (*config.Config, *editions.Tables, error) {
	var (
		cfg *config.Config
		err error
	)
	if rootCmd.PersistentFlags().Changed("config") {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadOptional(cfgFile)
	}
	if err != nil {
		return nil, nil, err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	format := cfg.LogFormat
	if logFormat != "" {
		format = logFormat
	}
	logging.Setup(level, format)

	return cfg, cfg.Tables(), nil
}
