package commands

import (
	"github.com/spf13/cobra"
)

const progName = "Testrunner"

// Global flags
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dynbench",
	Short: "Dynamic array test runner",
	Long: `dynbench times the dynamic array operations and verifies their results.

Examples:
  # Run every timed test 1000 times
  dynbench run 1000

  # Use a config file and print YAML
  dynbench run --config bench.yaml -o yaml
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Command returns the root cobra command for mounting into a parent CLI.
func Command() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "suite config file (YAML)")

	rootCmd.AddCommand(runCmd)
}
