package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "envfile",
	Short: "Write .env files from text and environment variables.",
	Long: `envfile writes a .env file into a directory. The content comes from a
block of text, with common indentation removed, optionally followed by every
environment variable prefixed with ACTION_CREATE_ENV_ (the prefix is dropped).

It is meant to run as a CI step, but works just as well from a terminal.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
}
