package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/envfile/packages/envfile"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <directory>...",
	Short: "Check that directories can receive a .env file",
	Long: `Check that each directory exists and is a directory, without writing anything.

Examples:
  envfile check ./deploy
  envfile check ./api ./worker`,
	Args:          cobra.MinimumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          checkCommand,
}

func checkCommand(cmd *cobra.Command, args []string) error {
	hasErrors := false
	for _, dir := range args {
		if err := envfile.ValidateDirectory(dir); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			hasErrors = true
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", dir)
		}
	}

	if hasErrors {
		return &exitError{code: ExitInvalidInput, err: fmt.Errorf("check failed")}
	}

	return nil
}
