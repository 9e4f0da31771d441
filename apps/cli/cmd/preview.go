package cmd

import (
	"fmt"
	"os"

	"github.com/abdul-hamid-achik/envfile/packages/core/env"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the .env content without writing it",
	Long: `Print the content run would write, followed by a newline. Nothing is
written and no directory is needed.

Examples:
  envfile preview --full-text "  PROD=1"
  envfile preview --text-file env.txt --include-env-vars`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         previewCommand,
}

var (
	previewTextFlag    string
	previewFileFlag    string
	previewIncludeFlag bool
)

func init() {
	previewCmd.Flags().StringVar(&previewTextFlag, "full-text", "", "Text of the .env file")
	previewCmd.Flags().StringVar(&previewFileFlag, "text-file", "", "Read the text of the .env file from a file")
	previewCmd.Flags().BoolVar(&previewIncludeFlag, "include-env-vars", false, "Append ACTION_CREATE_ENV_* variables")
}

func previewCommand(cmd *cobra.Command, args []string) error {
	text := previewTextFlag
	if previewFileFlag != "" {
		data, err := os.ReadFile(previewFileFlag)
		if err != nil {
			return &exitError{code: ExitFailure, err: fmt.Errorf("cannot read text file: %w", err)}
		}
		text = string(data)
	}

	req := env.Request{FullText: text, IncludeEnvVars: previewIncludeFlag}
	fmt.Fprintln(cmd.OutOrStdout(), env.Compose(req, env.Snapshot(os.Environ())))
	return nil
}
