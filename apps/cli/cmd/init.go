package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/envfile/packages/core/config"
	"github.com/abdul-hamid-achik/envfile/packages/output"
	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize envfile in the current directory",
	Long: `Initialize envfile in the current directory.

This creates:
  - .envfile.yaml  - Configuration file
  - env.txt        - Example text for --text-file

Examples:
  envfile init
  envfile init --force`,
	Args: cobra.NoArgs,
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
}

const exampleText = `# Written to .env as-is, minus common indentation.
APP_ENV=development
LOG_LEVEL=debug
`

func initCommand(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	configFile := filepath.Join(cwd, config.ConfigFilenames[0])
	exampleFile := filepath.Join(cwd, "env.txt")

	if !forceInit {
		for _, f := range []string{configFile, exampleFile} {
			if _, err := os.Stat(f); err == nil {
				return fmt.Errorf("file already exists: %s (use --force to overwrite)", f)
			}
		}
	}

	if err := starterConfig().SaveConfig(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)

	if err := os.WriteFile(exampleFile, []byte(exampleText), 0644); err != nil {
		return fmt.Errorf("failed to create example file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", exampleFile)

	fmt.Fprintf(cmd.OutOrStdout(), "\nenvfile initialized!\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'envfile run -d . --text-file env.txt' to write .env.\n")

	return nil
}

func starterConfig() *config.Config {
	return &config.Config{
		Output:   output.FormatConsole,
		NoColor:  config.BoolPtr(false),
		Verbose:  config.BoolPtr(false),
		FileMode: fmt.Sprintf("%04o", config.DefaultFileMode),
	}
}
