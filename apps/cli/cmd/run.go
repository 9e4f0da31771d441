package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/abdul-hamid-achik/envfile/packages/action"
	"github.com/abdul-hamid-achik/envfile/packages/core/config"
	"github.com/abdul-hamid-achik/envfile/packages/core/env"
	"github.com/abdul-hamid-achik/envfile/packages/envfile"
	"github.com/abdul-hamid-achik/envfile/packages/output"
	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Write <directory>/.env",
	Long: `Write a .env file into a directory, replacing any existing one.

The text is taken from --full-text, --text-file or the full_text action input.
Common indentation and surrounding blank lines are removed. With
--include-env-vars (or a non-empty include_env_vars input) every environment
variable named ACTION_CREATE_ENV_<KEY> is appended as <KEY>=<value>.

Examples:
  envfile run -d ./deploy --full-text "PROD=1"
  envfile run -d . --text-file env.txt --include-env-vars
  envfile run -d . --text-file env.txt --watch
  INPUT_DIRECTORY=. INPUT_FULL_TEXT="PROD=1" envfile run`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runCommand,
}

var (
	fullTextFlag       string
	textFileFlag       string
	directoryFlag      string
	includeEnvVarsFlag bool
	watchFlag          bool
	fileModeFlag       string
	configFlag         string
	outputFlag         string
	verboseFlag        bool
	noColorFlag        bool
)

func init() {
	// Input flags; when omitted the action inputs are used
	runCmd.Flags().StringVar(&fullTextFlag, "full-text", "", "Text of the .env file (default: full_text input)")
	runCmd.Flags().StringVar(&textFileFlag, "text-file", getEnvString("ENVFILE_TEXT_FILE", ""), "Read the text of the .env file from a file (env: ENVFILE_TEXT_FILE)")
	runCmd.Flags().StringVarP(&directoryFlag, "directory", "d", "", "Directory to write .env into (default: directory input)")
	runCmd.Flags().BoolVar(&includeEnvVarsFlag, "include-env-vars", false, "Append ACTION_CREATE_ENV_* variables (default: include_env_vars input)")
	runCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Rewrite .env whenever --text-file changes")

	// Output flags
	runCmd.Flags().StringVar(&configFlag, "config", getEnvString("ENVFILE_CONFIG", ""), "Path to config file (env: ENVFILE_CONFIG)")
	runCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("ENVFILE_OUTPUT", ""), "Output format: console, actions, json (default: actions in GitHub Actions, console otherwise) (env: ENVFILE_OUTPUT)")
	runCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", getEnvBool("ENVFILE_VERBOSE", false), "Verbose output (env: ENVFILE_VERBOSE)")
	runCmd.Flags().StringVar(&fileModeFlag, "file-mode", getEnvString("ENVFILE_FILE_MODE", ""), "Permissions of the written file, in octal (default 0644) (env: ENVFILE_FILE_MODE)")
	runCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("ENVFILE_NO_COLOR", false), "Disable colored output (env: ENVFILE_NO_COLOR)")
}

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func runCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	gha := githubactions.New(githubactions.WithWriter(out))

	fileConfig, err := config.LoadConfig(configFlag)
	if err != nil {
		return reportFailure(cmd, gha, outputFlag, ExitConfigError, err)
	}
	cfg := fileConfig.Merge(flagConfig(cmd.Flags()))

	format := resolveFormat(cfg.Output, os.Getenv)
	fileMode, err := cfg.GetFileMode()
	if err != nil {
		return reportFailure(cmd, gha, format, ExitConfigError, err)
	}
	if !slices.Contains(output.Formats, strings.ToLower(format)) {
		err := fmt.Errorf("unknown output format %q (use %s)", format, strings.Join(output.Formats, ", "))
		return reportFailure(cmd, gha, format, ExitUsageError, err)
	}
	if watchFlag && textFileFlag == "" {
		return reportFailure(cmd, gha, format, ExitUsageError, errors.New("--watch requires --text-file"))
	}

	inputs := action.ReadInputs(gha)
	runOnce := func() error {
		reporter := newReporter(format, out, gha, cfg.GetVerbose(), cfg.GetNoColor())
		reporter.Header(version)

		runArgs, err := resolveArgs(cmd.Flags(), inputs)
		if err == nil {
			runArgs.FileMode = fileMode
			err = createEnvFile(reporter, runArgs, env.Snapshot(os.Environ()))
		} else {
			reporter.Error(err)
		}

		if flushable, ok := reporter.(output.Flushable); ok {
			if ferr := flushable.Flush(); ferr != nil && err == nil {
				err = fmt.Errorf("error writing output: %w", ferr)
			}
		}
		if err != nil {
			return &exitError{code: failureCode(err), err: err}
		}
		return nil
	}

	err = runOnce()
	if !watchFlag {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(out, "\nWatching %s for changes... (press Ctrl+C to stop)\n\n", textFileFlag)
	return envfile.Watch(ctx, textFileFlag, func() {
		fmt.Fprintf(out, "\nFile changed: %s\n", textFileFlag)
		_ = runOnce()
	}, func(err error) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	})
}

// flagConfig returns the output settings given on the command line, or through
// their ENVFILE_* variables, as a config to merge over the file config.
func flagConfig(flags *pflag.FlagSet) *config.Config {
	c := &config.Config{
		Output:   outputFlag,
		FileMode: fileModeFlag,
	}
	if verboseFlag || flags.Changed("verbose") {
		c.Verbose = config.BoolPtr(verboseFlag)
	}
	if noColorFlag || flags.Changed("no-color") {
		c.NoColor = config.BoolPtr(noColorFlag)
	}
	return c
}

// reportFailure reports an error raised before the .env file is touched and
// wraps it with code. The error goes through the reporter for format when
// format is known, otherwise through the one matching the environment.
func reportFailure(cmd *cobra.Command, gha *githubactions.Action, format string, code int, err error) error {
	var reporter output.Reporter
	switch strings.ToLower(format) {
	case output.FormatActions:
		reporter = output.NewActionsReporter(gha)
	case output.FormatJSON:
		reporter = newReporter(output.FormatJSON, cmd.OutOrStdout(), gha, false, noColorFlag)
	case output.FormatConsole:
		reporter = newReporter(output.FormatConsole, cmd.ErrOrStderr(), gha, false, noColorFlag)
	default:
		if action.InGitHubActions(os.Getenv) {
			reporter = output.NewActionsReporter(gha)
		} else {
			reporter = newReporter(output.FormatConsole, cmd.ErrOrStderr(), gha, false, noColorFlag)
		}
	}

	reporter.Error(err)
	if flushable, ok := reporter.(output.Flushable); ok {
		_ = flushable.Flush()
	}
	return &exitError{code: code, err: err}
}

// resolveArgs combines the action inputs with the flags given on the command
// line; flags win.
func resolveArgs(flags *pflag.FlagSet, inputs action.Inputs) (envfile.Args, error) {
	args := inputs.Args()

	if flags.Changed("full-text") {
		args.FullText = fullTextFlag
	}
	if textFileFlag != "" {
		data, err := os.ReadFile(textFileFlag)
		if err != nil {
			return args, fmt.Errorf("cannot read text file: %w", err)
		}
		args.FullText = string(data)
	}
	if flags.Changed("directory") {
		args.Directory = directoryFlag
	}
	if flags.Changed("include-env-vars") {
		args.IncludeEnvVars = includeEnvVarsFlag
	}

	return args, nil
}

// createEnvFile runs a single create and reports its progress.
func createEnvFile(r output.Reporter, args envfile.Args, environ map[string]string) error {
	r.Start(args.Directory)

	result, err := envfile.Create(args, environ)
	if err != nil {
		r.Error(err)
		return err
	}

	r.Done(result)
	return nil
}

func failureCode(err error) int {
	var dirErr *envfile.DirectoryError
	if errors.As(err, &dirErr) {
		return ExitInvalidInput
	}
	return ExitFailure
}

// resolveFormat picks the output format: the configured one (flag or config
// file), then the environment the process runs in.
func resolveFormat(configured string, getenv func(string) string) string {
	if configured != "" {
		return configured
	}
	if action.InGitHubActions(getenv) {
		return output.FormatActions
	}
	return output.FormatConsole
}

// newReporter builds the reporter for a known format; anything else gets a
// console reporter.
func newReporter(format string, w io.Writer, gha *githubactions.Action, verbose, noColor bool) output.Reporter {
	switch strings.ToLower(format) {
	case output.FormatJSON:
		return output.NewJSONReporter(output.JSONWithWriter(w))
	case output.FormatActions:
		return output.NewActionsReporter(gha)
	}
	return output.NewConsoleReporter(
		output.WithWriter(w),
		output.WithVerbose(verbose),
		output.WithNoColor(noColor),
	)
}
