package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/abdul-hamid-achik/envfile/packages/core/config"
	"github.com/abdul-hamid-achik/envfile/packages/output"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// clearInputs removes anything the surrounding CI job may have set.
func clearInputs(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GITHUB_ACTIONS",
		"GITHUB_OUTPUT",
		"INPUT_FULL_TEXT",
		"INPUT_DIRECTORY",
		"INPUT_INCLUDE_ENV_VARS",
	} {
		t.Setenv(key, "")
	}
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRunWithFlags(t *testing.T) {
	clearInputs(t)
	dir := t.TempDir()

	stdout, _, err := executeCommand(t, "run", "-d", dir, "--full-text", "\n    PROD=0\n    TEST=1\n", "--no-color", "-o", "console")
	require.NoError(t, err)

	assert.Equal(t, "Creating .env file in "+dir+"\nDone.\n", stdout)
	assert.Equal(t, "PROD=0\nTEST=1", readFile(t, filepath.Join(dir, ".env")))
}

func TestRunFromActionInputs(t *testing.T) {
	clearInputs(t)
	dir := t.TempDir()
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("INPUT_DIRECTORY", dir)
	t.Setenv("INPUT_FULL_TEXT", "A=1\n")
	t.Setenv("INPUT_INCLUDE_ENV_VARS", "yes")
	t.Setenv("ACTION_CREATE_ENV_TOKEN", "abc")
	t.Setenv("ACTION_CREATE_ENV_ACTION_CREATE_ENV_X", "9")

	stdout, _, err := executeCommand(t, "run")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Creating .env file in "+dir)
	assert.Contains(t, stdout, "Done.")
	assert.NotContains(t, stdout, "::error::")

	vars, err := godotenv.Read(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, "1", vars["A"])
	assert.Equal(t, "abc", vars["TOKEN"])
	assert.Equal(t, "9", vars["ACTION_CREATE_ENV_X"])
}

func TestRunFlagsOverrideInputs(t *testing.T) {
	clearInputs(t)
	inputDir := t.TempDir()
	flagDir := t.TempDir()
	t.Setenv("INPUT_DIRECTORY", inputDir)
	t.Setenv("INPUT_FULL_TEXT", "FROM_INPUT=1")
	t.Setenv("INPUT_INCLUDE_ENV_VARS", "true")
	t.Setenv("ACTION_CREATE_ENV_TOKEN", "abc")

	_, _, err := executeCommand(t, "run", "-d", flagDir, "--full-text", "FROM_FLAG=1", "--include-env-vars=false", "--no-color")
	require.NoError(t, err)

	assert.Equal(t, "FROM_FLAG=1", readFile(t, filepath.Join(flagDir, ".env")))
	_, err = os.Stat(filepath.Join(inputDir, ".env"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunMissingDirectory(t *testing.T) {
	clearInputs(t)
	dir := filepath.Join(t.TempDir(), "this_dir_does_not_exist")

	stdout, _, err := executeCommand(t, "run", "-d", dir, "--full-text", "A=1", "-o", "actions")
	require.Error(t, err)

	assert.Equal(t, ExitInvalidInput, exitCode(err))
	assert.Contains(t, stdout, "Creating .env file in "+dir)
	assert.Contains(t, stdout, "::error::Invalid directory input: "+dir+" doesn't exist.")
	assert.NotContains(t, stdout, "Done.")
}

func TestRunNotADirectory(t *testing.T) {
	clearInputs(t)
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	stdout, _, err := executeCommand(t, "run", "-d", file, "--no-color")
	require.Error(t, err)

	assert.Equal(t, ExitInvalidInput, exitCode(err))
	assert.Contains(t, stdout, "Error: Invalid directory input: "+file+" is not a directory.")
}

func TestRunWriteFailure(t *testing.T) {
	clearInputs(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0755))

	_, _, err := executeCommand(t, "run", "-d", dir, "--full-text", "A=1", "--no-color")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, exitCode(err))
}

func TestRunTextFile(t *testing.T) {
	clearInputs(t)
	dir := t.TempDir()
	textFile := filepath.Join(t.TempDir(), "env.txt")
	require.NoError(t, os.WriteFile(textFile, []byte("    A=1\n      B=2\n"), 0644))

	_, _, err := executeCommand(t, "run", "-d", dir, "--text-file", textFile, "--no-color")
	require.NoError(t, err)

	assert.Equal(t, "A=1\n  B=2", readFile(t, filepath.Join(dir, ".env")))
}

func TestRunTextFileMissing(t *testing.T) {
	clearInputs(t)

	stdout, _, err := executeCommand(t, "run", "-d", t.TempDir(), "--text-file", filepath.Join(t.TempDir(), "missing.txt"), "--no-color")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, exitCode(err))
	assert.Contains(t, stdout, "cannot read text file")
}

func TestRunWatchRequiresTextFile(t *testing.T) {
	clearInputs(t)

	_, stderr, err := executeCommand(t, "run", "-d", t.TempDir(), "--watch")
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, exitCode(err))
	assert.Contains(t, stderr, "--watch requires --text-file")
}

func TestRunJSONOutput(t *testing.T) {
	clearInputs(t)
	dir := t.TempDir()
	t.Setenv("ACTION_CREATE_ENV_TOKEN", "abc")

	stdout, _, err := executeCommand(t, "run", "-d", dir, "--full-text", "A=1", "--include-env-vars", "-o", "json")
	require.NoError(t, err)

	var got output.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.True(t, got.Success)
	assert.Equal(t, filepath.Join(dir, ".env"), got.Path)
	assert.Contains(t, got.Variables, "TOKEN")
	assert.Equal(t, len(readFile(t, got.Path)), got.Bytes)
}

func TestRunUnknownOutput(t *testing.T) {
	clearInputs(t)

	_, stderr, err := executeCommand(t, "run", "-d", t.TempDir(), "-o", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, exitCode(err))
	assert.Contains(t, stderr, `unknown output format "xml"`)
}

func TestRunConfigFile(t *testing.T) {
	clearInputs(t)
	dir := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "envfile.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output: json\nfileMode: \"0600\"\n"), 0644))

	stdout, _, err := executeCommand(t, "run", "-d", dir, "--full-text", "A=1", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"success": true`)

	info, err := os.Stat(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestRunInvalidConfigFile(t *testing.T) {
	clearInputs(t)
	configPath := filepath.Join(t.TempDir(), "envfile.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output: xml\n"), 0644))

	_, stderr, err := executeCommand(t, "run", "-d", t.TempDir(), "--config", configPath)
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, exitCode(err))
	assert.Contains(t, stderr, "invalid config")
}

func TestRunInvalidConfigFileInActions(t *testing.T) {
	clearInputs(t)
	t.Setenv("GITHUB_ACTIONS", "true")
	configPath := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output: xml\n"), 0644))

	stdout, _, err := executeCommand(t, "run", "-d", t.TempDir(), "--config", configPath)
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, exitCode(err))
	assert.Contains(t, stdout, "::error::")
	assert.Contains(t, stdout, "invalid config")
}

func TestRunUnknownOutputInActions(t *testing.T) {
	clearInputs(t)
	t.Setenv("GITHUB_ACTIONS", "true")

	stdout, _, err := executeCommand(t, "run", "-d", t.TempDir(), "-o", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, exitCode(err))
	assert.Contains(t, stdout, `::error::unknown output format "xml"`)
}

func TestRunInvalidConfigFileJSONOutput(t *testing.T) {
	clearInputs(t)
	configPath := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("prefix: MY_\n"), 0644))

	stdout, _, err := executeCommand(t, "run", "-d", t.TempDir(), "--config", configPath, "-o", "json")
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, exitCode(err))

	var got output.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.False(t, got.Success)
	assert.Contains(t, got.Error, "invalid config")
}

func TestRunFlagsOverrideConfigFile(t *testing.T) {
	clearInputs(t)
	configPath := filepath.Join(t.TempDir(), "envfile.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output: json\nverbose: true\nfileMode: \"0600\"\n"), 0644))

	// verbose from the config file survives a flag that only changes the format
	dir := t.TempDir()
	stdout, _, err := executeCommand(t, "run", "-d", dir, "--full-text", "A=1", "--config", configPath, "-o", "console", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Creating .env file in "+dir)
	assert.Contains(t, stdout, "Wrote 3 bytes")

	dir = t.TempDir()
	stdout, _, err = executeCommand(t, "run", "-d", dir, "--full-text", "A=1", "--config", configPath, "-o", "console", "--no-color", "--verbose=false", "--file-mode", "0640")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Wrote")

	info, err := os.Stat(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
}

func TestRunInvalidFileModeFlag(t *testing.T) {
	clearInputs(t)

	_, stderr, err := executeCommand(t, "run", "-d", t.TempDir(), "--full-text", "A=1", "--file-mode", "rw-r--r--", "--no-color")
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, exitCode(err))
	assert.Contains(t, stderr, "Error:")
}

func TestPreview(t *testing.T) {
	t.Setenv("ACTION_CREATE_ENV_TOKEN", "abc")

	stdout, _, err := executeCommand(t, "preview", "--full-text", "\n  A=1\n  B=2\n")
	require.NoError(t, err)
	assert.Equal(t, "A=1\nB=2\n", stdout)

	stdout, _, err = executeCommand(t, "preview", "--full-text", "A=1", "--include-env-vars")
	require.NoError(t, err)
	assert.Contains(t, stdout, "TOKEN=abc\n")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing")

	stdout, _, err := executeCommand(t, "check", dir)
	require.NoError(t, err)
	assert.Equal(t, "Valid: "+dir+"\n", stdout)

	stdout, stderr, err := executeCommand(t, "check", dir, missing)
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, exitCode(err))
	assert.Contains(t, stdout, "Valid: "+dir)
	assert.Contains(t, stderr, "Invalid directory input: "+missing+" doesn't exist.")
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	stdout, _, err := executeCommand(t, "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created: ")

	assert.Contains(t, readFile(t, filepath.Join(dir, ".envfile.yaml")), "# envfile configuration")

	c, err := config.LoadConfig(filepath.Join(dir, ".envfile.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "console", c.Output)
	mode, err := c.GetFileMode()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultFileMode, mode)
	assert.FileExists(t, filepath.Join(dir, "env.txt"))

	_, _, err = executeCommand(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = executeCommand(t, "init", "--force")
	assert.NoError(t, err)
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			stdout, _, err := executeCommand(t, "completion", shell)
			require.NoError(t, err)
			assert.NotEmpty(t, stdout)
			assert.Contains(t, stdout, "envfile")
		})
	}

	_, _, err := executeCommand(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "envfile version "+version)
}

func TestResolveFormat(t *testing.T) {
	inActions := func(key string) string {
		if key == "GITHUB_ACTIONS" {
			return "true"
		}
		return ""
	}
	outside := func(string) string { return "" }

	assert.Equal(t, "json", resolveFormat("json", inActions))
	assert.Equal(t, "console", resolveFormat("console", inActions))
	assert.Equal(t, output.FormatActions, resolveFormat("", inActions))
	assert.Equal(t, output.FormatConsole, resolveFormat("", outside))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, exitCode(nil))
	assert.Equal(t, ExitUsageError, exitCode(assert.AnError))
	assert.Equal(t, ExitConfigError, exitCode(&exitError{code: ExitConfigError, err: assert.AnError}))
}
