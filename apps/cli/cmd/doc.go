// Package cmd implements the envfile CLI commands using Cobra.
//
// Available commands:
//   - run: Write <directory>/.env from text and prefixed environment variables
//   - preview: Print the composed .env content without writing it
//   - check: Verify that target directories exist
//   - init: Create a starter config file
//   - version: Show envfile version information
//   - completion: Generate shell completion scripts
//
// When running as a GitHub Action step, run reads its inputs from the
// INPUT_FULL_TEXT, INPUT_DIRECTORY and INPUT_INCLUDE_ENV_VARS variables.
package cmd
