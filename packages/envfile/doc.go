// Package envfile materializes a .env file inside a directory.
//
// Create validates the target directory, composes the file content with the
// env package and overwrites <directory>/.env. Watch re-runs a callback when a
// source file changes, which the CLI uses to keep a .env file in sync with a
// text file.
package envfile
