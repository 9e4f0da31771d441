// Package env composes the text of a .env file.
//
// It provides functionality for:
//   - Removing the common indentation of a multi-line text block (Dedent)
//   - Snapshotting the process environment into a key/value map
//   - Selecting variables carrying the ACTION_CREATE_ENV_ prefix and renaming them
//   - Building the final file content from a Request (Compose)
package env
