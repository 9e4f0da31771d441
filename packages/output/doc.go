// Package output provides reporters for displaying the outcome of a run.
//
// Supported output formats:
//   - Console: Human-readable colored terminal output
//   - Actions: GitHub Actions workflow commands (::error::, step outputs)
//   - JSON: Machine-readable JSON output
//
// Each reporter implements the Reporter interface and can optionally
// implement Flushable for formats that accumulate results before output.
package output
