package output

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/envfile/packages/envfile"
)

// Reporter receives the progress of a run.
type Reporter interface {
	Header(version string)
	Start(directory string)
	Done(result *envfile.Result)
	Error(err error)
}

// Flushable is implemented by reporters that write their output at the end.
type Flushable interface {
	Flush() error
}

// Output format names accepted by New.
const (
	FormatConsole = "console"
	FormatActions = "actions"
	FormatJSON    = "json"
)

// Formats lists the supported output formats.
var Formats = []string{FormatConsole, FormatActions, FormatJSON}

func startMessage(directory string) string {
	return fmt.Sprintf("Creating .env file in %s", directory)
}

const doneMessage = "Done."

func variableList(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		if n == "" {
			n = `""`
		}
		quoted[i] = n
	}
	return strings.Join(quoted, ", ")
}
