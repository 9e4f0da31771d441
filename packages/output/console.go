package output

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/envfile/packages/envfile"
	"github.com/fatih/color"
)

type ConsoleReporter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleReporter)

func NewConsoleReporter(opts ...ConsoleOption) *ConsoleReporter {
	r := &ConsoleReporter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.noColor {
		color.NoColor = true
	}
	return r
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(r *ConsoleReporter) {
		r.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(r *ConsoleReporter) {
		r.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(r *ConsoleReporter) {
		r.noColor = nc
	}
}

func (r *ConsoleReporter) Header(version string) {
	if !r.verbose {
		return
	}
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(r.writer, "%s %s\n", bold("envfile"), version)
}

func (r *ConsoleReporter) Start(directory string) {
	fmt.Fprintln(r.writer, startMessage(directory))
}

func (r *ConsoleReporter) Done(result *envfile.Result) {
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	if r.verbose && result != nil {
		fmt.Fprintf(r.writer, "  Wrote %d bytes to %s %s\n", result.Bytes, result.Path, cyan(fmt.Sprintf("(%dms)", result.Duration.Milliseconds())))
		fmt.Fprintf(r.writer, "  Variables from environment: %s\n", variableList(result.Variables))
	}
	fmt.Fprintln(r.writer, green(doneMessage))
}

func (r *ConsoleReporter) Error(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(r.writer, "%s %v\n", red("Error:"), err)
}
