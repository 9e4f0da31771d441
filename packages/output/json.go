package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/envfile/packages/envfile"
	"github.com/google/uuid"
)

// JSONOutput represents the complete JSON output structure
type JSONOutput struct {
	RunID     string   `json:"runId"`
	Version   string   `json:"version,omitempty"`
	Success   bool     `json:"success"`
	Directory string   `json:"directory"`
	Path      string   `json:"path,omitempty"`
	Bytes     int      `json:"bytes"`
	Variables []string `json:"variables"`
	Duration  float64  `json:"duration"`
	Error     string   `json:"error,omitempty"`
	Time      string   `json:"time"`
}

// JSONReporter collects a run and writes it as JSON on Flush
type JSONReporter struct {
	writer io.Writer
	output JSONOutput
}

type JSONOption func(*JSONReporter)

func NewJSONReporter(opts ...JSONOption) *JSONReporter {
	r := &JSONReporter{
		writer: os.Stdout,
		output: JSONOutput{
			RunID:     uuid.New().String(),
			Variables: []string{},
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(r *JSONReporter) {
		r.writer = w
	}
}

func (r *JSONReporter) Header(version string) {
	r.output.Version = version
}

func (r *JSONReporter) Start(directory string) {
	r.output.Directory = directory
}

func (r *JSONReporter) Done(result *envfile.Result) {
	r.output.Success = true
	if result == nil {
		return
	}
	r.output.Path = result.Path
	r.output.Bytes = result.Bytes
	r.output.Duration = float64(result.Duration.Milliseconds())
	if result.Variables != nil {
		r.output.Variables = result.Variables
	}
}

func (r *JSONReporter) Error(err error) {
	r.output.Success = false
	r.output.Error = err.Error()
}

// Flush writes the accumulated JSON output
func (r *JSONReporter) Flush() error {
	r.output.Time = time.Now().Format(time.RFC3339)

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r.output)
}
