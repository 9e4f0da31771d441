package envfile

import (
	"os"
	"time"

	"github.com/abdul-hamid-achik/envfile/packages/core/env"
)

// Args are the inputs of a single run.
type Args struct {
	FullText       string
	Directory      string
	IncludeEnvVars bool
	FileMode       os.FileMode
}

// Request returns the compose request described by a.
func (a Args) Request() env.Request {
	return env.Request{
		FullText:       a.FullText,
		IncludeEnvVars: a.IncludeEnvVars,
	}
}

// Result describes a written .env file.
type Result struct {
	Directory string
	Path      string
	Bytes     int
	Variables []string // keys copied from the environment, after prefix removal
	Duration  time.Duration
}

// Create validates args.Directory, composes the file content and overwrites
// <directory>/.env. environ is the environment snapshot used when
// args.IncludeEnvVars is set.
func Create(args Args, environ map[string]string) (*Result, error) {
	start := time.Now()

	if err := ValidateDirectory(args.Directory); err != nil {
		return nil, err
	}

	path := Path(args.Directory)
	text, vars := env.ComposeVars(args.Request(), environ)
	if err := WriteFile(path, text, args.FileMode); err != nil {
		return nil, err
	}

	result := &Result{
		Directory: args.Directory,
		Path:      path,
		Bytes:     len(text),
		Duration:  time.Since(start),
	}
	for _, v := range vars {
		result.Variables = append(result.Variables, v.Key)
	}
	return result, nil
}
