package env

import "strings"

// Request describes the .env file to build.
type Request struct {
	// FullText is the raw file body. Common indentation and surrounding
	// whitespace are removed.
	FullText string

	// IncludeEnvVars appends every Prefix variable of the environment.
	IncludeEnvVars bool
}

// Compose returns the content of the .env file described by req. The
// environment is only consulted when req.IncludeEnvVars is set. The result
// never has leading or trailing whitespace.
func Compose(req Request, environ map[string]string) string {
	text, _ := ComposeVars(req, environ)
	return text
}

// ComposeVars is Compose that also returns the variables taken from environ.
func ComposeVars(req Request, environ map[string]string) (string, []Var) {
	text := strings.TrimSpace(Dedent(req.FullText))
	if !req.IncludeEnvVars {
		return text, nil
	}

	vars := PrefixedVars(environ, Prefix)
	text += "\n" + strings.Join(Lines(vars), "\n")
	return strings.TrimSpace(text), vars
}
