// Package action reads the step inputs of the envfile GitHub Action.
//
// Inputs arrive as INPUT_<NAME> environment variables. Values are trimmed of
// surrounding whitespace, as the Actions toolkit does.
package action

import (
	"github.com/abdul-hamid-achik/envfile/packages/envfile"
	"github.com/sethvargo/go-githubactions"
)

// Input names declared in action.yml.
const (
	InputFullText       = "full_text"
	InputDirectory      = "directory"
	InputIncludeEnvVars = "include_env_vars"
)

// OutputPath is the step output holding the path of the written file.
const OutputPath = "path"

// Inputs are the raw string inputs of a step.
type Inputs struct {
	FullText       string
	Directory      string
	IncludeEnvVars string
}

// ReadInputs reads the step inputs through a.
func ReadInputs(a *githubactions.Action) Inputs {
	return Inputs{
		FullText:       a.GetInput(InputFullText),
		Directory:      a.GetInput(InputDirectory),
		IncludeEnvVars: a.GetInput(InputIncludeEnvVars),
	}
}

// Args converts the inputs to envfile arguments.
func (in Inputs) Args() envfile.Args {
	return envfile.Args{
		FullText:       in.FullText,
		Directory:      in.Directory,
		IncludeEnvVars: Truthy(in.IncludeEnvVars),
	}
}

// Truthy reports whether an input switches a feature on. Any non-empty value
// does, including "false" and "0".
func Truthy(input string) bool {
	return input != ""
}

// InGitHubActions reports whether the process runs inside a GitHub Actions job.
func InGitHubActions(getenv func(string) string) bool {
	return getenv("GITHUB_ACTIONS") == "true"
}
