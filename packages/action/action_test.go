package action

import (
	"bytes"
	"testing"

	"github.com/sethvargo/go-githubactions"
	"github.com/stretchr/testify/assert"
)

func newAction(env map[string]string) *githubactions.Action {
	return githubactions.New(
		githubactions.WithWriter(&bytes.Buffer{}),
		githubactions.WithGetenv(func(key string) string { return env[key] }),
	)
}

func TestReadInputs(t *testing.T) {
	a := newAction(map[string]string{
		"INPUT_FULL_TEXT":        "\n  A=1\n  B=2\n",
		"INPUT_DIRECTORY":        " ./deploy ",
		"INPUT_INCLUDE_ENV_VARS": "true",
	})

	in := ReadInputs(a)
	assert.Equal(t, "A=1\n  B=2", in.FullText)
	assert.Equal(t, "./deploy", in.Directory)
	assert.Equal(t, "true", in.IncludeEnvVars)

	args := in.Args()
	assert.Equal(t, "./deploy", args.Directory)
	assert.True(t, args.IncludeEnvVars)
}

func TestReadInputsMissing(t *testing.T) {
	in := ReadInputs(newAction(nil))
	assert.Equal(t, Inputs{}, in)
	assert.False(t, in.Args().IncludeEnvVars)
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"true", true},
		{"1", true},
		{"yes", true},
		{"false", true},
		{"0", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truthy(tt.input))
		})
	}
}

func TestWhitespaceOnlyInputIsNotTruthy(t *testing.T) {
	in := ReadInputs(newAction(map[string]string{"INPUT_INCLUDE_ENV_VARS": "   "}))
	assert.False(t, in.Args().IncludeEnvVars)
}

func TestInGitHubActions(t *testing.T) {
	assert.True(t, InGitHubActions(func(string) string { return "true" }))
	assert.False(t, InGitHubActions(func(string) string { return "" }))
}
