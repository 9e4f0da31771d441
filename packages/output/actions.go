package output

import (
	"github.com/abdul-hamid-achik/envfile/packages/action"
	"github.com/abdul-hamid-achik/envfile/packages/envfile"
	"github.com/sethvargo/go-githubactions"
)

// ActionsReporter reports through GitHub Actions workflow commands. Failures
// become ::error:: annotations and the written path is exposed as the "path"
// step output.
type ActionsReporter struct {
	action *githubactions.Action
}

func NewActionsReporter(a *githubactions.Action) *ActionsReporter {
	if a == nil {
		a = githubactions.New()
	}
	return &ActionsReporter{action: a}
}

func (r *ActionsReporter) Header(version string) {
	r.action.Debugf("envfile %s", version)
}

func (r *ActionsReporter) Start(directory string) {
	r.action.Infof("%s", startMessage(directory))
}

func (r *ActionsReporter) Done(result *envfile.Result) {
	if result != nil {
		r.action.Debugf("Variables from environment: %s", variableList(result.Variables))
		r.action.SetOutput(action.OutputPath, result.Path)
	}
	r.action.Infof("%s", doneMessage)
}

func (r *ActionsReporter) Error(err error) {
	r.action.Errorf("%s", err.Error())
}
