package env

import (
	"sort"
	"strings"
)

// Prefix marks process environment variables that are copied into the .env
// file when a Request asks for them. The prefix is removed from the key.
const Prefix = "ACTION_CREATE_ENV_"

// Snapshot turns a list of KEY=VALUE entries, as returned by os.Environ, into a
// map. Entries without '=' are ignored. When a key repeats, the first entry
// wins, matching os.Getenv.
func Snapshot(environ []string) map[string]string {
	result := make(map[string]string, len(environ))
	for _, e := range environ {
		key, value, found := strings.Cut(e, "=")
		if !found {
			continue
		}
		if _, seen := result[key]; seen {
			continue
		}
		result[key] = value
	}
	return result
}

// Var is a single variable selected for the .env file.
type Var struct {
	Key   string // key with one leading Prefix removed
	Value string
	From  string // original environment key
}

// PrefixedVars returns the variables of environ whose key starts with prefix,
// with exactly one occurrence of prefix removed from the start of each key.
// A key equal to the prefix yields an empty Key. The result is sorted by the
// original key.
func PrefixedVars(environ map[string]string, prefix string) []Var {
	keys := make([]string, 0, len(environ))
	for k := range environ {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	vars := make([]Var, 0, len(keys))
	for _, k := range keys {
		vars = append(vars, Var{
			Key:   k[len(prefix):],
			Value: environ[k],
			From:  k,
		})
	}
	return vars
}

// Lines renders vars as KEY=VALUE lines.
func Lines(vars []Var) []string {
	lines := make([]string, len(vars))
	for i, v := range vars {
		lines[i] = v.Key + "=" + v.Value
	}
	return lines
}
