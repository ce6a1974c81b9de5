package environ

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/exp/slices"
)

var _ termenv.Environ = Env{}

// Env is an immutable snapshot of environment variables.
// Variables set to the empty string are treated as absent.
type Env struct {
	vars map[string]string
}

// FromList parses "KEY=value" entries as returned by os.Environ.
// Later entries win over earlier ones with the same key.
func FromList(env []string) Env {
	vars := make(map[string]string, len(env))
	for _, v := range env {
		if len(v) == 0 {
			continue
		}
		k, val, _ := strings.Cut(v, `=`)
		if len(k) == 0 {
			// windows keeps per-drive working directories as "=C:=C:\..."
			continue
		}
		vars[k] = val
	}
	return Env{vars: vars}
}

// FromMap copies m.
func FromMap(m map[string]string) Env {
	vars := make(map[string]string, len(m))
	for k, v := range m {
		vars[k] = v
	}
	return Env{vars: vars}
}

// FromOS snapshots the process environment.
func FromOS() Env { return FromList(os.Environ()) }

// Of returns a snapshot of the variables of any termenv.Environ.
func Of(e termenv.Environ) Env {
	switch en := e.(type) {
	case nil:
		return Env{}
	case Env:
		return en
	case *Env:
		if en == nil {
			return Env{}
		}
		return *en
	default:
		return FromList(e.Environ())
	}
}

// LookupEnv reports the value of key and whether it is set to a non-empty string.
func (e Env) LookupEnv(key string) (string, bool) {
	v, ok := e.vars[key]
	if !ok || len(v) == 0 {
		return ``, false
	}
	return v, true
}

func (e Env) Getenv(key string) string {
	v, _ := e.LookupEnv(key)
	return v
}

// Has reports whether key is set to a non-empty string.
func (e Env) Has(key string) bool {
	_, ok := e.LookupEnv(key)
	return ok
}

// Environ returns the snapshot as sorted "KEY=value" entries.
func (e Env) Environ() []string {
	keys := make([]string, 0, len(e.vars))
	for k := range e.vars {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+`=`+e.vars[k])
	}
	return env
}

// Select returns a snapshot with only the listed keys that are set.
func (e Env) Select(keys ...string) Env {
	vars := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := e.LookupEnv(k); ok {
			vars[k] = v
		}
	}
	return Env{vars: vars}
}

func (e Env) Len() int { return len(e.vars) }
