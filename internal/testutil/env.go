package testutil

import (
	"strings"

	"github.com/srlehn/termcaps/internal/environ"
)

// EnvFromText parses one "KEY=value" per line, as pasted from env(1).
func EnvFromText(e string) environ.Env {
	var lines []string
	for _, line := range strings.Split(e, "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || !strings.Contains(line, `=`) {
			continue
		}
		lines = append(lines, line)
	}
	return environ.FromList(lines)
}

// Env builds a snapshot from alternating keys and values.
func Env(kv ...string) environ.Env {
	m := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return environ.FromMap(m)
}
