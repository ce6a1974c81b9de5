package procextra

import (
	"strings"
)

// parsePSEnv extracts the environment from the output of "ps -E -o command=",
// given the output without -E. ps separates variables by single spaces,
// so a space inside a value is only recognized as such if the following
// word does not look like NAME=.
func parsePSEnv(withEnv, withoutEnv string) []string {
	envStr := strings.TrimSpace(strings.TrimPrefix(
		strings.Trim(withEnv, "\x00\n "),
		strings.Trim(withoutEnv, "\x00\n "),
	))
	if len(envStr) == 0 {
		return nil
	}
	var env []string
	var cur []string
	for _, word := range strings.Split(envStr, ` `) {
		if startsVar(word) {
			if len(cur) > 0 {
				env = append(env, strings.Join(cur, ` `))
			}
			cur = []string{word}
			continue
		}
		if len(cur) > 0 {
			cur = append(cur, word)
		}
	}
	if len(cur) > 0 {
		env = append(env, strings.Join(cur, ` `))
	}
	return env
}

func startsVar(word string) bool {
	name, _, found := strings.Cut(word, `=`)
	if !found || len(name) == 0 {
		return false
	}
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			continue
		}
		return false
	}
	return true
}
