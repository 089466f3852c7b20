// internal/cliutil/cliutil.go
package cliutil

import (
	"strconv"
	"strings"
)

// flagName strips leading dashes and any "=value" suffix.
func flagName(arg string) (name string, hasValue bool) {
	name = strings.TrimLeft(arg, "-")
	if eq := strings.IndexByte(name, '='); eq >= 0 {
		return name[:eq], true
	}
	return name, false
}

// isNumber accepts negative integers so "-p -1" reaches validation instead
// of being mistaken for a flag.
func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// ExpandMultiValue rewrites "-p 1 2 3" into "-p 1 -p 2 -p 3" for every flag in
// names, so the standard flag package can collect them with a repeatable Var.
// Values are taken until the next flag-like token or "--". Other arguments
// pass through unchanged.
func ExpandMultiValue(argv []string, names ...string) []string {
	multi := map[string]bool{}
	for _, n := range names {
		multi[n] = true
	}
	out := make([]string, 0, len(argv))
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			out = append(out, argv[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			out = append(out, arg)
			continue
		}
		name, inline := flagName(arg)
		if !multi[name] {
			out = append(out, arg)
			continue
		}
		out = append(out, arg)
		if !inline {
			if i+1 >= len(argv) {
				continue // let the flag package report the missing value
			}
			i++
			out = append(out, argv[i])
		}
		for i+1 < len(argv) {
			next := argv[i+1]
			if next == "--" || (strings.HasPrefix(next, "-") && !isNumber(next)) {
				break
			}
			i++
			out = append(out, "-"+name, next)
		}
	}
	return out
}
