// Package text holds helpers for multi-line help text.
package text

import "strings"

// Dedent strips the indentation shared by all non-blank lines of s.
// Leading and trailing blank lines are dropped
// so that help text can be written as an indented raw string:
//
//	text.Dedent(`
//		Rebases the branch onto its parent.
//		  Indented lines keep their extra indent.
//	`)
//
// Blank lines in the middle are kept empty.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	var (
		prefix string
		found  bool
	)
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			prefix, found = indent, true
			continue
		}
		prefix = commonPrefix(prefix, indent)
	}

	for i, line := range lines {
		if isBlank(line) {
			lines[i] = ""
			continue
		}
		lines[i] = strings.TrimPrefix(line, prefix)
	}
	return strings.Join(lines, "\n")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
