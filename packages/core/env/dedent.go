package env

import "strings"

// Dedent removes the indentation shared by the indented, non-blank lines of
// text. Lines are split on "\n" only.
//
// The indent is the smallest run of leading spaces and tabs found on a line
// that has content after it. That many characters are then cut from every
// line starting with a space or tab; lines that are shorter lose what they
// have. Lines without indentation are kept as they are.
func Dedent(text string) string {
	lines := strings.Split(text, "\n")

	indent := -1
	for _, line := range lines {
		n := leadingWhitespace(line)
		if n == 0 || n == len(line) || isBlank(line[n:]) {
			continue
		}
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent < 0 {
		return text
	}

	for i, line := range lines {
		if line == "" || (line[0] != ' ' && line[0] != '\t') {
			continue
		}
		if len(line) <= indent {
			lines[i] = ""
			continue
		}
		lines[i] = line[indent:]
	}
	return strings.Join(lines, "\n")
}

func leadingWhitespace(line string) int {
	n := 0
	for n < len(line) && isIndent(line[n]) {
		n++
	}
	return n
}

func isIndent(b byte) bool {
	return b == ' ' || b == '\t'
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
