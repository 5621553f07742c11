package docgen

import (
	"strings"
)

// Normalize cleans assistant output for storage. Outside fenced code blocks it
// drops block quote markers and bold markers and rewrites "•", "*" and "+"
// bullets as "- ". Fenced code is left untouched.
func Normalize(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	inFence := false
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		lines[i] = normalizeLine(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func normalizeLine(line string) string {
	line = stripQuote(line)
	line = strings.ReplaceAll(line, "**", "")

	indentLen := len(line) - len(strings.TrimLeft(line, " \t"))
	lead, rest := line[:indentLen], line[indentLen:]
	for _, bullet := range []string{"• ", "* ", "+ "} {
		if strings.HasPrefix(rest, bullet) {
			return lead + "- " + strings.TrimPrefix(rest, bullet)
		}
	}
	return line
}

func stripQuote(line string) string {
	for {
		trimmed := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(trimmed, ">") {
			return line
		}
		line = strings.TrimPrefix(strings.TrimPrefix(trimmed, ">"), " ")
	}
}
