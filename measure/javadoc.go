package measure

import "strings"

// TagsWithLeadingArgument take a leading argument word before their
// description, per spec.md §4.7 step 2.
var TagsWithLeadingArgument = map[string]bool{
	"@param":       true,
	"@throws":      true,
	"@exception":   true,
	"@serialField": true,
}

// IsTagLine reports whether line (already stripped of "* ") opens a Javadoc
// tag, and returns the tag word ("@param", "@return", ...).
func IsTagLine(line string) (tag string, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "@") {
		return "", false
	}
	end := strings.IndexAny(trimmed, " \t")
	if end < 0 {
		end = len(trimmed)
	}
	return trimmed[:end], true
}

// SplitAtomicTokens splits text into words for word-wrapping, treating each
// "{@...}" inline tag as one atomic token regardless of interior
// whitespace, per spec.md §4.7 step 3. Brace depth is tracked so a nested
// "{@code a{b}}" stays atomic too.
func SplitAtomicTokens(text string) []string {
	var tokens []string
	var cur strings.Builder
	depth := 0
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '{' && i+1 < len(runes) && runes[i+1] == '@':
			if depth == 0 {
				flush()
			}
			depth++
			cur.WriteRune(r)
		case r == '{' && depth > 0:
			depth++
			cur.WriteRune(r)
		case r == '}' && depth > 0:
			depth--
			cur.WriteRune(r)
			if depth == 0 {
				flush()
			}
		case (r == ' ' || r == '\t') && depth == 0:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// WordWrap reflows tokens (as produced by SplitAtomicTokens, or plain
// words) into lines no wider than width, per spec.md §4.7 step 3. A single
// token wider than width still occupies its own line rather than being
// split.
func WordWrap(tokens []string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, tok := range tokens {
		if cur.Len() == 0 {
			cur.WriteString(tok)
			continue
		}
		if cur.Len()+1+len(tok) > width {
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(tok)
			continue
		}
		cur.WriteByte(' ')
		cur.WriteString(tok)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
