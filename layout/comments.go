// Comment pipeline — component G of spec.md §4.7: line-comment
// normalization, block-comment re-indentation, and Javadoc reflow.
//
// Grounded on dprint-plugin-java's src/generation/comments.rs (see
// original_source/ — SPEC_FULL.md's SUPPLEMENTED FEATURES) for the
// paragraph-preserving Javadoc segmentation, and on spec.md §4.7 for
// everything else.
package layout

import (
	"strings"

	"github.com/javalayout/jfmt/cst"
	"github.com/javalayout/jfmt/measure"
)

// EmitComment dispatches an extra (comment) node to the right normalizer.
// It always ends with a NewLine for line comments, per spec.md §3
// invariant 2; block/Javadoc comments leave the cursor at the end of
// "*/" so the caller decides whether a NewLine follows.
func (e *Emitter) EmitComment(n cst.Node) {
	switch n.Kind() {
	case "line_comment":
		e.emitLineComment(n)
	case "block_comment":
		if e.Ctx.Config.FormatJavadoc && isJavadoc(string(cst.Text(e.Ctx.Source, n))) {
			e.emitJavadoc(n)
		} else {
			e.emitBlockComment(n)
		}
	default:
		e.Verbatim(n)
	}
}

func isJavadoc(text string) bool {
	return strings.HasPrefix(text, "/**") && !strings.HasPrefix(text, "/***")
}

// emitLineComment normalizes "//text" to "// text": exactly one space
// after "//" unless the content is empty or begins with '/' or '!' (so
// "///" and "//!" pass through unmodified), per spec.md §4.7.
func (e *Emitter) emitLineComment(n cst.Node) {
	text := string(cst.Text(e.Ctx.Source, n))
	body := strings.TrimPrefix(text, "//")
	switch {
	case body == "":
	case strings.HasPrefix(body, "/"), strings.HasPrefix(body, "!"):
	case strings.HasPrefix(body, " "):
		body = " " + strings.TrimLeft(body, " ")
	default:
		body = " " + body
	}
	e.Text("//" + body)
	e.NewLine()
}

// emitBlockComment re-indents a non-Javadoc "/* ... */" comment, per
// spec.md §4.7: continuation lines are left-trimmed then re-indented with
// one leading space so '*' aligns under the opening "/*"; a continuation
// line with no leading '*' gets " * " prepended; trailing whitespace
// before "*/" collapses to a single space.
func (e *Emitter) emitBlockComment(n cst.Node) {
	text := string(cst.Text(e.Ctx.Source, n))
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		e.Text(text)
		return
	}
	e.Text(lines[0])
	for i := 1; i < len(lines); i++ {
		line := strings.TrimRight(strings.TrimLeft(lines[i], " \t"), " \t")
		last := i == len(lines)-1
		if last {
			line = normalizeCommentClose(line)
		}
		e.NewLine()
		if strings.HasPrefix(line, "*") {
			e.Text(" " + line)
		} else if line == "" {
			// an empty interior line becomes a bare " *"; an empty closing
			// line stays empty.
			if last {
				e.Text(line)
			} else {
				e.Text(" *")
			}
		} else {
			e.Text(" * " + line)
		}
	}
}

// normalizeCommentClose collapses any run of whitespace immediately before
// a trailing "*/" to a single space.
func normalizeCommentClose(line string) string {
	if strings.HasSuffix(line, "*/") {
		body := strings.TrimRight(line[:len(line)-2], " \t")
		if body == "" {
			return "*/"
		}
		return body + " */"
	}
	return line
}

// javadocSegmentKind discriminates the parsed pieces of a Javadoc comment
// body, per spec.md §4.7 step 2.
type javadocSegmentKind int

const (
	segText javadocSegmentKind = iota
	segTag
	segPre
	segBlank
)

type javadocSegment struct {
	kind  javadocSegmentKind
	tag   string   // set for segTag: the tag word ("@param", "@return", ...)
	lines []string // raw (already "* "-stripped) lines making up this segment
}

// emitJavadoc implements spec.md §4.7's four Javadoc phases.
func (e *Emitter) emitJavadoc(n cst.Node) {
	text := string(cst.Text(e.Ctx.Source, n))
	inner := stripJavadocDelimiters(text)
	segments := segmentJavadoc(inner)

	width := e.Ctx.Config.LineWidth - (e.Ctx.EffectiveIndentLevel()*e.Ctx.Config.IndentWidth + 3)
	if width < 20 {
		width = 20
	}

	e.Text("/**")
	inPre := false
	for _, seg := range segments {
		switch seg.kind {
		case segBlank:
			e.NewLine()
			e.Text(" *")
		case segPre:
			for _, line := range seg.lines {
				e.NewLine()
				if strings.TrimSpace(line) == "" {
					e.Text(" *")
				} else {
					e.Text(" * " + line)
				}
			}
			inPre = strings.Contains(strings.Join(seg.lines, "\n"), "<pre>") &&
				!strings.Contains(strings.Join(seg.lines, "\n"), "</pre>")
		case segTag, segText:
			_ = inPre
			raw := strings.Join(seg.lines, " ")
			raw = strings.TrimSpace(raw)
			tokens := measure.SplitAtomicTokens(raw)
			wrapped := measure.WordWrap(tokens, width)
			for _, line := range wrapped {
				e.NewLine()
				e.Text(" * " + line)
			}
		}
	}
	e.NewLine()
	e.Text(" */")
}

// stripJavadocDelimiters removes the leading "/**" / trailing "*/" and, per
// line, one leading '*' plus one optional following space, per spec.md
// §4.7 step 1.
func stripJavadocDelimiters(text string) []string {
	body := strings.TrimSuffix(strings.TrimPrefix(text, "/**"), "*/")
	rawLines := strings.Split(body, "\n")
	out := make([]string, 0, len(rawLines))
	for i, line := range rawLines {
		if i == 0 {
			out = append(out, strings.TrimSpace(line))
			continue
		}
		trimmed := strings.TrimLeft(line, " \t")
		trimmed = strings.TrimPrefix(trimmed, "*")
		trimmed = strings.TrimPrefix(trimmed, " ")
		out = append(out, strings.TrimRight(trimmed, " \t"))
	}
	return out
}

// segmentJavadoc groups stripped Javadoc lines into free text runs, tag
// lines, <pre> blocks, and blank lines, per spec.md §4.7 step 2.
// Paragraph breaks (a blank line inside ordinary text) are preserved as
// their own segBlank segment rather than collapsed, matching
// dprint-plugin-java's src/generation/comments.rs (see SPEC_FULL.md).
func segmentJavadoc(lines []string) []javadocSegment {
	var segments []javadocSegment
	var cur *javadocSegment
	inPre := false

	flush := func() {
		if cur != nil && len(cur.lines) > 0 {
			segments = append(segments, *cur)
		}
		cur = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.Contains(trimmed, "<pre>") && !inPre:
			flush()
			inPre = true
			segments = append(segments, javadocSegment{kind: segPre, lines: []string{line}})
			if strings.Contains(trimmed, "</pre>") {
				inPre = false
			}
		case inPre:
			segments[len(segments)-1].lines = append(segments[len(segments)-1].lines, line)
			if strings.Contains(trimmed, "</pre>") {
				inPre = false
			}
		case trimmed == "":
			flush()
			segments = append(segments, javadocSegment{kind: segBlank})
		default:
			if tag, ok := measure.IsTagLine(trimmed); ok {
				flush()
				cur = &javadocSegment{kind: segTag, tag: tag, lines: []string{trimmed}}
				continue
			}
			if cur == nil || cur.kind == segBlank {
				flush()
				cur = &javadocSegment{kind: segText}
			}
			cur.lines = append(cur.lines, trimmed)
		}
	}
	flush()
	return segments
}
