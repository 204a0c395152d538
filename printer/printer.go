// Package printer is the generic printer backend spec.md §1 and §6 describe
// as an external collaborator: it consumes the layout core's IR and
// resolves it against an indent stack to produce final source text. It has
// no Java-specific knowledge — it only understands ir.Text/NewLine/
// StartIndent/FinishIndent.
//
// The indent-tracking shape is grounded on
// core/gapil/format/indenter.go's indenter, which folds the same four
// operations (there spelled as markup runes '»'/'«'/'•'/'\n') into an
// io.Writer chain. Here the core emits the operations directly as IR
// instructions instead of embedding control characters in the text, which
// removes the need for a "does this conflict with real source content"
// escaping question.
package printer

import (
	"strings"

	"github.com/javalayout/jfmt/ir"
)

// Options configures rendering. IndentWidth and UseTabs mirror config.Config;
// NewLine is the literal newline text to emit (already resolved — see
// config.NewLineText).
type Options struct {
	IndentWidth int
	UseTabs     bool
	NewLine     string
}

// Render resolves stream against Options and returns the formatted text.
func Render(stream *ir.Stream, opts Options) string {
	var b strings.Builder
	indent := 0
	atLineStart := true

	writeIndent := func() {
		if opts.UseTabs {
			for i := 0; i < indent; i++ {
				b.WriteByte('\t')
			}
			return
		}
		pad := strings.Repeat(" ", opts.IndentWidth)
		for i := 0; i < indent; i++ {
			b.WriteString(pad)
		}
	}

	for _, it := range stream.Instructions() {
		switch it.Kind {
		case ir.StartIndent:
			indent++
		case ir.FinishIndent:
			indent--
			if indent < 0 {
				indent = 0
			}
		case ir.NewLine:
			b.WriteString(opts.NewLine)
			atLineStart = true
		case ir.Text:
			if it.Text == "" {
				continue
			}
			if atLineStart {
				writeIndent()
				atLineStart = false
			}
			b.WriteString(it.Text)
		}
	}
	return b.String()
}
