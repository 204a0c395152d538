package layout

import (
	"strings"

	"github.com/javalayout/jfmt/cst"
	"github.com/javalayout/jfmt/ir"
)

// Emitter bundles the IR stream with the Context that's threaded through
// every emitter call — component C of spec.md §4.3, the IR emitter
// primitives.
type Emitter struct {
	Out *ir.Stream
	Ctx *Context
}

// NewEmitter creates an Emitter writing into a fresh stream.
func NewEmitter(ctx *Context) *Emitter {
	return &Emitter{Out: ir.NewStream(1024), Ctx: ctx}
}

// Text emits literal text.
func (e *Emitter) Text(s string) { e.Out.Text(s) }

// Space emits a single literal space.
func (e *Emitter) Space() { e.Out.Space() }

// NewLine emits a line break.
func (e *Emitter) NewLine() { e.Out.NewLine() }

// StartIndent/FinishIndent open/close a continuation-indent scope in the
// IR and mirror it onto the Context's indent level so measurement
// (EffectiveColumn) sees the change too.
func (e *Emitter) StartIndent() {
	e.Out.StartIndent()
	e.Ctx.indentLevel++
}

func (e *Emitter) FinishIndent() {
	e.Out.FinishIndent()
	if e.Ctx.indentLevel > 0 {
		e.Ctx.indentLevel--
	}
}

// DoubleIndent/FinishDoubleIndent open/close the two-scope continuation
// indent every wrapping rule in spec.md §4.6 uses.
func (e *Emitter) DoubleIndent() {
	e.StartIndent()
	e.StartIndent()
}

func (e *Emitter) FinishDoubleIndent() {
	e.FinishIndent()
	e.FinishIndent()
}

// Verbatim emits n's own source text unmodified except for newline
// handling, per spec.md §4.3: the text is split on '\n', each segment is
// emitted as Text followed by NewLine, and leading whitespace is stripped
// from continuation lines since the enclosing indent scope already
// supplies indentation — preserving the source's own whitespace here would
// double-indent on every re-format.
func (e *Emitter) Verbatim(n cst.Node) {
	text := string(cst.Text(e.Ctx.Source, n))
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			e.NewLine()
			line = strings.TrimLeft(line, " \t")
		}
		if line != "" {
			e.Text(line)
		}
	}
}

// Token emits a named/unnamed token's text verbatim with no newline
// handling — the common case of a single-line keyword, identifier, or
// punctuation node.
func (e *Emitter) Token(n cst.Node) {
	if n == nil {
		return
	}
	e.Text(string(cst.Text(e.Ctx.Source, n)))
}
