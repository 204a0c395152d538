// Package layout is the layout core: components B through G of spec.md
// §4 — Context, IR emitter primitives, declaration/statement/expression
// emitters, and the comment pipeline — reading package cst nodes under a
// package config Config and writing package ir instructions. The Format
// entry point that drives it lives in package format.
//
// The overall shape — a mutually-recursive, kind-keyed switch walking a
// borrowed CST, emitting into an append-only stream — is grounded on
// gapil/format/format.go's printer type and its markup/print methods.
// Where gapid's printer injects alignment/whitespace markers into the CST
// via a side map (p.injections), this core instead builds the IR stream
// directly as it walks, since our target language (the IR's Text/NewLine/
// StartIndent/FinishIndent vocabulary) is richer than single characters.
package layout

import (
	"github.com/javalayout/jfmt/config"
)

// Context is the layout core's traversal state — spec.md §4.2. It is
// mutable per-call: created once per format invocation and shared by
// pointer through every emitter call; methods that change it mutate the
// receiver in place. It holds a borrowed source reference plus small owned
// scalars, the way gapid's own cst/ast traversal does.
type Context struct {
	Source []byte
	Config config.Config

	indentLevel int
	continuation int
	parents      []string

	// assignmentWrapped is consulted by inner chain emitters so they don't
	// double-count the "LHS = " prefix a wrap-at-equals already accounted
	// for, per spec.md §4.6.3.
	assignmentWrapped bool
}

// NewContext creates the per-file Context a format call starts from.
func NewContext(source []byte, cfg config.Config) *Context {
	return &Context{Source: source, Config: cfg}
}

// Indent increments the indent level.
func (c *Context) Indent() { c.indentLevel++ }

// Dedent decrements the indent level, clamped at zero.
func (c *Context) Dedent() {
	if c.indentLevel > 0 {
		c.indentLevel--
	}
}

// PushParent records kind as the innermost ancestor.
func (c *Context) PushParent(kind string) { c.parents = append(c.parents, kind) }

// PopParent removes the innermost ancestor.
func (c *Context) PopParent() {
	if n := len(c.parents); n > 0 {
		c.parents = c.parents[:n-1]
	}
}

// HasAncestor reports whether kind appears anywhere in the parent stack.
func (c *Context) HasAncestor(kind string) bool {
	for _, p := range c.parents {
		if p == kind {
			return true
		}
	}
	return false
}

// ParentKind returns the innermost ancestor kind, or "" at the root.
func (c *Context) ParentKind() string {
	if n := len(c.parents); n > 0 {
		return c.parents[n-1]
	}
	return ""
}

// AddContinuationIndent adds n continuation-indent units, consulted by
// EffectiveColumn.
func (c *Context) AddContinuationIndent(n int) { c.continuation += n }

// RemoveContinuationIndent removes n continuation-indent units.
func (c *Context) RemoveContinuationIndent(n int) {
	c.continuation -= n
	if c.continuation < 0 {
		c.continuation = 0
	}
}

// EffectiveIndentLevel is indent_level + continuation-units, per spec.md
// §4.2.
func (c *Context) EffectiveIndentLevel() int {
	return c.indentLevel + c.continuation
}

// EffectiveColumn is the starting column a line begins at given the
// current effective indent level — the "current column" the core must
// compute itself since the external printer doesn't expose one (spec.md
// §9 "Column awareness").
func (c *Context) EffectiveColumn() int {
	return c.EffectiveIndentLevel() * c.Config.IndentWidth
}

// SetAssignmentWrapped sets/clears the assignment-wrapped flag.
func (c *Context) SetAssignmentWrapped(v bool) { c.assignmentWrapped = v }

// IsAssignmentWrapped reports the assignment-wrapped flag.
func (c *Context) IsAssignmentWrapped() bool { return c.assignmentWrapped }

// clone returns a shallow copy of c with its own parent stack, so the copy's
// indentation/flags/ancestors can change without affecting c. No emitter
// currently calls it.
func (c *Context) clone() *Context {
	cp := *c
	cp.parents = append([]string{}, c.parents...)
	return &cp
}
