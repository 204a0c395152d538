// Package ir defines the layout core's intermediate representation: the
// append-only instruction stream the emitters in package layout produce and
// package printer consumes, per spec.md §3 "IR (layout instructions)".
package ir

// Kind discriminates an Instruction's variant.
type Kind int

const (
	// Text emits literal characters with no interpretation.
	Text Kind = iota
	// NewLine ends the current line; the printer renders it with whatever
	// indent is in effect at that point in the stream.
	NewLine
	// StartIndent opens a continuation-indent scope.
	StartIndent
	// FinishIndent closes the innermost open StartIndent scope.
	FinishIndent
)

// Instruction is a single IR item. Only Text carries a payload.
type Instruction struct {
	Kind Kind
	Text string
}

// Stream is the IR produced by one format call: an ordered, append-only
// sequence of Instructions.
type Stream struct {
	items []Instruction
}

// NewStream returns an empty stream with room for n instructions.
func NewStream(n int) *Stream {
	return &Stream{items: make([]Instruction, 0, n)}
}

// Text appends literal text. Callers must never pass a string containing
// '\n' — use NewLine for line breaks so every break is individually
// addressable by the indent stack (see layout's Emitter.Verbatim for the
// one place this is done automatically).
func (s *Stream) Text(text string) {
	if text == "" {
		return
	}
	s.items = append(s.items, Instruction{Kind: Text, Text: text})
}

// Space appends a single literal space.
func (s *Stream) Space() { s.Text(" ") }

// NewLine appends a line break.
func (s *Stream) NewLine() {
	s.items = append(s.items, Instruction{Kind: NewLine})
}

// StartIndent opens a continuation-indent scope.
func (s *Stream) StartIndent() {
	s.items = append(s.items, Instruction{Kind: StartIndent})
}

// FinishIndent closes the innermost continuation-indent scope.
func (s *Stream) FinishIndent() {
	s.items = append(s.items, Instruction{Kind: FinishIndent})
}

// DoubleIndent opens two nested continuation-indent scopes, the shape every
// wrapping rule in spec.md §4.6 uses for its continuation lines (a single
// indent_width's worth would under-indent a wrapped line relative to its
// owning statement).
func (s *Stream) DoubleIndent() {
	s.StartIndent()
	s.StartIndent()
}

// FinishDoubleIndent closes two continuation-indent scopes.
func (s *Stream) FinishDoubleIndent() {
	s.FinishIndent()
	s.FinishIndent()
}

// Instructions returns the accumulated instruction stream.
func (s *Stream) Instructions() []Instruction {
	return s.items
}

// Len reports how many instructions have been emitted so far; together with
// Truncate it lets a caller mark a point in the stream and later drop
// everything emitted after it.
func (s *Stream) Len() int { return len(s.items) }

// Truncate drops every instruction from index i onward.
func (s *Stream) Truncate(i int) {
	s.items = s.items[:i]
}

// LastKind reports the Kind of the last instruction emitted; the bool is
// false (and the Kind zero) if the stream is empty.
func (s *Stream) LastKind() (Kind, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1].Kind, true
}

// Balanced verifies invariant 1 of spec.md §3: every StartIndent is matched
// by a FinishIndent before the stream ends.
func (s *Stream) Balanced() bool {
	depth := 0
	for _, it := range s.items {
		switch it.Kind {
		case StartIndent:
			depth++
		case FinishIndent:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
