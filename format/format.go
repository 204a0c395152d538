// Package format is the layout core's external interface — spec.md §6
// "Format entry point": it takes a parsed CST, the source it was parsed
// from, and a resolved Config, and produces either "unchanged" or
// "changed" output bytes.
//
// Everything upstream of this package (CST parsing, config resolution) and
// downstream (file I/O, diagnostics rendering) is a host concern; this
// package is the seam gapid's own gapil/format.Format plays in its
// pipeline (CST -> AST -> resolved semantic graph -> formatted text),
// collapsed to the two stages spec.md actually specifies: CST -> IR ->
// text.
package format

import (
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/javalayout/jfmt/config"
	"github.com/javalayout/jfmt/cst"
	"github.com/javalayout/jfmt/diag"
	"github.com/javalayout/jfmt/layout"
	"github.com/javalayout/jfmt/printer"
)

// Result is the outcome of one Format call.
type Result struct {
	// Changed reports whether Output differs from the input source.
	Changed bool
	// Output is the formatted text: either a verbatim copy of the input
	// (unchanged, or a parse-error region per spec.md §7) or the freshly
	// laid-out file.
	Output []byte
	// Diagnostics collects any configuration diagnostics folded in by the
	// caller (see config.Resolve) plus anything this call adds.
	Diagnostics diag.List
}

// ErrParseFailure is returned when the CST has no root at all — spec.md
// §7's "parse failure" error kind. The host is expected to treat this as
// fatal for the file and return the original bytes unchanged.
var ErrParseFailure = errors.New("format: parser produced no CST root")

// File formats source (the bytes at path, advisory for diagnostics only)
// against a parsed tree and resolved cfg, per spec.md §6.
//
// Three outcomes, matching spec.md §7's error-handling design:
//  1. tree.Root() is nil: ErrParseFailure is returned; the caller should
//     treat the file as unchanged.
//  2. the CST reports any error region: output is a byte-identical copy of
//     source (spec.md §3 invariant 4, §7's "parse-error region" case).
//  3. otherwise: the layout core walks the tree and produces freshly laid
//     out text.
//
// UTF-8 decoding is checked here even though spec.md §7 calls it a "host
// boundary" failure, since this is the narrowest point that can still
// report it as an ordinary error rather than leaving a parser to guess at
// invalid bytes.
func File(path string, source []byte, tree cst.Tree, cfg config.Config) (Result, error) {
	if !utf8.Valid(source) {
		return Result{}, errors.Wrapf(errUTF8, "format: %s", path)
	}

	if tree == nil || tree.Root() == nil {
		return Result{}, ErrParseFailure
	}

	root := tree.Root()
	if cst.HasErrorRegion(root) {
		return Result{Output: source, Changed: false}, nil
	}

	ctx := layout.NewContext(source, cfg)
	emitter := layout.NewEmitter(ctx)
	emitter.EmitCompilationUnit(root)

	if !emitter.Out.Balanced() {
		return Result{}, errors.New("format: unbalanced indent scopes in generated IR")
	}

	text := printer.Render(emitter.Out, printer.Options{
		IndentWidth: cfg.IndentWidth,
		UseTabs:     cfg.UseTabs,
		NewLine:     config.NewLineText(cfg.NewLineKind, source),
	})
	out := ensureTrailingNewLine(text, config.NewLineText(cfg.NewLineKind, source))

	return Result{
		Output:  []byte(out),
		Changed: out != string(source),
	}, nil
}

var errUTF8 = errors.New("source is not valid UTF-8")

// ensureTrailingNewLine appends nl to text if it doesn't already end with
// one, matching every mainstream Java formatter's "files end with a
// newline" convention. An empty file stays empty.
func ensureTrailingNewLine(text, nl string) string {
	if text == "" {
		return text
	}
	if len(text) >= len(nl) && text[len(text)-len(nl):] == nl {
		return text
	}
	return text + nl
}
