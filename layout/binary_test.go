package layout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javalayout/jfmt/config"
	"github.com/javalayout/jfmt/cst/fixture"
	"github.com/javalayout/jfmt/layout"
	"github.com/javalayout/jfmt/printer"
)

// binaryChain builds "a <op> b <op> c" as a left-associative nest of
// binary_expression nodes, the shape flattenChain expects.
func binaryChain(op string, leaves ...string) (*fixture.Node, []byte) {
	var b strings.Builder
	for i, l := range leaves {
		if i > 0 {
			b.WriteString(" ")
			b.WriteString(op)
			b.WriteString(" ")
		}
		b.WriteString(l)
	}
	source := []byte(b.String())

	pos := 0
	cur := fixture.Leaf(kindFor(leaves[0]), uint(pos), uint(pos+len(leaves[0])))
	pos += len(leaves[0])
	for i := 1; i < len(leaves); i++ {
		pos += 1 + len(op) + 1 // " op "
		right := fixture.Leaf(kindFor(leaves[i]), uint(pos), uint(pos+len(leaves[i])))
		bin := fixture.New("binary_expression", 0, uint(len(b.String())))
		bin.Field("left", cur)
		bin.Field("right", right)
		bin.Field("operator", fixture.Punct(op, 0, 0))
		cur = bin
		pos += len(leaves[i])
	}
	return cur, source
}

func kindFor(leaf string) string {
	if strings.HasPrefix(leaf, "\"") {
		return "string_literal"
	}
	return "identifier"
}

func renderExpr(t *testing.T, cfg config.Config, source []byte, build func(e *layout.Emitter)) string {
	t.Helper()
	ctx := layout.NewContext(source, cfg)
	e := layout.NewEmitter(ctx)
	build(e)
	require.True(t, e.Out.Balanced())
	return printer.Render(e.Out, printer.Options{IndentWidth: cfg.IndentWidth, NewLine: "\n"})
}

func TestBinaryStaysFlatWhenShort(t *testing.T) {
	t.Parallel()

	root, source := binaryChain("&&", "condA", "conditionB")
	cfg := config.Default(config.StylePalantir)
	got := renderExpr(t, cfg, source, func(e *layout.Emitter) { e.EmitBinary(root) })
	assert.Equal(t, "condA && conditionB", got)
}

func TestBinaryWrapsWhenOverWidth(t *testing.T) {
	t.Parallel()

	root, source := binaryChain("&&", "conditionAAAAAAAAAAAAAAAAAAAAAAAA", "conditionBBBBBBBBBBBBBBBBBBBBBBBB", "conditionCCCCCCCCCCCCCCCCCCCCCCCC")
	cfg := config.Default(config.StylePalantir)
	cfg.LineWidth = 40
	got := renderExpr(t, cfg, source, func(e *layout.Emitter) { e.EmitBinary(root) })

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "conditionAAAAAAAAAAAAAAAAAAAAAAAA", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "        && "), "got %q", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "        && "), "got %q", lines[2])
}

func TestBinaryNonWrappableOperatorStaysFlatEvenWhenLong(t *testing.T) {
	t.Parallel()

	root, source := binaryChain("*", "aVeryLongVariableNameIndeedItIs", "anotherVeryLongVariableNameHere")
	cfg := config.Default(config.StylePalantir)
	cfg.LineWidth = 10
	got := renderExpr(t, cfg, source, func(e *layout.Emitter) { e.EmitBinary(root) })
	assert.Equal(t, string(source), got)
	assert.NotContains(t, got, "\n")
}
