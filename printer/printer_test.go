package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/javalayout/jfmt/ir"
	"github.com/javalayout/jfmt/printer"
)

func TestRenderFlat(t *testing.T) {
	t.Parallel()

	s := ir.NewStream(0)
	s.Text("public class Hello {")
	s.StartIndent()
	s.NewLine()
	s.Text("private int x;")
	s.FinishIndent()
	s.NewLine()
	s.Text("}")

	got := printer.Render(s, printer.Options{IndentWidth: 4, NewLine: "\n"})
	assert.Equal(t, "public class Hello {\n    private int x;\n}", got)
}

func TestRenderUsesTabs(t *testing.T) {
	t.Parallel()

	s := ir.NewStream(0)
	s.StartIndent()
	s.NewLine()
	s.Text("x")
	s.FinishIndent()

	got := printer.Render(s, printer.Options{IndentWidth: 4, UseTabs: true, NewLine: "\n"})
	assert.Equal(t, "\n\tx", got)
}

func TestRenderNestedIndent(t *testing.T) {
	t.Parallel()

	s := ir.NewStream(0)
	s.DoubleIndent()
	s.NewLine()
	s.Text("a")
	s.FinishDoubleIndent()

	got := printer.Render(s, printer.Options{IndentWidth: 2, NewLine: "\n"})
	assert.Equal(t, "\n    a", got)
}

func TestRenderHonorsCRLF(t *testing.T) {
	t.Parallel()

	s := ir.NewStream(0)
	s.Text("a")
	s.NewLine()
	s.Text("b")

	got := printer.Render(s, printer.Options{IndentWidth: 2, NewLine: "\r\n"})
	assert.Equal(t, "a\r\nb", got)
}

func TestRenderEmptyTextProducesNoIndent(t *testing.T) {
	t.Parallel()

	s := ir.NewStream(0)
	s.StartIndent()
	s.NewLine()
	// no Text emitted on this line.
	s.FinishIndent()
	s.NewLine()
	s.Text("x")

	got := printer.Render(s, printer.Options{IndentWidth: 4, NewLine: "\n"})
	assert.Equal(t, "\n\nx", got)
}

func TestRenderIndentNeverGoesNegative(t *testing.T) {
	t.Parallel()

	s := ir.NewStream(0)
	s.FinishIndent()
	s.FinishIndent()
	s.NewLine()
	s.Text("x")

	got := printer.Render(s, printer.Options{IndentWidth: 2, NewLine: "\n"})
	assert.Equal(t, "\nx", got)
}
