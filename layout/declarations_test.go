package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javalayout/jfmt/config"
	"github.com/javalayout/jfmt/cst/fixture"
	"github.com/javalayout/jfmt/layout"
	"github.com/javalayout/jfmt/printer"
)

func renderDeclaration(t *testing.T, cfg config.Config, source []byte, n *fixture.Node) string {
	t.Helper()
	ctx := layout.NewContext(source, cfg)
	e := layout.NewEmitter(ctx)
	e.EmitDeclaration(n)
	require.True(t, e.Out.Balanced())
	return printer.Render(e.Out, printer.Options{IndentWidth: cfg.IndentWidth, NewLine: "\n"})
}

// TestMethodDeclarationNoSpaceBeforeParameterList guards against the name
// token picking up a trailing space from the generic default-case handling
// of emitMethodLike, which would otherwise render "foo ()" instead of
// "foo()".
func TestMethodDeclarationNoSpaceBeforeParameterList(t *testing.T) {
	t.Parallel()

	source := []byte("void foo() {}")
	returnType := fixture.Leaf("void_type", 0, 4)
	name := fixture.Leaf("identifier", 5, 8)
	params := fixture.New("formal_parameters", 8, 10)
	block := fixture.New("block", 11, 13)

	n := fixture.New("method_declaration", 0, 13)
	n.AddChild(returnType)
	n.AddChild(name)
	n.Field("name", name)
	n.AddChild(params)
	n.AddChild(block)

	cfg := config.Default(config.StylePalantir)
	got := renderDeclaration(t, cfg, source, n)
	assert.Equal(t, "void foo() {}", got)
}

// TestAnnotationElementSpacing guards against emitAnnotationElement's
// default case (previously Token(c) with no Space at all) concatenating the
// type and name with no separator.
func TestAnnotationElementSpacing(t *testing.T) {
	t.Parallel()

	source := []byte("int bar() default 0;")
	typ := fixture.Leaf("integral_type", 0, 3)
	name := fixture.Leaf("identifier", 4, 7)
	open := fixture.Punct("(", 7, 8)
	close_ := fixture.Punct(")", 8, 9)
	defaultKw := fixture.Punct("default", 10, 17)
	value := fixture.Leaf("decimal_integer_literal", 18, 19)
	semi := fixture.Punct(";", 19, 20)

	n := fixture.New("annotation_type_element_declaration", 0, 20)
	n.AddChild(typ)
	n.AddChild(name)
	n.Field("name", name)
	n.AddChild(open)
	n.AddChild(close_)
	n.AddChild(defaultKw)
	n.AddChild(value)
	n.Field("value", value)
	n.AddChild(semi)

	cfg := config.Default(config.StylePalantir)
	got := renderDeclaration(t, cfg, source, n)
	assert.Equal(t, "int bar() default 0;", got)
}

// TestAnnotationElementSpacingNoDefault covers the no-default-clause case.
func TestAnnotationElementSpacingNoDefault(t *testing.T) {
	t.Parallel()

	source := []byte("String name();")
	typ := fixture.Leaf("type_identifier", 0, 6)
	name := fixture.Leaf("identifier", 7, 11)
	open := fixture.Punct("(", 11, 12)
	close_ := fixture.Punct(")", 12, 13)
	semi := fixture.Punct(";", 13, 14)

	n := fixture.New("annotation_type_element_declaration", 0, 14)
	n.AddChild(typ)
	n.AddChild(name)
	n.Field("name", name)
	n.AddChild(open)
	n.AddChild(close_)
	n.AddChild(semi)

	cfg := config.Default(config.StylePalantir)
	got := renderDeclaration(t, cfg, source, n)
	assert.Equal(t, "String name();", got)
}

// TestEnumBodyConstantsOwnLineWithTerminatingSemicolon covers scenario S5:
// three constants, each on its own line, with the constant list terminated
// by ';' even though there are no further members.
func TestEnumBodyConstantsOwnLineWithTerminatingSemicolon(t *testing.T) {
	t.Parallel()

	source := []byte("enum Color { RED, GREEN, BLUE }")
	red := fixture.New("enum_constant", 13, 16)
	red.AddChild(fixture.Leaf("identifier", 13, 16))
	green := fixture.New("enum_constant", 18, 23)
	green.AddChild(fixture.Leaf("identifier", 18, 23))
	blue := fixture.New("enum_constant", 25, 29)
	blue.AddChild(fixture.Leaf("identifier", 25, 29))

	body := fixture.New("enum_body", 11, 31)
	body.AddChild(red)
	body.AddChild(green)
	body.AddChild(blue)

	name := fixture.Leaf("identifier", 5, 10)
	n := fixture.New("enum_declaration", 0, 31)
	n.AddChild(name)
	n.AddChild(body)

	cfg := config.Default(config.StylePalantir)
	got := renderDeclaration(t, cfg, source, n)
	assert.Equal(t, "Color {\n    RED,\n    GREEN,\n    BLUE;\n}", got)
}

// TestBodyBlankLineBetweenMultilineMembers checks the blank-line policy of
// emitMembers directly: two multiline members (method declarations) get
// exactly one blank line between them, and none is added before the first
// member.
func TestBodyBlankLineBetweenMultilineMembers(t *testing.T) {
	t.Parallel()

	mkMethod := func(retStart, retEnd, nameStart, nameEnd, paramsStart, paramsEnd, blockStart, blockEnd uint) *fixture.Node {
		ret := fixture.Leaf("void_type", retStart, retEnd)
		name := fixture.Leaf("identifier", nameStart, nameEnd)
		params := fixture.New("formal_parameters", paramsStart, paramsEnd)
		block := fixture.New("block", blockStart, blockEnd)
		m := fixture.New("method_declaration", retStart, blockEnd)
		m.AddChild(ret)
		m.AddChild(name)
		m.Field("name", name)
		m.AddChild(params)
		m.AddChild(block)
		return m
	}

	source := []byte("class C {\n    void a() {}\n    void b() {}\n}")
	a := mkMethod(14, 18, 19, 20, 20, 22, 23, 25)
	b := mkMethod(30, 34, 35, 36, 36, 38, 39, 41)

	body := fixture.New("class_body", 8, 43)
	body.AddChild(a)
	body.AddChild(b)

	name := fixture.Leaf("identifier", 6, 7)
	n := fixture.New("class_declaration", 0, 43)
	n.AddChild(name)
	n.AddChild(body)

	cfg := config.Default(config.StylePalantir)
	got := renderDeclaration(t, cfg, source, n)
	assert.Equal(t, "C {\n    void a() {}\n\n    void b() {}\n}", got)
}
