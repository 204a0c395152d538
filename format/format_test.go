package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javalayout/jfmt/config"
	"github.com/javalayout/jfmt/cst"
	"github.com/javalayout/jfmt/cst/fixture"
	"github.com/javalayout/jfmt/format"
)

// fixtureTree adapts a single fixture.Node as a cst.Tree, for tests that
// don't need a real parser.
type fixtureTree struct{ root cst.Node }

func (t fixtureTree) Root() cst.Node { return t.root }

func TestFileParseFailureWhenTreeIsNil(t *testing.T) {
	t.Parallel()

	cfg := config.Default(config.StylePalantir)
	_, err := format.File("Foo.java", []byte("class Foo {}"), nil, cfg)
	require.ErrorIs(t, err, format.ErrParseFailure)
}

func TestFileParseFailureWhenRootIsNil(t *testing.T) {
	t.Parallel()

	cfg := config.Default(config.StylePalantir)
	_, err := format.File("Foo.java", []byte("class Foo {}"), fixtureTree{root: nil}, cfg)
	require.ErrorIs(t, err, format.ErrParseFailure)
}

func TestFileReturnsSourceVerbatimOnParseErrorRegion(t *testing.T) {
	t.Parallel()

	source := []byte("class Foo { broken")
	root := fixture.New("program", 0, uint(len(source))).WithError()
	cfg := config.Default(config.StylePalantir)

	result, err := format.File("Foo.java", source, fixtureTree{root: root}, cfg)
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Equal(t, source, result.Output)
}

func TestFileRejectsInvalidUTF8(t *testing.T) {
	t.Parallel()

	source := []byte{0xff, 0xfe, 0xfd}
	root := fixture.New("program", 0, 0)
	cfg := config.Default(config.StylePalantir)

	_, err := format.File("Foo.java", source, fixtureTree{root: root}, cfg)
	require.Error(t, err)
}

// TestFileFormatsSimpleCompilationUnit builds "class Foo{}" (no space
// before the body) and checks the printer widens it to "class Foo {}" with
// a trailing newline, exercising the full CST -> IR -> text pipeline.
func TestFileFormatsSimpleCompilationUnit(t *testing.T) {
	t.Parallel()

	source := []byte("class Foo{}")
	keyword := fixture.Punct("class", 0, 5)
	name := fixture.Leaf("identifier", 6, 9)
	body := fixture.New("class_body", 9, 11)
	classDecl := fixture.New("class_declaration", 0, 11)
	classDecl.AddChild(keyword)
	classDecl.AddChild(name)
	classDecl.AddChild(body)

	root := fixture.New("program", 0, uint(len(source)))
	root.AddChild(classDecl)

	cfg := config.Default(config.StylePalantir)
	result, err := format.File("Foo.java", source, fixtureTree{root: root}, cfg)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, "class Foo {}\n", string(result.Output))
}

// TestFileNoOpWhenAlreadyFormatted checks the Changed=false path when the
// freshly laid-out text is byte-identical to the (already well-formed,
// trailing-newline-terminated) input.
func TestFileNoOpWhenAlreadyFormatted(t *testing.T) {
	t.Parallel()

	source := []byte("class Foo {}\n")
	keyword := fixture.Punct("class", 0, 5)
	name := fixture.Leaf("identifier", 6, 9)
	body := fixture.New("class_body", 10, 12)
	classDecl := fixture.New("class_declaration", 0, 12)
	classDecl.AddChild(keyword)
	classDecl.AddChild(name)
	classDecl.AddChild(body)

	root := fixture.New("program", 0, uint(len(source)))
	root.AddChild(classDecl)

	cfg := config.Default(config.StylePalantir)
	result, err := format.File("Foo.java", source, fixtureTree{root: root}, cfg)
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Equal(t, source, result.Output)
}
