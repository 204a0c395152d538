package measure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/javalayout/jfmt/cst/fixture"
	"github.com/javalayout/jfmt/measure"
)

func TestFlatWidthCollapsesWhitespace(t *testing.T) {
	t.Parallel()

	source := []byte("foo(\n    a,\n    b\n)")
	n := fixture.New("method_invocation", 0, uint(len(source)))
	assert.Equal(t, len("foo( a, b )"), measure.FlatWidth(source, n))
}

func TestFlatWidthNilNode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, measure.FlatWidth([]byte("x"), nil))
}

func TestChainDepth(t *testing.T) {
	t.Parallel()

	// a.b().c().d() -- two invocation-to-invocation hops from the outermost
	// invocation; the final hop to the non-invocation root is not counted.
	root := fixture.New("identifier", 0, 1)
	inv1 := fixture.New("method_invocation", 0, 5).Field("object", root)
	inv2 := fixture.New("method_invocation", 0, 9).Field("object", inv1)
	inv3 := fixture.New("method_invocation", 0, 13).Field("object", inv2)

	assert.Equal(t, 0, measure.ChainDepth(inv1))
	assert.Equal(t, 1, measure.ChainDepth(inv2))
	assert.Equal(t, 2, measure.ChainDepth(inv3))
}

func TestIsTrailingComment(t *testing.T) {
	t.Parallel()

	parent := fixture.New("block", 0, 40)
	stmt := fixture.New("expression_statement", 0, 10).At(0, 0, 0, 10)
	comment := fixture.Comment("line_comment", 11, 20).At(0, 11, 0, 20)
	other := fixture.New("expression_statement", 0, 10).At(1, 0, 1, 10)
	standaloneComment := fixture.Comment("line_comment", 0, 5).At(2, 0, 2, 5)

	parent.AddChild(stmt)
	parent.AddChild(comment)
	parent.AddChild(other)
	parent.AddChild(standaloneComment)

	assert.True(t, measure.IsTrailingComment(comment))
	assert.False(t, measure.IsTrailingComment(standaloneComment))
}

func TestIsTrailingCommentNoPrevSibling(t *testing.T) {
	t.Parallel()

	parent := fixture.New("block", 0, 10)
	comment := fixture.Comment("line_comment", 0, 5)
	parent.AddChild(comment)

	assert.False(t, measure.IsTrailingComment(comment))
}

func TestChainPrefixWidth(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		pc   measure.PrefixContext
		want int
	}{
		"assignment": {
			pc:   measure.PrefixContext{ParentKind: "assignment_expression", LHSWidth: 5},
			want: 8, // 5 + " = "
		},
		"declarator": {
			pc:   measure.PrefixContext{ParentKind: "variable_declarator", TypeWidth: 4, NameWidth: 3},
			want: 4 + 1 + 3 + 3,
		},
		"return": {
			pc:   measure.PrefixContext{ParentKind: "return_statement"},
			want: 7,
		},
		"throw": {
			pc:   measure.PrefixContext{ParentKind: "throw_statement"},
			want: 6,
		},
		"nested argument list": {
			pc:   measure.PrefixContext{ParentKind: "argument_list", NameWidth: 6},
			want: 1 + 6 + 1,
		},
		"other": {
			pc:   measure.PrefixContext{ParentKind: "program"},
			want: 0,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, measure.ChainPrefixWidth(tc.pc))
		})
	}
}

func TestArgumentListChainWidthPlainArgs(t *testing.T) {
	t.Parallel()

	source := []byte("foo(a, b)")
	args := fixture.New("argument_list", 3, 9)
	a := fixture.New("identifier", 4, 5)
	b := fixture.New("identifier", 7, 8)
	args.AddChild(a)
	args.AddChild(b)

	assert.Equal(t, measure.FlatWidth(source, args), measure.ArgumentListChainWidth(source, args))
}

func TestArgumentListChainWidthStopsAtLambdaBrace(t *testing.T) {
	t.Parallel()

	source := []byte("foo(x -> {\n  return x;\n})")
	args := fixture.New("argument_list", 3, uint(len(source)))
	lambda := fixture.New("lambda_expression", 4, uint(len(source))-1)
	body := fixture.New("block", 9, uint(len(source))-1)
	lambda.Field("body", body)
	args.AddChild(lambda)

	got := measure.ArgumentListChainWidth(source, args)
	// width counts only from the argument list's own start up to and
	// including the block's opening '{' ("(x -> {"), not the receiver/name
	// that precedes the argument list itself.
	assert.Equal(t, len("(x -> {"), got)
}

func TestArgumentListChainWidthNil(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, measure.ArgumentListChainWidth([]byte("x"), nil))
}
