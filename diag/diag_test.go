package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/javalayout/jfmt/diag"
)

func TestListAddfAndEmpty(t *testing.T) {
	t.Parallel()

	var l diag.List
	assert.True(t, l.Empty())

	l.Addf("line_width", "unrecognized value %d", -1)
	assert.False(t, l.Empty())
	assert.Equal(t, "line_width", l[0].Property)
	assert.Equal(t, "unrecognized value -1", l[0].Message)
}

func TestDiagnosticString(t *testing.T) {
	t.Parallel()

	withProperty := diag.Diagnostic{Property: "style", Message: "unknown"}
	assert.Equal(t, "style: unknown", withProperty.String())

	bare := diag.Diagnostic{Message: "bad file"}
	assert.Equal(t, "bad file", bare.String())
}

func TestListError(t *testing.T) {
	t.Parallel()

	var empty diag.List
	assert.Equal(t, "no diagnostics", empty.Error())

	var one diag.List
	one.Addf("a", "bad")
	assert.Equal(t, "a: bad", one.Error())

	var many diag.List
	many.Addf("a", "bad")
	many.Addf("b", "worse")
	assert.Equal(t, "a: bad (and 1 more)", many.Error())
}
