package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javalayout/jfmt/ir"
)

func TestStreamTextIgnoresEmpty(t *testing.T) {
	t.Parallel()

	s := ir.NewStream(0)
	s.Text("")
	assert.Equal(t, 0, s.Len())
}

func TestStreamSpaceEmitsOneSpace(t *testing.T) {
	t.Parallel()

	s := ir.NewStream(0)
	s.Space()
	require.Equal(t, 1, s.Len())
	assert.Equal(t, " ", s.Instructions()[0].Text)
}

func TestStreamBalanced(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		build    func(s *ir.Stream)
		balanced bool
	}{
		"empty": {
			build:    func(s *ir.Stream) {},
			balanced: true,
		},
		"single scope": {
			build: func(s *ir.Stream) {
				s.StartIndent()
				s.Text("x")
				s.FinishIndent()
			},
			balanced: true,
		},
		"double scope": {
			build: func(s *ir.Stream) {
				s.DoubleIndent()
				s.FinishDoubleIndent()
			},
			balanced: true,
		},
		"unclosed": {
			build: func(s *ir.Stream) {
				s.StartIndent()
			},
			balanced: false,
		},
		"closed before opened": {
			build: func(s *ir.Stream) {
				s.FinishIndent()
			},
			balanced: false,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s := ir.NewStream(0)
			tc.build(s)
			assert.Equal(t, tc.balanced, s.Balanced())
		})
	}
}

func TestStreamTruncate(t *testing.T) {
	t.Parallel()

	s := ir.NewStream(0)
	s.Text("a")
	mark := s.Len()
	s.Text("b")
	s.NewLine()
	s.Truncate(mark)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "a", s.Instructions()[0].Text)
}

func TestStreamLastKind(t *testing.T) {
	t.Parallel()

	s := ir.NewStream(0)
	_, ok := s.LastKind()
	assert.False(t, ok)

	s.Text("a")
	k, ok := s.LastKind()
	require.True(t, ok)
	assert.Equal(t, ir.Text, k)

	s.NewLine()
	k, ok = s.LastKind()
	require.True(t, ok)
	assert.Equal(t, ir.NewLine, k)
}
