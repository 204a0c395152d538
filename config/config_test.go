package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javalayout/jfmt/config"
)

func TestDefaultStylePresets(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		style       config.Style
		lineWidth   int
		indentWidth int
	}{
		"palantir": {config.StylePalantir, 120, 4},
		"google":   {config.StyleGoogle, 100, 2},
		"aosp":     {config.StyleAOSP, 100, 4},
		"unknown falls back to palantir": {config.Style("nonsense"), 120, 4},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default(tc.style)
			assert.Equal(t, tc.lineWidth, cfg.LineWidth)
			assert.Equal(t, tc.indentWidth, cfg.IndentWidth)
		})
	}
}

func TestResolveExplicitOverridesPreset(t *testing.T) {
	t.Parallel()

	cfg, diags := config.Resolve(nil, config.Raw{
		"style":      "google",
		"line_width": 90,
	})
	require.True(t, diags.Empty())
	assert.Equal(t, 90, cfg.LineWidth)
	assert.Equal(t, 2, cfg.IndentWidth) // still from the google preset
}

func TestResolveGlobalAppliesBeforePresetButExplicitWins(t *testing.T) {
	t.Parallel()

	global := config.Raw{"line_width": 77}
	cfg, diags := config.Resolve(global, config.Raw{"style": "palantir"})
	require.True(t, diags.Empty())
	assert.Equal(t, 77, cfg.LineWidth)

	cfg, diags = config.Resolve(global, config.Raw{"style": "palantir", "line_width": 55})
	require.True(t, diags.Empty())
	assert.Equal(t, 55, cfg.LineWidth)
}

func TestResolveUnknownKeyProducesDiagnosticNotFailure(t *testing.T) {
	t.Parallel()

	cfg, diags := config.Resolve(nil, config.Raw{"style": "palantir", "not_a_real_key": true})
	require.Len(t, diags, 1)
	assert.Equal(t, "not_a_real_key", diags[0].Property)
	assert.Equal(t, 120, cfg.LineWidth)
}

func TestResolveUnrecognizedStyleDefaultsToPalantir(t *testing.T) {
	t.Parallel()

	cfg, diags := config.Resolve(nil, config.Raw{"style": "not-a-style"})
	require.Len(t, diags, 1)
	assert.Equal(t, 120, cfg.LineWidth)
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	raw, err := config.ParseYAML([]byte("style: google\nline_width: 88\n"))
	require.NoError(t, err)
	cfg, diags := config.Resolve(nil, raw)
	assert.True(t, diags.Empty())
	assert.Equal(t, 88, cfg.LineWidth)
}

func TestNewLineText(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		kind   config.NewLineKind
		source string
		want   string
	}{
		"explicit lf":          {config.NewLineLF, "a\r\nb", "\n"},
		"explicit crlf":        {config.NewLineCRLF, "a\nb", "\r\n"},
		"auto with crlf source": {config.NewLineAuto, "a\r\nb", "\r\n"},
		"auto with lf source":   {config.NewLineAuto, "a\nb", "\n"},
		"auto with no newline":  {config.NewLineAuto, "ab", "\n"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := config.NewLineText(tc.kind, []byte(tc.source))
			assert.Equal(t, tc.want, got)
		})
	}
}
