// Package config resolves the formatter's configuration surface: style
// presets, explicit overrides, and a host-level global config, per spec.md
// §3 "Configuration" and §6 "Config surface".
//
// Loading from YAML documents follows the pattern MacroPower-x's
// magicschema package uses github.com/goccy/go-yaml for: decode into a
// loosely-typed map first, so unknown keys can be reported as diagnostics
// rather than failing the whole load (spec.md §7's "configuration
// diagnostics" error kind).
package config

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/javalayout/jfmt/diag"
)

// Style is a named formatting style preset.
type Style string

const (
	StylePalantir Style = "palantir"
	StyleGoogle   Style = "google"
	StyleAOSP     Style = "aosp"
)

// NewLineKind selects how line endings are rendered.
type NewLineKind string

const (
	NewLineLF       NewLineKind = "lf"
	NewLineCRLF     NewLineKind = "crlf"
	NewLinePlatform NewLineKind = "platform"
	NewLineAuto     NewLineKind = "auto"
)

// Config is the fully resolved, in-memory configuration the layout core
// consumes. There is no partial/optional form of this type — resolution
// (Resolve, below) is what turns possibly-partial YAML/host input into one
// of these.
type Config struct {
	LineWidth           int
	IndentWidth         int
	UseTabs             bool
	NewLineKind         NewLineKind
	FormatJavadoc       bool
	MethodChainThreshold int
	InlineLambdas       bool
}

// stylePresets holds the per-style defaults from spec.md §3.
var stylePresets = map[Style]Config{
	StylePalantir: {
		LineWidth: 120, IndentWidth: 4, UseTabs: false, NewLineKind: NewLineAuto,
		FormatJavadoc: false, MethodChainThreshold: 80, InlineLambdas: true,
	},
	StyleGoogle: {
		LineWidth: 100, IndentWidth: 2, UseTabs: false, NewLineKind: NewLineAuto,
		FormatJavadoc: false, MethodChainThreshold: 80, InlineLambdas: true,
	},
	StyleAOSP: {
		LineWidth: 100, IndentWidth: 4, UseTabs: false, NewLineKind: NewLineAuto,
		FormatJavadoc: false, MethodChainThreshold: 80, InlineLambdas: true,
	},
}

// Default returns the default resolved config for a style, with no
// overrides applied.
func Default(style Style) Config {
	if c, ok := stylePresets[style]; ok {
		return c
	}
	return stylePresets[StylePalantir]
}

// Raw is a possibly-partial, possibly-unknown-keyed configuration document,
// as decoded from YAML or supplied by a host. nil/missing fields mean
// "unset"; Resolve fills them in from globals, then the style preset.
type Raw map[string]any

// ParseYAML decodes a YAML document into a Raw config. Unknown keys are
// preserved (not rejected) so Resolve can turn them into diagnostics rather
// than a hard failure, per spec.md §7.
func ParseYAML(data []byte) (Raw, error) {
	var raw Raw
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config yaml: %w", err)
	}
	return raw, nil
}

var recognizedKeys = map[string]bool{
	"line_width": true, "indent_width": true, "use_tabs": true,
	"new_line_kind": true, "format_javadoc": true,
	"method_chain_threshold": true, "inline_lambdas": true, "style": true,
}

// Resolve implements the two-stage resolution spec.md §6 describes: the
// style preset supplies defaults, a host-level global config may override
// line_width/indent_width/use_tabs/new_line_kind ahead of the preset, and
// explicit values in raw always win last. Unknown keys in raw produce one
// diagnostic each but never fail resolution.
func Resolve(global Raw, raw Raw) (Config, diag.List) {
	var diags diag.List

	style := StylePalantir
	if s, ok := stringVal(raw, "style"); ok {
		style = Style(s)
	} else if s, ok := stringVal(global, "style"); ok {
		style = Style(s)
	}
	if _, ok := stylePresets[style]; !ok {
		diags.Addf("style", "unrecognized style %q, defaulting to palantir", style)
		style = StylePalantir
	}
	cfg := Default(style)

	apply := func(src Raw, sourceIsGlobal bool) {
		for k, v := range src {
			if !recognizedKeys[k] {
				if !sourceIsGlobal {
					diags.Addf(k, "unrecognized configuration property %q", k)
				}
				continue
			}
			switch k {
			case "line_width":
				if n, ok := intVal(v); ok {
					cfg.LineWidth = n
				}
			case "indent_width":
				if n, ok := intVal(v); ok {
					cfg.IndentWidth = n
				}
			case "use_tabs":
				if b, ok := v.(bool); ok {
					cfg.UseTabs = b
				}
			case "new_line_kind":
				if s, ok := v.(string); ok {
					cfg.NewLineKind = NewLineKind(s)
				}
			case "format_javadoc":
				if b, ok := v.(bool); ok {
					cfg.FormatJavadoc = b
				}
			case "method_chain_threshold":
				if n, ok := intVal(v); ok {
					cfg.MethodChainThreshold = n
				}
			case "inline_lambdas":
				if b, ok := v.(bool); ok {
					cfg.InlineLambdas = b
				}
			}
		}
	}

	// Global values only ever cover the four host-level keys (spec.md §6);
	// apply them before the explicit raw so explicit always wins.
	if global != nil {
		hostLevel := Raw{}
		for _, k := range []string{"line_width", "indent_width", "use_tabs", "new_line_kind"} {
			if v, ok := global[k]; ok {
				hostLevel[k] = v
			}
		}
		apply(hostLevel, true)
	}
	apply(raw, false)

	return cfg, diags
}

func stringVal(r Raw, key string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func intVal(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// NewLineText resolves NewLineKind against the observed source text, per
// spec.md §6 "Newline selection": auto picks CRLF iff the source contains
// "\r\n", otherwise LF; any other kind is honored directly.
func NewLineText(kind NewLineKind, source []byte) string {
	switch kind {
	case NewLineCRLF:
		return "\r\n"
	case NewLineLF:
		return "\n"
	case NewLinePlatform:
		return platformNewLine
	case NewLineAuto:
		fallthrough
	default:
		for i := 0; i+1 < len(source); i++ {
			if source[i] == '\r' && source[i+1] == '\n' {
				return "\r\n"
			}
		}
		return "\n"
	}
}
