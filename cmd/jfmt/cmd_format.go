package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/javalayout/jfmt/config"
	"github.com/javalayout/jfmt/diag"
	"github.com/javalayout/jfmt/format"
	"github.com/javalayout/jfmt/javacst"
	"github.com/javalayout/jfmt/log"
)

// formatFlags holds the cobra flag values newFormatCmd wires into a
// config.Raw, mirroring the config surface of spec.md §3/§6.
type formatFlags struct {
	style         string
	lineWidth     int
	indentWidth   int
	useTabs       bool
	formatJavadoc bool
	write         bool
}

func newFormatCmd(ctx context.Context) *cobra.Command {
	var flags formatFlags

	cmd := &cobra.Command{
		Use:   "format [file or directory]",
		Short: "Pretty-print a .java file, preserving comments",
		Long: `Pretty-print a .java file to stdout.

If a file is provided, it must have a .java extension.
If a directory is provided, formats every .java file under it (implies -w).
If no file is provided, reads Java source from stdin.

Use -w to overwrite the file in place (requires a file or directory argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, diags := resolveFlags(&flags)
			for _, d := range diags {
				log.From(ctx).Warning("%s", d.String())
			}

			if len(args) == 0 {
				if flags.write {
					return fmt.Errorf("-w requires a file or directory argument")
				}
				source, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				res, err := formatSource("<stdin>", source, cfg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(res.Output)
				return err
			}

			path := args[0]
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}

			if info.IsDir() {
				return formatDirectory(ctx, path, cfg)
			}

			if ext := filepath.Ext(path); ext != ".java" {
				return fmt.Errorf("expected a .java file, got %s", ext)
			}
			source, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			res, err := formatSource(path, source, cfg)
			if err != nil {
				return err
			}
			if flags.write {
				if !res.Changed {
					return nil
				}
				return os.WriteFile(path, res.Output, 0644)
			}
			_, err = cmd.OutOrStdout().Write(res.Output)
			return err
		},
	}

	cmd.Flags().StringVar(&flags.style, "style", "palantir", "style preset: palantir, google, or aosp")
	cmd.Flags().IntVar(&flags.lineWidth, "line-width", 0, "override the style's line width (0 = use style default)")
	cmd.Flags().IntVar(&flags.indentWidth, "indent-width", 0, "override the style's indent width (0 = use style default)")
	cmd.Flags().BoolVar(&flags.useTabs, "use-tabs", false, "indent with tabs instead of spaces")
	cmd.Flags().BoolVar(&flags.formatJavadoc, "format-javadoc", false, "reflow Javadoc comments to the line width")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "overwrite the file(s) in place")

	return cmd
}

// resolveFlags turns the cobra flags into a config.Raw override document
// and resolves it against the style preset, per config.Resolve.
func resolveFlags(flags *formatFlags) (config.Config, diag.List) {
	raw := config.Raw{"style": flags.style}
	if flags.lineWidth > 0 {
		raw["line_width"] = flags.lineWidth
	}
	if flags.indentWidth > 0 {
		raw["indent_width"] = flags.indentWidth
	}
	if flags.useTabs {
		raw["use_tabs"] = true
	}
	if flags.formatJavadoc {
		raw["format_javadoc"] = true
	}
	cfg, diags := config.Resolve(nil, raw)
	return cfg, diags
}

// formatSource parses source as Java and runs it through the layout core,
// per spec.md §6's Format entry point.
func formatSource(path string, source []byte, cfg config.Config) (format.Result, error) {
	tree, err := javacst.Parse(source)
	if err != nil {
		return format.Result{}, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	res, err := format.File(path, source, tree, cfg)
	if err != nil {
		return format.Result{}, fmt.Errorf("format %s: %w", path, err)
	}
	return res, nil
}

func formatDirectory(ctx context.Context, dir string, cfg config.Config) error {
	formatted := 0
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(d.Name()) != ".java" {
			return nil
		}
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		res, err := formatSource(path, source, cfg)
		if err != nil {
			return err
		}
		if !res.Changed {
			return nil
		}
		if err := os.WriteFile(path, res.Output, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		formatted++
		return nil
	})
	if err != nil {
		return err
	}
	log.From(ctx).Info("formatted %d file(s) under %s", formatted, dir)
	return nil
}
