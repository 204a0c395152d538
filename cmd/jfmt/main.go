// Command jfmt is the thin CLI host that wires javacst, config, format, and
// log together into a file-formatting tool, per SPEC_FULL.md's AMBIENT
// STACK section. The core itself (packages cst/config/diag/ir/measure/
// layout/printer) never imports cobra, os, or any I/O package — this is
// the one place that does.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/javalayout/jfmt/log"
)

func main() {
	ctx := log.WithContext(context.Background(), log.Default())
	if err := newRootCmd(ctx).Execute(); err != nil {
		log.From(ctx).Error("%v", err)
		os.Exit(1)
	}
}

func newRootCmd(ctx context.Context) *cobra.Command {
	root := &cobra.Command{
		Use:           "jfmt",
		Short:         "jfmt formats Java source files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newFormatCmd(ctx))
	return root
}
