package pythrow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pythrow/pythrow/internal/engine"
	"github.com/pythrow/pythrow/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage baselines",
	}

	update := &cobra.Command{
		Use:   "update [path]",
		Short: "Update baseline from the current static findings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			target := "."
			if len(args) == 1 {
				target = args[0]
			}
			abs, _ := filepath.Abs(target)
			cfg := engine.Config{Root: abs, NoDynamic: true, NoCache: true, DefaultExcludes: true}
			findings, err := engine.Analyze(context.Background(), cfg)
			if err != nil {
				return err
			}
			if err := report.SaveBaseline("pythrow.baseline.json", findings); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, "Baseline updated.")
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
	cmd.AddCommand(update)
}
