package pythrow

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pythrow/pythrow/internal/report"
	"github.com/pythrow/pythrow/internal/runner"
)

var (
	flagRunTimeout time.Duration
	flagRunPython  string
)

func init() {
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Execute a Python file in a bounded subprocess and report the outcome",
		Args:  cobra.ExactArgs(1),
		RunE:  runDynamic,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().DurationVar(&flagRunTimeout, "timeout", 0, "run timeout (default 30s)")
	cmd.Flags().StringVar(&flagRunPython, "python", "", "python interpreter (default $PYTHROW_PYTHON or python3)")
	cmd.Flags().BoolVar(&flagFailOnThrow, "fail-on-throw", false, "exit 1 when the run throws or times out")
}

func runDynamic(_ *cobra.Command, args []string) error {
	res, err := runner.Run(context.Background(), args[0], runner.Options{
		Python:  flagRunPython,
		Timeout: flagRunTimeout,
	})
	if err != nil {
		return fmt.Errorf("dynamic run failed to start: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		noColor := flagNoColor || report.AutoNoColor(os.Stdout)
		report.PrintText(os.Stdout, args[0], nil, &res, report.PrintOptions{NoColor: noColor})
	}

	if flagFailOnThrow && (res.Threw || res.TimedOut) {
		os.Exit(1)
	}
	return nil
}
