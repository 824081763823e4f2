package pythrow

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagSARIF         bool
	flagTable         bool
	flagFailOn        string
	flagNoColor       bool
	flagMinConfidence float64
	flagNoCache       bool
	flagNoUpdateCheck bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the pythrow CLI.
var rootCmd = &cobra.Command{
	Use:           "pythrow",
	Short:         "Detect potential exceptions in Python files",
	Long:          "pythrow statically scans Python source for exception sites and, optionally, executes the target in a bounded subprocess to observe what actually throws.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the pythrow CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0 (static findings only)")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output findings as a bordered table")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "medium", "fail on low|medium|high")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().Float64Var(&flagMinConfidence, "min-confidence", 0.0, "only show findings with confidence >= value (0-1)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable incremental scan cache")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
}
