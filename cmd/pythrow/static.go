package pythrow

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pythrow/pythrow/internal/engine"
	"github.com/pythrow/pythrow/internal/report"
	"github.com/pythrow/pythrow/internal/types"
)

var (
	flagStaticInclude  string
	flagStaticExclude  string
	flagStaticEnable   string
	flagStaticDisable  string
	flagStaticMaxBytes int64
	flagStaticSource   bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "static [path]",
		Short: "Run only the static checks, never executing anything",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStatic,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagStaticInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagStaticExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().StringVar(&flagStaticEnable, "enable", "", "only run these checks (comma-separated IDs)")
	cmd.Flags().StringVar(&flagStaticDisable, "disable", "", "disable these checks (comma-separated IDs)")
	cmd.Flags().Int64Var(&flagStaticMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().BoolVar(&flagStaticSource, "show-source", false, "print the offending source line under each finding")
}

func runStatic(_ *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	abs, _ := filepath.Abs(target)

	cfg := engine.Config{
		Root:            abs,
		IncludeGlobs:    flagStaticInclude,
		ExcludeGlobs:    flagStaticExclude,
		EnableChecks:    flagStaticEnable,
		DisableChecks:   flagStaticDisable,
		MaxBytes:        flagStaticMaxBytes,
		MinConfidence:   flagMinConfidence,
		NoCache:         flagNoCache,
		DefaultExcludes: true,
		NoDynamic:       true,
	}

	res, err := engine.AnalyzeWithStats(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("analysis error: %w", err)
	}

	findings := res.Findings
	if findings == nil {
		findings = []types.Finding{}
	}

	noColor := flagNoColor || report.AutoNoColor(os.Stdout)
	opts := report.PrintOptions{
		NoColor:      noColor,
		ShowSource:   flagStaticSource,
		Duration:     res.Duration,
		FilesScanned: res.FilesScanned,
	}
	switch {
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, version, findings); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case flagJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(findings); err != nil {
			return err
		}
	case flagTable:
		report.PrintTable(os.Stdout, abs, findings, nil, opts)
	default:
		report.PrintText(os.Stdout, abs, findings, nil, opts)
	}

	if report.ShouldFail(findings, flagFailOn) {
		os.Exit(1)
	}
	return nil
}
