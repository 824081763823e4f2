package pythrow

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pythrow/pythrow/internal/audit"
	"github.com/pythrow/pythrow/internal/cache"
	"github.com/pythrow/pythrow/internal/config"
	"github.com/pythrow/pythrow/internal/engine"
	"github.com/pythrow/pythrow/internal/report"
	"github.com/pythrow/pythrow/internal/types"
	"github.com/pythrow/pythrow/internal/update"
)

var (
	flagEntry       string
	flagTimeout     time.Duration
	flagPython      string
	flagNoDynamic   bool
	flagInclude     string
	flagExclude     string
	flagMaxBytes    int64
	flagEnable      string
	flagDisable     string
	flagShowSource  bool
	flagFailOnThrow bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze a Python file or tree for potential exceptions",
		Long:  "Runs the static checks first, then executes the target (a single file, or --entry within a tree) in a subprocess bounded by --timeout, and prints the merged report.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagEntry, "entry", "", "file to execute when analyzing a directory")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "dynamic run timeout (default 30s)")
	cmd.Flags().StringVar(&flagPython, "python", "", "python interpreter (default $PYTHROW_PYTHON or python3)")
	cmd.Flags().BoolVar(&flagNoDynamic, "no-dynamic", false, "skip dynamic execution")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().StringVar(&flagEnable, "enable", "", "only run these checks (comma-separated IDs)")
	cmd.Flags().StringVar(&flagDisable, "disable", "", "disable these checks (comma-separated IDs)")
	cmd.Flags().BoolVar(&flagShowSource, "show-source", false, "print the offending source line under each finding")
	cmd.Flags().BoolVar(&flagFailOnThrow, "fail-on-throw", false, "exit 1 when the dynamic run throws or times out")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	abs, _ := filepath.Abs(target)

	cfg, lcfg, gcfg := buildConfig(abs)
	cfg.NoDynamic = flagNoDynamic || pickBool(false, lcfg.NoDynamic, gcfg.NoDynamic)
	cfg.Entry = flagEntry

	machine := flagJSON || flagSARIF
	if !machine {
		if !flagNoUpdateCheck {
			if latest, newer, _ := update.Check(version, false); newer && latest != "" {
				_, _ = fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'pythrow update' to upgrade\n", latest)
			}
		}
		_, _ = fmt.Fprintf(os.Stderr, "Analyzing %s with %d checks...\n", abs, len(engine.CheckIDs()))
	}

	total, _ := engine.CountTargets(cfg)
	progressed := 0
	if total > 1 && !machine {
		cfg.Progress = func() {
			progressed++
			if progressed%10 == 0 || progressed == total {
				pct := float64(progressed) / float64(total) * 100
				_, _ = fmt.Fprintf(os.Stderr, "\r[%d/%d] %.0f%%", progressed, total, pct)
			}
		}
	}

	res, err := engine.AnalyzeWithStats(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("analysis error: %w", err)
	}
	if total > 1 && !machine {
		_, _ = fmt.Fprintln(os.Stderr)
	}

	baseline, _ := report.LoadBaseline("pythrow.baseline.json")
	newFindings := report.FilterNewFindings(res.Findings, baseline)
	if newFindings == nil {
		newFindings = []types.Finding{}
	} // no `null` in JSON

	if err := printResult(abs, newFindings, res); err != nil {
		return err
	}

	logRun(cfg, res)
	_ = cache.SaveResults(cacheRoot(abs), res.Findings, res.Dynamic)

	if report.ShouldFail(newFindings, flagFailOn) {
		os.Exit(1)
	}
	if flagFailOnThrow && res.Dynamic != nil && (res.Dynamic.Threw || res.Dynamic.TimedOut) {
		os.Exit(1)
	}
	return nil
}

// buildConfig resolves CLI > local > global configuration into an engine
// config for the given root.
func buildConfig(abs string) (engine.Config, config.FileConfig, config.FileConfig) {
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(cacheRoot(abs)); err == nil {
		lcfg = c
	}

	timeout := flagTimeout
	if timeout == 0 {
		if s := pickString("", lcfg.Timeout, gcfg.Timeout); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				timeout = d
			}
		}
	}

	cfg := engine.Config{
		Root:            abs,
		IncludeGlobs:    pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:        pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		EnableChecks:    pickString(flagEnable, lcfg.Enable, gcfg.Enable),
		DisableChecks:   pickString(flagDisable, lcfg.Disable, gcfg.Disable),
		MinConfidence:   pickFloat(flagMinConfidence, lcfg.MinConfidence, gcfg.MinConfidence),
		NoCache:         flagNoCache,
		DefaultExcludes: true,
		Timeout:         timeout,
		Python:          pickString(flagPython, lcfg.Python, gcfg.Python),
	}
	return cfg, lcfg, gcfg
}

// cacheRoot is the directory that config, cache and audit artifacts anchor
// to: the target itself when it is a directory, else its parent.
func cacheRoot(abs string) string {
	if st, err := os.Stat(abs); err == nil && st.IsDir() {
		return abs
	}
	return filepath.Dir(abs)
}

func printResult(root string, findings []types.Finding, res engine.Result) error {
	noColor := flagNoColor || report.AutoNoColor(os.Stdout)
	opts := report.PrintOptions{
		NoColor:      noColor,
		ShowSource:   flagShowSource,
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
		out := types.Report{Path: root, Findings: findings, Dynamic: res.Dynamic}
		if err := enc.Encode(out); err != nil {
			return err
		}
	case flagTable:
		report.PrintTable(os.Stdout, root, findings, res.Dynamic, opts)
	default:
		report.PrintText(os.Stdout, root, findings, res.Dynamic, opts)
	}
	return nil
}

func logRun(cfg engine.Config, res engine.Result) {
	counts := map[string]int{}
	for _, f := range res.Findings {
		counts[string(f.Severity)]++
	}
	rec := audit.RunRecord{
		Timestamp:      time.Now(),
		Root:           cfg.Root,
		Entry:          cfg.Entry,
		TotalFindings:  len(res.Findings),
		SeverityCounts: counts,
		FilesScanned:   res.FilesScanned,
		Duration:       res.Duration.String(),
	}
	if res.Dynamic != nil {
		rec.DynamicThrew = res.Dynamic.Threw
		rec.DynamicExc = res.Dynamic.ExcType
		rec.TimedOut = res.Dynamic.TimedOut
	}
	_ = audit.NewLog(cacheRoot(cfg.Root)).LogRun(rec)
}
