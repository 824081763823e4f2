// Package engine orchestrates an analysis run: static scan first (cheap, no
// execution risk), dynamic run second (bounded by a timeout), merged into one
// result.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	doublestar "github.com/bmatcuk/doublestar/v4"
	xxhash "github.com/cespare/xxhash/v2"

	"github.com/pythrow/pythrow/internal/cache"
	"github.com/pythrow/pythrow/internal/checks"
	"github.com/pythrow/pythrow/internal/ignore"
	"github.com/pythrow/pythrow/internal/pyast"
	"github.com/pythrow/pythrow/internal/runner"
	"github.com/pythrow/pythrow/internal/types"
)

// Config controls analysis scope, filters, and the dynamic run.
type Config struct {
	Root            string // file or directory to analyze
	Entry           string // file to execute; defaults to Root when Root is a file
	IncludeGlobs    string
	ExcludeGlobs    string
	MaxBytes        int64
	EnableChecks    string
	DisableChecks   string
	MinConfidence   float64
	NoCache         bool
	DefaultExcludes bool
	NoDynamic       bool
	Timeout         time.Duration
	Python          string
	Progress        func()
}

// Result contains per-file reports, the merged findings, the dynamic outcome
// (nil when no execution happened) and basic run statistics.
type Result struct {
	Reports      []types.Report
	Findings     []types.Finding
	Dynamic      *types.DynamicResult
	FilesScanned int
	Duration     time.Duration
}

// CheckIDs returns the list of available static check IDs.
func CheckIDs() []string {
	return checks.IDs()
}

// Analyze runs an analysis and returns only the merged findings.
func Analyze(ctx context.Context, cfg Config) ([]types.Finding, error) {
	res, err := AnalyzeWithStats(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// AnalyzeWithStats runs the static scan (and the dynamic run unless disabled)
// and returns findings along with timing and counts. Unreadable roots are
// surfaced as errors; syntax errors in targets become findings instead.
func AnalyzeWithStats(ctx context.Context, cfg Config) (Result, error) {
	var result Result
	started := time.Now()

	st, err := os.Stat(cfg.Root)
	if err != nil {
		return result, fmt.Errorf("cannot analyze %s: %w", cfg.Root, err)
	}

	if st.IsDir() {
		if err := analyzeTree(ctx, cfg, &result); err != nil {
			return result, err
		}
	} else {
		data, err := os.ReadFile(cfg.Root)
		if err != nil {
			return result, fmt.Errorf("cannot analyze %s: %w", cfg.Root, err)
		}
		result.Reports = append(result.Reports, analyzeSource(cfg, cfg.Root, data))
		result.FilesScanned = 1
		if cfg.Progress != nil {
			cfg.Progress()
		}
	}

	for i := range result.Reports {
		result.Findings = append(result.Findings, result.Reports[i].Findings...)
	}

	entry := cfg.Entry
	if entry == "" && !st.IsDir() {
		entry = cfg.Root
	}
	if entry != "" && !cfg.NoDynamic {
		dyn, err := runner.Run(ctx, entry, runner.Options{
			Python:  cfg.Python,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return result, fmt.Errorf("dynamic run failed to start: %w", err)
		}
		result.Dynamic = &dyn
		attachDynamic(&result, entry, &dyn)
	}

	result.Duration = time.Since(started)
	return result, nil
}

func analyzeTree(ctx context.Context, cfg Config, result *Result) error {
	var db cache.DB
	if !cfg.NoCache {
		db, _ = cache.Load(cfg.Root)
	} else {
		db.Entries = map[string]string{}
	}
	updated := map[string]string{}

	ign, err := ignore.Load(filepath.Join(cfg.Root, ".pythrowignore"))
	if err != nil {
		return err
	}

	walkErr := Walk(ctx, cfg, ign, func(rel string, data []byte) {
		h := fastHash(data)
		if !cfg.NoCache && db.Entries != nil && db.Entries[rel] == h {
			return
		}
		result.Reports = append(result.Reports, analyzeSource(cfg, rel, data))
		result.FilesScanned++
		updated[rel] = h
		if cfg.Progress != nil {
			cfg.Progress()
		}
	})
	if walkErr != nil {
		return walkErr
	}

	if !cfg.NoCache && len(updated) > 0 {
		if db.Entries == nil {
			db.Entries = map[string]string{}
		}
		for k, v := range updated {
			db.Entries[k] = v
		}
		_ = cache.Save(cfg.Root, db)
	}
	return nil
}

// analyzeSource parses and checks one file. A parse failure degrades to a
// syntax-error finding so the run keeps going.
func analyzeSource(cfg Config, path string, data []byte) types.Report {
	rep := types.Report{Path: path}

	tree, err := pyast.Parse(path, data)
	if err != nil {
		var perr *pyast.ParseError
		if errors.As(err, &perr) {
			rep.Findings = []types.Finding{checks.SyntaxError(path, perr.Msg)}
		} else {
			rep.Findings = []types.Finding{checks.SyntaxError(path, err.Error())}
		}
		return rep
	}

	fs := checks.RunAll(path, tree, data)
	fs = filterByConfidence(fs, cfg.MinConfidence)
	fs = filterByIDs(fs, cfg.EnableChecks, cfg.DisableChecks)
	rep.Findings = fs
	return rep
}

// attachDynamic links the dynamic outcome to the entry file's report, adding
// a report if the entry was outside the static scan scope. Static and dynamic
// results stay independent; this only co-locates them for output.
func attachDynamic(result *Result, entry string, dyn *types.DynamicResult) {
	base := filepath.Base(entry)
	for i := range result.Reports {
		if result.Reports[i].Path == entry || filepath.Base(result.Reports[i].Path) == base {
			result.Reports[i].Dynamic = dyn
			return
		}
	}
	result.Reports = append(result.Reports, types.Report{Path: entry, Dynamic: dyn})
}

func fastHash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}

func filterByConfidence(fs []types.Finding, min float64) []types.Finding {
	if min <= 0 {
		return fs
	}
	var out []types.Finding
	for _, f := range fs {
		if f.Confidence >= min {
			out = append(out, f)
		}
	}
	return out
}

func filterByIDs(fs []types.Finding, enable, disable string) []types.Finding {
	if enable == "" && disable == "" {
		return fs
	}
	allowed := map[string]bool{}
	if enable != "" {
		for _, id := range strings.Split(enable, ",") {
			allowed[strings.TrimSpace(id)] = true
		}
	}
	blocked := map[string]bool{}
	if disable != "" {
		for _, id := range strings.Split(disable, ",") {
			blocked[strings.TrimSpace(id)] = true
		}
	}
	var out []types.Finding
	for _, f := range fs {
		if enable != "" && !allowed[f.Check] {
			continue
		}
		if disable != "" && blocked[f.Check] {
			continue
		}
		out = append(out, f)
	}
	return out
}

// allowedByGlobs returns true if the given path is allowed by the include/
// exclude glob configuration. Include globs are comma-separated and, if
// provided, act as a positive filter. Exclude globs are subtracted last.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
			out = append(out, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
