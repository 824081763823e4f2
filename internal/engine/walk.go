package engine

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pythrow/pythrow/internal/ignore"
)

var defaultExcludedDirs = map[string]bool{
	".git":          true,
	".hg":           true,
	".venv":         true,
	"venv":          true,
	"__pycache__":   true,
	".tox":          true,
	".mypy_cache":   true,
	".pytest_cache": true,
	"node_modules":  true,
	".eggs":         true,
	"site-packages": true,
}

// Walk traverses the tree under cfg.Root and invokes handle for each eligible
// Python file.
func Walk(ctx context.Context, cfg Config, ign ignore.Matcher, handle func(path string, data []byte)) error {
	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if cfg.DefaultExcludes && defaultExcludedDirs[d.Name()] && p != cfg.Root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(p), ".py") {
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if ign.Match(rel) {
			return nil
		}
		info, _ := d.Info()
		if info != nil && cfg.MaxBytes > 0 && info.Size() > cfg.MaxBytes {
			return nil
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return nil
		}
		// Inline opt-out directive
		if strings.Contains(string(b), "pythrow:ignore-file") {
			return nil
		}
		handle(rel, b)
		return nil
	})
}

// CountTargets estimates the number of files Walk would hand out, without
// reading them. Used for the progress display.
func CountTargets(cfg Config) (int, error) {
	st, err := os.Stat(cfg.Root)
	if err != nil {
		return 0, err
	}
	if !st.IsDir() {
		return 1, nil
	}
	ign, _ := ignore.Load(filepath.Join(cfg.Root, ".pythrowignore"))
	count := 0
	_ = filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if cfg.DefaultExcludes && defaultExcludedDirs[d.Name()] && p != cfg.Root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(p), ".py") {
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if ign.Match(rel) {
			return nil
		}
		info, _ := d.Info()
		if info != nil && cfg.MaxBytes > 0 && info.Size() > cfg.MaxBytes {
			return nil
		}
		count++
		return nil
	})
	return count, nil
}
