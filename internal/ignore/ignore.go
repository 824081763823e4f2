// Package ignore implements .pythrowignore matching: one pattern per line,
// gitignore-flavored (directory suffix slash, globs, comments).
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher answers whether a relative path is ignored.
type Matcher struct {
	patterns []string
}

// Load reads the ignore file at path. A missing file yields an empty matcher
// and no error; analysis should not require one to exist.
func Load(path string) (Matcher, error) {
	var m Matcher
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return m, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	return m, sc.Err()
}

// Match reports whether rel is covered by any loaded pattern.
func (m Matcher) Match(rel string) bool {
	rel = strings.ReplaceAll(rel, "\\", "/")
	for _, p := range m.patterns {
		// Directory pattern: "venv/" ignores everything under venv.
		if strings.HasSuffix(p, "/") {
			dir := strings.TrimSuffix(p, "/")
			if rel == dir || strings.HasPrefix(rel, dir+"/") {
				return true
			}
			continue
		}
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}
