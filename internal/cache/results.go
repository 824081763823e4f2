package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pythrow/pythrow/internal/types"
)

// RunResults stores the findings and metadata from the last analysis run.
type RunResults struct {
	Findings  []types.Finding      `json:"findings"`
	Dynamic   *types.DynamicResult `json:"dynamic_result,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
	Root      string               `json:"root"`
	Count     int                  `json:"count"`
}

func resultsPath(root string) string {
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "pythrow_last_run.json")
	}
	return filepath.Join(root, ".pythrow_last_run.json")
}

// SaveResults saves the last analysis outcome to cache.
func SaveResults(root string, findings []types.Finding, dynamic *types.DynamicResult) error {
	p := resultsPath(root)
	results := RunResults{
		Findings:  findings,
		Dynamic:   dynamic,
		Timestamp: time.Now(),
		Root:      root,
		Count:     len(findings),
	}
	b, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0644)
}

// LoadResults loads the last analysis outcome from cache.
func LoadResults(root string) (RunResults, error) {
	var results RunResults
	p := resultsPath(root)
	f, err := os.ReadFile(p)
	if err != nil {
		return results, err
	}
	if err := json.Unmarshal(f, &results); err != nil {
		return results, err
	}
	return results, nil
}
