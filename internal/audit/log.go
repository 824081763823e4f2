// Package audit appends a JSONL record per analysis run. Dynamic analysis
// executes untrusted code, so keeping a trail of what ran, when, and how it
// ended is worth a few bytes.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type RunRecord struct {
	Timestamp      time.Time      `json:"timestamp"`
	RunID          string         `json:"run_id"`
	Root           string         `json:"root"`
	Entry          string         `json:"entry,omitempty"`
	TotalFindings  int            `json:"total_findings"`
	SeverityCounts map[string]int `json:"severity_counts"`
	FilesScanned   int            `json:"files_scanned"`
	Duration       string         `json:"duration"`
	DynamicThrew   bool           `json:"dynamic_threw"`
	DynamicExc     string         `json:"dynamic_exc,omitempty"`
	TimedOut       bool           `json:"timed_out"`
}

type Log struct {
	logPath string
}

func NewLog(root string) *Log {
	gitDir := filepath.Join(root, ".git")
	logPath := filepath.Join(root, ".pythrow_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		logPath = filepath.Join(gitDir, "pythrow_audit.jsonl")
	}
	return &Log{logPath: logPath}
}

func (a *Log) LoadHistory() ([]RunRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []RunRecord
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var record RunRecord
		if err := decoder.Decode(&record); err != nil {
			continue
		}
		records = append(records, record)
	}

	// newest first
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (a *Log) LogRun(record RunRecord) error {
	if record.RunID == "" {
		record.RunID = fmt.Sprintf("run_%d", time.Now().Unix())
	}

	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}
