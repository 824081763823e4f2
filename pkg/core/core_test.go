package core

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestAnalyze_Smoke(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ok.py"), []byte("x = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := Config{Root: dir, NoDynamic: true, NoCache: true}
	findings, err := Analyze(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected no findings for clean file, got %d", len(findings))
	}
	ids := CheckIDs()
	if len(ids) == 0 {
		t.Fatal("expected non-empty check IDs")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	in := []Finding{{Path: "a.py", Line: 3, Check: "definite-raise", Severity: "high", Confidence: 0.9, Message: "explicit raise at line 3"}}
	var buf bytes.Buffer
	if err := MarshalFindings(&buf, in); err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := UnmarshalFindings(&buf)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 1 || out[0].Check != "definite-raise" || out[0].Line != 3 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}
