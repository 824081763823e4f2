package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pythrow/pythrow/internal/types"
)

func TestWriteSARIF(t *testing.T) {
	var buf bytes.Buffer
	fs := []types.Finding{
		{Path: "a.py", Line: 14, Check: "definite-raise", Severity: types.SevHigh, Message: "explicit raise at line 14"},
		{Path: "b.py", Check: "syntax-error", Severity: types.SevHigh, Message: "syntax error in code: invalid syntax"},
	}
	if err := WriteSARIF(&buf, "0.1.0", fs); err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name string `json:"name"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID    string `json:"ruleId"`
				Level     string `json:"level"`
				Locations []struct {
					PhysicalLocation struct {
						Region struct {
							StartLine int `json:"startLine"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid SARIF JSON: %v", err)
	}
	if doc.Version != "2.1.0" {
		t.Fatalf("version = %q", doc.Version)
	}
	if len(doc.Runs) != 1 || doc.Runs[0].Tool.Driver.Name != "pythrow" {
		t.Fatalf("unexpected runs: %+v", doc.Runs)
	}
	rs := doc.Runs[0].Results
	if len(rs) != 2 {
		t.Fatalf("expected 2 results, got %d", len(rs))
	}
	if rs[0].RuleID != "definite-raise" || rs[0].Level != "error" {
		t.Fatalf("unexpected first result: %+v", rs[0])
	}
	if rs[0].Locations[0].PhysicalLocation.Region.StartLine != 14 {
		t.Fatalf("line not propagated: %+v", rs[0])
	}
	// Findings without a line (syntax-error) clamp to line 1 for SARIF.
	if rs[1].Locations[0].PhysicalLocation.Region.StartLine != 1 {
		t.Fatalf("lineless finding must clamp to 1: %+v", rs[1])
	}
}
