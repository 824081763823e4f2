package report

import (
	"encoding/json"
	"io"

	"github.com/pythrow/pythrow/internal/types"
)

type sarif struct {
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type sarifResult struct {
	RuleID    string       `json:"ruleId"`
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

func sevToLevel(s types.Severity) string {
	switch s {
	case types.SevHigh:
		return "error"
	case types.SevMed:
		return "warning"
	default:
		return "note"
	}
}

// WriteSARIF writes the static findings as SARIF 2.1.0 to the provided
// writer. Dynamic results carry no source location and are not included.
func WriteSARIF(w io.Writer, version string, findings []types.Finding) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{Name: "pythrow", Version: version}},
	}
	for _, f := range findings {
		line := f.Line
		if line <= 0 {
			line = 1
		}
		run.Results = append(run.Results, sarifResult{
			RuleID:  f.Check,
			Level:   sevToLevel(f.Severity),
			Message: sarifMessage{Text: f.Message},
			Locations: []sarifLoc{{
				PhysicalLocation: sarifPhys{
					ArtifactLocation: sarifArt{URI: f.Path},
					Region:           sarifRegion{StartLine: line},
				},
			}},
		})
	}
	doc := sarif{Version: "2.1.0", Runs: []sarifRun{run}}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
