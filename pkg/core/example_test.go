package core_test

import (
	"context"
	"fmt"
	"os"

	"github.com/pythrow/pythrow/pkg/core"
)

// ExampleAnalyze demonstrates a static-only analysis of a directory.
func ExampleAnalyze() {
	cfg := core.Config{
		Root:      ".",
		NoDynamic: true,
		NoCache:   true,
	}

	findings, err := core.Analyze(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analysis failed: %v\n", err)
		return
	}

	if len(findings) == 0 {
		fmt.Println("No exception indicators found.")
	} else {
		fmt.Printf("Found %d indicators.\n", len(findings))
		_ = core.MarshalFindings(os.Stdout, findings)
	}
}

// ExampleAnalyzeWithStats shows how to retrieve execution statistics and the
// merged dynamic outcome for a single entry script.
func ExampleAnalyzeWithStats() {
	cfg := core.Config{
		Root:  "app.py",
		Entry: "app.py",
	}

	result, err := core.AnalyzeWithStats(context.Background(), cfg)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Analyzed %d files in %s\n", result.FilesScanned, result.Duration)
	if result.Dynamic != nil && result.Dynamic.Threw {
		fmt.Printf("Execution raised %s\n", result.Dynamic.ExcType)
	}
}
