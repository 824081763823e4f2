package pythrow

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestCLI_JSON_Shape_ExitCodes(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not available")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "boom.py"), []byte("raise ValueError(\"boom\")\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// run as subprocess to avoid os.Exit in-process
	cmd := exec.Command("go", "run", ".", "static", "--json", "--fail-on", "high", dir)
	cmd.Dir = filepath.Clean(filepath.Join("..", ".."))
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	ee, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exit error for high-severity finding, got %v", err)
	}
	if code := ee.ExitCode(); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	var findings []struct {
		Check    string `json:"check"`
		Severity string `json:"severity"`
		Line     int    `json:"line"`
	}
	if err := json.Unmarshal(out.Bytes(), &findings); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out.String())
	}
	if len(findings) == 0 {
		t.Fatalf("expected at least one finding in JSON output")
	}
	if findings[0].Check != "definite-raise" || findings[0].Line != 1 {
		t.Fatalf("unexpected finding: %+v", findings[0])
	}
}

func TestCLI_CleanTree_ExitsZero(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not available")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ok.py"), []byte("x = 1 + 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cmd := exec.Command("go", "run", ".", "static", "--json", dir)
	cmd.Dir = filepath.Clean(filepath.Join("..", ".."))
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("expected clean exit, got %v", err)
	}
}
