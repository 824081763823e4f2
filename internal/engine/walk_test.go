package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pythrow/pythrow/internal/ignore"
)

func TestWalkSelectsOnlyPython(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "x = 1\n")
	writeFile(t, dir, "b.txt", "not python\n")
	writeFile(t, dir, "sub/c.PY", "y = 2\n")

	var got []string
	err := Walk(context.Background(), Config{Root: dir}, ignore.Matcher{}, func(p string, _ []byte) {
		got = append(got, p)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 files, got %v", got)
	}
}

func TestWalkDefaultExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "x = 1\n")
	writeFile(t, dir, "venv/lib/site.py", "x = 1\n")
	writeFile(t, dir, "__pycache__/a.py", "x = 1\n")

	var got []string
	err := Walk(context.Background(), Config{Root: dir, DefaultExcludes: true}, ignore.Matcher{}, func(p string, _ []byte) {
		got = append(got, p)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "a.py" {
		t.Fatalf("expected only a.py, got %v", got)
	}
}

func TestWalkGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/a.py", "x = 1\n")
	writeFile(t, dir, "tests/test_a.py", "x = 1\n")

	var got []string
	cfg := Config{Root: dir, ExcludeGlobs: "tests/**"}
	err := Walk(context.Background(), cfg, ignore.Matcher{}, func(p string, _ []byte) {
		got = append(got, p)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || filepath.ToSlash(got[0]) != "src/a.py" {
		t.Fatalf("expected only src/a.py, got %v", got)
	}
}

func TestWalkIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "x = 1\n")
	writeFile(t, dir, "scratch.py", "x = 1\n")
	if err := os.WriteFile(filepath.Join(dir, ".pythrowignore"), []byte("scratch.py\n"), 0644); err != nil {
		t.Fatal(err)
	}
	ign, err := ignore.Load(filepath.Join(dir, ".pythrowignore"))
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	if err := Walk(context.Background(), Config{Root: dir}, ign, func(p string, _ []byte) {
		got = append(got, p)
	}); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "a.py" {
		t.Fatalf("expected only a.py, got %v", got)
	}
}

func TestWalkInlineOptOut(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "# pythrow:ignore-file\nraise ValueError()\n")

	var got []string
	if err := Walk(context.Background(), Config{Root: dir}, ignore.Matcher{}, func(p string, _ []byte) {
		got = append(got, p)
	}); err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected opt-out file skipped, got %v", got)
	}
}

func TestCountTargets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "x = 1\n")
	writeFile(t, dir, "b.py", "y = 2\n")
	writeFile(t, dir, "c.txt", "nope\n")

	n, err := CountTargets(Config{Root: dir})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("CountTargets = %d, want 2", n)
	}
}
