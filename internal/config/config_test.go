package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "pythrow.yaml", "max_bytes: 123\npython: /usr/bin/python3.12\ntimeout: 5s\nno_dynamic: true\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 123 {
		t.Fatalf("expected max_bytes=123, got %#v", cfg.MaxBytes)
	}
	if cfg.Python == nil || *cfg.Python != "/usr/bin/python3.12" {
		t.Fatalf("expected python interpreter, got %#v", cfg.Python)
	}
	if cfg.Timeout == nil || *cfg.Timeout != "5s" {
		t.Fatalf("expected timeout=5s, got %#v", cfg.Timeout)
	}
	if cfg.NoDynamic == nil || *cfg.NoDynamic != true {
		t.Fatalf("expected no_dynamic=true")
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	// place both, expect the dotfile to be picked first by search order
	writeTemp(t, dir, "pythrow.yaml", "max_bytes: 1\n")
	writeTemp(t, dir, ".pythrow.yaml", "max_bytes: 7\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 7 {
		t.Fatalf("expected max_bytes=7 from .pythrow.yaml, got %#v", cfg.MaxBytes)
	}
}

func TestLoadLocal_NoConfig(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLocal(dir); err == nil {
		t.Fatal("expected error when no local config exists")
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "pythrow")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p := filepath.Join(cfgDir, "config.yml")
	if err := os.WriteFile(p, []byte("fail_on: high\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.FailOn == nil || *cfg.FailOn != "high" {
		t.Fatalf("expected fail_on=high from global config, got %#v", cfg.FailOn)
	}
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	// Simulate no HOME as well by clearing HOME; LoadGlobal should error
	t.Setenv("HOME", "")
	if _, err := LoadGlobal(); err == nil {
		t.Fatal("expected error when no global config dir exists")
	}
}
