package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_WritesMetricsFile(t *testing.T) {
	t.Setenv("NODE_ENV", "production")
	dir := t.TempDir()
	metricsFile := filepath.Join(dir, "docsite.prom")
	out := filepath.Join(dir, "site.yaml")

	code := run([]string{
		"-c", filepath.Join(dir, "docsite.yaml"),
		"--env-dir", dir,
		"--log-level", "error",
		"--metrics-file", metricsFile,
		"assemble", "-o", out,
	})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "/policy-reporter/") {
		t.Fatalf("production base missing from output:\n%s", data)
	}

	prom, err := os.ReadFile(metricsFile)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !strings.Contains(string(prom), "docsite_assemble_duration_seconds_count 1") {
		t.Fatalf("assemble duration not recorded:\n%s", prom)
	}
}

func TestRun_ExitCodeForBadSettings(t *testing.T) {
	t.Setenv("NODE_ENV", "")
	dir := t.TempDir()
	cfg := filepath.Join(dir, "docsite.yaml")
	if err := os.WriteFile(cfg, []byte("theme: unknown-theme\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	code := run([]string{"-c", cfg, "--env-dir", dir, "--log-level", "error", "assemble", "-o", filepath.Join(dir, "x.yaml")})
	if code != 11 {
		t.Fatalf("exit code = %d, want 11", code)
	}
}
