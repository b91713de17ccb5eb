package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		configPath = "canopy.toml"
		logLevel = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDemoList(t *testing.T) {
	out, err := execute(t, "demo", "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"counter", "form"} {
		if !strings.Contains(out, name) {
			t.Errorf("expected %q in output:\n%s", name, out)
		}
	}
}

func TestDemoUnknown(t *testing.T) {
	_, err := execute(t, "demo", "nope")
	if err == nil || !strings.Contains(err.Error(), "unknown demo") {
		t.Fatalf("expected unknown demo error, got %v", err)
	}
}

func TestConfigPrintsEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canopy.toml")
	if err := os.WriteFile(path, []byte("title = \"from file\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "config", "--config", path, "--log-level", "error")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "from file") {
		t.Errorf("expected title from file in output:\n%s", out)
	}
	if !strings.Contains(out, "log_level") || !strings.Contains(out, "error") {
		t.Errorf("expected log level override in output:\n%s", out)
	}
}

func TestConfigCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.toml")
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(good, []byte("width = 640\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("width = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "config", "check", good)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "good.toml: ok") {
		t.Errorf("unexpected output %q", out)
	}

	if _, err := execute(t, "config", "check", bad); err == nil {
		t.Error("expected error for an invalid config")
	}
}
