package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  api-key-value\n"), 0o600); err != nil {
		t.Fatalf("writing key file: %v", err)
	}

	got, err := Load(Source{Name: "gemini api key", File: path})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != "api-key-value" {
		t.Fatalf("Load = %q, want trimmed value", got)
	}
}

func TestLoadInlineValue(t *testing.T) {
	got, err := Load(Source{Name: "gemini api key", Value: "inline"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != "inline" {
		t.Fatalf("Load = %q, want %q", got, "inline")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("writing key file: %v", err)
	}

	_, err := Load(Source{Name: "gemini api key", File: path})
	if err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected empty-file error, got %v", err)
	}
}

func TestLoadUnconfigured(t *testing.T) {
	_, err := Load(Source{Name: "gemini api key"})
	if err == nil || !strings.Contains(err.Error(), "not configured") {
		t.Fatalf("expected not-configured error, got %v", err)
	}
}
