package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dbfetch.yaml")
	data := `output_dir: /var/lib/blast
sources:
  - https://example.com/db/16S_ribosomal_RNA.tar.gz
  - https://example.com/db/nt.tar.gz
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if m == nil {
		t.Fatal("LoadManifest returned nil for an existing file")
	}
	if m.OutputDir != "/var/lib/blast" {
		t.Errorf("OutputDir = %q, want /var/lib/blast", m.OutputDir)
	}
	if len(m.Sources) != 2 {
		t.Fatalf("Sources = %v, want 2 entries", m.Sources)
	}
	if m.Sources[1] != "https://example.com/db/nt.tar.gz" {
		t.Errorf("Sources[1] = %q", m.Sources[1])
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	m, err := LoadManifest(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadManifest returned error for missing file: %v", err)
	}
	if m != nil {
		t.Errorf("LoadManifest = %v, want nil for missing file", m)
	}
}

func TestLoadManifestInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("sources: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("UPLOAD_DIR", "")

	cfg := Load()
	if cfg.ServerAddr != ":5000" {
		t.Errorf("ServerAddr = %q, want :5000", cfg.ServerAddr)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("UploadDir = %q, want uploads", cfg.UploadDir)
	}
	if !cfg.IsDev() {
		t.Error("default environment should be development")
	}
}
