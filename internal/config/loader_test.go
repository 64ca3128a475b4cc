package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.BatchConcurrency != 4 {
		t.Errorf("BatchConcurrency = %d, want 4", cfg.BatchConcurrency)
	}
	if cfg.DatabasePath == "" {
		t.Error("DatabasePath should have a default")
	}
}

func TestLoadMissingFilesAreSkipped(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "absent.json"), filepath.Join(dir, "also-absent.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BatchConcurrency != 4 {
		t.Errorf("BatchConcurrency = %d, want default 4", cfg.BatchConcurrency)
	}
}

func TestProjectOverridesGlobal(t *testing.T) {
	dir := t.TempDir()
	global := writeConfig(t, dir, "global.json", `{
		"default_category": "research",
		"database_path": "/tmp/global.db",
		"batch_concurrency": 2,
		"blueprint_dirs": ["/etc/blueprints"]
	}`)
	project := writeConfig(t, dir, "project.json", `{
		"default_category": "testing",
		"blueprint_dirs": ["./blueprints"]
	}`)

	cfg, err := Load(global, project)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DefaultCategory != "testing" {
		t.Errorf("DefaultCategory = %q, want testing (project wins)", cfg.DefaultCategory)
	}
	if cfg.DatabasePath != "/tmp/global.db" {
		t.Errorf("DatabasePath = %q, want the global value", cfg.DatabasePath)
	}
	if cfg.BatchConcurrency != 2 {
		t.Errorf("BatchConcurrency = %d, want 2", cfg.BatchConcurrency)
	}

	wantDirs := []string{"/etc/blueprints", "./blueprints"}
	if !reflect.DeepEqual(cfg.BlueprintDirs, wantDirs) {
		t.Errorf("BlueprintDirs = %v, want %v (accumulated)", cfg.BlueprintDirs, wantDirs)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	broken := writeConfig(t, dir, "broken.json", `{"default_category": `)

	if _, err := Load(broken, ""); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
