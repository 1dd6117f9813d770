//go:build integration

package integration_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/rqst-labs/rqst/internal/manifest"
)

const happyQuest = `title = "T"
author = "A"
repo = "r"

[[stages]]
label = "s1"
description = "d1"
`

func TestBinaryHappyPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "rqst.toml"), happyQuest)

	res := runRqst(t, dir)
	if res.Code != 0 {
		t.Fatalf("exit = %d, stderr = %q", res.Code, res.Stderr)
	}
	if res.Stdout != "Validation passed.\n" {
		t.Errorf("stdout = %q", res.Stdout)
	}
}

func TestBinaryMissingManifest(t *testing.T) {
	res := runRqst(t, t.TempDir())
	if res.Code == 0 {
		t.Fatal("expected non-zero exit")
	}
	if !strings.Contains(res.Stderr, "Error loading quest config") || !strings.Contains(res.Stderr, "Failed to read") {
		t.Errorf("stderr = %q", res.Stderr)
	}
}

func TestBinaryValidationFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "rqst.toml"), `title = "T"
author = "A"
repo = "r"
stages = []
`)

	res := runRqst(t, dir)
	if res.Code != 2 {
		t.Errorf("exit = %d, want 2", res.Code)
	}
	if res.Stderr != "Validation Error: at least one stage must be defined.\n" {
		t.Errorf("stderr = %q", res.Stderr)
	}
	if res.Stdout != "" {
		t.Errorf("stdout = %q, want empty", res.Stdout)
	}
}

func TestBinaryExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quests", "other.toml")
	writeFile(t, path, happyQuest)

	res := runRqst(t, t.TempDir(), path)
	if res.Code != 0 {
		t.Fatalf("exit = %d, stderr = %q", res.Code, res.Stderr)
	}
}

// TestLoadAndValidateAgree checks that the library and the binary reach the
// same verdict for the same file.
func TestLoadAndValidateAgree(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rqst.toml")
	writeFile(t, path, happyQuest+`
[[stages]]
label = "  "
description = "d2"
`)

	q, err := manifest.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	verr := manifest.Validate(q)
	if verr == nil {
		t.Fatal("expected validation error")
	}

	res := runRqst(t, dir)
	if strings.TrimSpace(res.Stderr) != verr.Error() {
		t.Errorf("binary stderr = %q, library = %q", res.Stderr, verr.Error())
	}
}
