package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func testTemplates(a Artifacts) map[string][]byte {
	return map[string][]byte{
		a.Plan:     []byte("# Task Plan\n"),
		a.Findings: []byte("# Findings\n"),
		a.Progress: []byte("# Progress Log\n"),
	}
}

func TestCheckEmptyDir(t *testing.T) {
	dir := t.TempDir()
	artifacts := DefaultArtifacts()

	st := Check(dir, artifacts)
	if st.Complete() {
		t.Error("expected incomplete workspace in empty dir")
	}
	if len(st.Missing) != 3 {
		t.Errorf("expected 3 missing artifacts, got %v", st.Missing)
	}
	for _, name := range artifacts.Names() {
		if st.Present[name] {
			t.Errorf("expected %s to be absent", name)
		}
	}
}

func TestCheckPartialWorkspace(t *testing.T) {
	dir := t.TempDir()
	artifacts := DefaultArtifacts()
	if err := os.WriteFile(filepath.Join(dir, artifacts.Plan), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	st := Check(dir, artifacts)
	if st.Complete() {
		t.Error("expected incomplete workspace")
	}
	if !st.Present[artifacts.Plan] {
		t.Error("expected plan to be present")
	}
	if len(st.Missing) != 2 {
		t.Errorf("expected 2 missing, got %v", st.Missing)
	}
}

func TestCheckDirectoryIsNotAnArtifact(t *testing.T) {
	dir := t.TempDir()
	artifacts := DefaultArtifacts()
	if err := os.MkdirAll(filepath.Join(dir, artifacts.Plan), 0755); err != nil {
		t.Fatal(err)
	}

	st := Check(dir, artifacts)
	if st.Present[artifacts.Plan] {
		t.Error("a directory must not count as an existing artifact")
	}
}

func TestMaterializeCreatesMissing(t *testing.T) {
	dir := t.TempDir()
	artifacts := DefaultArtifacts()

	st := Check(dir, artifacts)
	created, err := Materialize(dir, st.Missing, testTemplates(artifacts))
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if len(created) != 3 {
		t.Errorf("expected 3 created, got %v", created)
	}

	if !Check(dir, artifacts).Complete() {
		t.Error("expected complete workspace after materialize")
	}
	data, err := os.ReadFile(filepath.Join(dir, artifacts.Plan))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# Task Plan\n" {
		t.Errorf("template not written verbatim: %q", data)
	}
}

func TestMaterializeNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	artifacts := DefaultArtifacts()
	userContent := []byte("# My Edited Plan\n")
	if err := os.WriteFile(filepath.Join(dir, artifacts.Plan), userContent, 0644); err != nil {
		t.Fatal(err)
	}

	st := Check(dir, artifacts)
	if _, err := Materialize(dir, st.Missing, testTemplates(artifacts)); err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, artifacts.Plan))
	if string(data) != string(userContent) {
		t.Errorf("existing file overwritten: %q", data)
	}
}

func TestMaterializeMissingTemplate(t *testing.T) {
	dir := t.TempDir()
	artifacts := DefaultArtifacts()
	templates := testTemplates(artifacts)
	delete(templates, artifacts.Findings)

	_, err := Materialize(dir, []string{artifacts.Findings}, templates)
	if err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestMaterializeAbortsOnWriteFailure(t *testing.T) {
	dir := t.TempDir()
	artifacts := DefaultArtifacts()
	// Make the target directory read-only so the first write fails.
	if err := os.Chmod(dir, 0555); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chmod(dir, 0755) }()
	if os.Getuid() == 0 {
		t.Skip("running as root; chmod does not block writes")
	}

	st := Check(dir, artifacts)
	created, err := Materialize(dir, st.Missing, testTemplates(artifacts))
	if err == nil {
		t.Fatal("expected write failure")
	}
	if len(created) != 0 {
		t.Errorf("expected no artifacts created, got %v", created)
	}
}
