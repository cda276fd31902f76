package poses

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_NonEmptyAndStable(t *testing.T) {
	first := Default()
	if len(first) == 0 {
		t.Fatal("Default() returned empty pose list")
	}

	second := Default()
	if len(first) != len(second) {
		t.Fatalf("Default() length changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("pose %d differs between calls: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	list, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if len(list) != len(Default()) {
		t.Errorf("Load(\"\") returned %d poses, want %d", len(list), len(Default()))
	}
}

func TestLoad_YAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poses.yaml")
	content := "- jumping mid-air\n- crouching low\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	want := []string{"jumping mid-air", "crouching low"}
	if len(list) != len(want) {
		t.Fatalf("Load() returned %d poses, want %d", len(list), len(want))
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("pose %d = %q, want %q", i, list[i], want[i])
		}
	}
}

func TestLoad_EmptyFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poses.yaml")
	if err := os.WriteFile(path, []byte("[]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrEmptyPoseList) {
		t.Errorf("err = %v, want ErrEmptyPoseList", err)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load(missing file) returned nil error, want error")
	}
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poses.yaml")
	if err := os.WriteFile(path, []byte("{not valid: [yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load(malformed yaml) returned nil error, want error")
	}
}
