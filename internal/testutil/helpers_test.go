package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTempDir(t *testing.T) {
	dir, cleanup := TempDir(t)
	defer cleanup()

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("directory should exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("should be a directory")
	}
	if !filepath.IsAbs(dir) {
		t.Error("should return absolute path")
	}
}

func TestTempDir_Cleanup(t *testing.T) {
	dir, cleanup := TempDir(t)
	cleanup()

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("directory should be removed after cleanup")
	}
}

func TestWriteFile_ReadFile(t *testing.T) {
	dir, cleanup := TempDir(t)
	defer cleanup()

	path := WriteFile(t, dir, "nested/dir/file.yaml", "topics: []")

	if !FileExists(t, path) {
		t.Fatal("file should exist")
	}
	if got := ReadFile(t, path); got != "topics: []" {
		t.Errorf("ReadFile = %q, want %q", got, "topics: []")
	}
}

func TestFileExists_Missing(t *testing.T) {
	if FileExists(t, "/nonexistent/path/file") {
		t.Error("FileExists should return false for missing file")
	}
}

func TestClock(t *testing.T) {
	c := NewClock()
	if !c.Now().Equal(Epoch) {
		t.Errorf("Now = %v, want %v", c.Now(), Epoch)
	}
	c.Advance(150 * time.Millisecond)
	if got := c.Now().Sub(Epoch); got != 150*time.Millisecond {
		t.Errorf("elapsed = %v, want 150ms", got)
	}
}

func TestSmallCurriculum(t *testing.T) {
	c := SmallCurriculum(t)
	if c.Len() != 4 || len(c.Edges) != 3 {
		t.Errorf("got %d topics and %d edges, want 4 and 3", c.Len(), len(c.Edges))
	}
	if problems := c.Validate(); len(problems) != 0 {
		t.Errorf("expected a valid fixture, got %v", problems)
	}
}

func TestFixedMeasure(t *testing.T) {
	measure := FixedMeasure(5)
	if got := measure("Calculus", 12); got != 40 {
		t.Errorf("measure = %v, want 40", got)
	}
}
