package fsutil

import (
	"io"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_Exists(t *testing.T) {
	fs := OSFileSystem{}

	if !fs.Exists("filesystem.go") {
		t.Error("expected filesystem.go to exist")
	}

	if fs.Exists("nonexistent_file_xyz.go") {
		t.Error("expected nonexistent file to not exist")
	}
}

func TestOSFileSystem_RoundTrip(t *testing.T) {
	fs := OSFileSystem{}
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	w, err := fs.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	f, err := fs.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("read %q, want %q", data, "hello")
	}
}

func TestOSFileSystem_ReadDir(t *testing.T) {
	fs := OSFileSystem{}
	dir := t.TempDir()
	for _, name := range []string{"b.log", "a.log"} {
		w, err := fs.Create(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		w.Close()
	}

	entries, err := fs.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name() != "a.log" || entries[1].Name() != "b.log" {
		t.Errorf("entries not sorted: %v, %v", entries[0].Name(), entries[1].Name())
	}
}

func TestMemoryFileSystem_OpenAndReadDir(t *testing.T) {
	fs := NewMemoryFileSystem()
	fs.WriteFile("logs/vfh/realistic/1.log", []byte("line\n"))
	fs.WriteFile("logs/vfh/realistic/2.log", []byte(""))
	fs.WriteFile("logs/nd/ideal/1.log", []byte(""))

	f, err := fs.Open("logs/vfh/realistic/1.log")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "line\n" {
		t.Errorf("read %q, want %q", data, "line\n")
	}

	entries, err := fs.ReadDir("logs")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name() != "nd" || !entries[0].IsDir() {
		t.Errorf("entry 0 = %v (dir=%v), want nd dir", entries[0].Name(), entries[0].IsDir())
	}

	entries, err = fs.ReadDir("logs/vfh/realistic")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 2 || entries[0].IsDir() {
		t.Errorf("unexpected leaf entries: %v", entries)
	}

	if _, err := fs.ReadDir("missing"); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestMemoryFileSystem_CreateWritesOnClose(t *testing.T) {
	fs := NewMemoryFileSystem()

	w, err := fs.Create("out/report.html")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := w.Write([]byte("<html>")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if !fs.Exists("out/report.html") {
		t.Error("expected file to exist after Close")
	}
	if !fs.Exists("out") {
		t.Error("expected parent dir to exist after Close")
	}
}

func TestMemoryFileSystem_RemoveAll(t *testing.T) {
	fs := NewMemoryFileSystem()
	fs.WriteFile("plots/vfh/1.png", []byte("png"))
	fs.WriteFile("plots/nd/1.png", []byte("png"))
	fs.WriteFile("plotsextra/keep.png", []byte("png"))

	if err := fs.RemoveAll("plots"); err != nil {
		t.Fatalf("RemoveAll failed: %v", err)
	}
	if fs.Exists("plots/vfh/1.png") || fs.Exists("plots") {
		t.Error("expected plots tree to be removed")
	}
	if !fs.Exists("plotsextra/keep.png") {
		t.Error("RemoveAll must not eat sibling prefixes")
	}
}

func TestResetDir(t *testing.T) {
	fs := NewMemoryFileSystem()
	fs.WriteFile("plots/stale.png", []byte("old"))

	if err := ResetDir(fs, "plots"); err != nil {
		t.Fatalf("ResetDir failed: %v", err)
	}
	if fs.Exists("plots/stale.png") {
		t.Error("expected stale artifact to be gone")
	}
	if !fs.Exists("plots") {
		t.Error("expected directory to be recreated")
	}

	if err := ResetDir(fs, "fresh"); err != nil {
		t.Fatalf("ResetDir on missing dir failed: %v", err)
	}
	if !fs.Exists("fresh") {
		t.Error("expected missing dir to be created")
	}
}
