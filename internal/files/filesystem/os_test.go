package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_OpenFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "customers.csv")
	expected := "customer_id,name,email,country\n1,Jane Doe,jane@x.com,US\n"
	os.WriteFile(filePath, []byte(expected), 0644)

	fs := NewOSFileSystem()

	r, err := fs.OpenFile(filePath)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(data) != expected {
		t.Errorf("OpenFile() content = %q, want %q", string(data), expected)
	}
}

func TestOSFileSystem_OpenFile_Nonexistent(t *testing.T) {
	provider := NewOSFileSystem()

	_, err := provider.OpenFile(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenFile(nonexistent) error = %v, want fs.ErrNotExist", err)
	}
}

func TestOSFileSystem_OpenFile_Directory(t *testing.T) {
	provider := NewOSFileSystem()

	if _, err := provider.OpenFile(t.TempDir()); err == nil {
		t.Error("OpenFile(dir) should return error")
	}
}

func TestOSFileSystem_Stat_File(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "orders.csv")
	os.WriteFile(filePath, []byte("order_id\n"), 0644)

	fs := NewOSFileSystem()

	info, err := fs.Stat(filePath)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.IsDir() {
		t.Error("Stat(file) should not be a directory")
	}
	if info.Name() != "orders.csv" {
		t.Errorf("Stat().Name() = %q, want %q", info.Name(), "orders.csv")
	}
}

func TestOSFileSystem_Stat_Directory(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()

	info, err := fs.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat(dir) should be a directory")
	}
}

func TestOSFileSystem_Stat_Nonexistent(t *testing.T) {
	provider := NewOSFileSystem()

	_, err := provider.Stat(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(nonexistent) error = %v, want fs.ErrNotExist", err)
	}
}

func TestOSFileSystem_ReadDir_Sorted(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "payments.csv"), nil, 0644)
	os.WriteFile(filepath.Join(dir, "customers.csv"), nil, 0644)
	os.Mkdir(filepath.Join(dir, "archive"), 0755)

	fs := NewOSFileSystem()

	entries, err := fs.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	want := []string{"archive", "customers.csv", "payments.csv"}
	if len(entries) != len(want) {
		t.Fatalf("ReadDir() returned %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Name() != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Name(), want[i])
		}
	}
}
