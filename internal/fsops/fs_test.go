package fsops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBillyFS_CopyFile(t *testing.T) {
	tests := []struct {
		name     string
		existing []byte
	}{
		{name: "new destination"},
		{name: "replaces existing destination", existing: []byte("old bytes that are longer")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewMemFS()
			src := "/out/armeabi-v7a/libfoo.so"
			dst := "/out/armeabi/libfoo.so"

			if err := fs.WriteFile(src, []byte("ELF payload"), 0755); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
			if tt.existing != nil {
				if err := fs.WriteFile(dst, tt.existing, 0644); err != nil {
					t.Fatalf("WriteFile failed: %v", err)
				}
			}

			if err := fs.CopyFile(src, dst); err != nil {
				t.Fatalf("CopyFile failed: %v", err)
			}

			got, err := fs.ReadFile(dst)
			if err != nil {
				t.Fatalf("ReadFile failed: %v", err)
			}
			if string(got) != "ELF payload" {
				t.Errorf("destination content = %q, want %q", got, "ELF payload")
			}
		})
	}
}

func TestBillyFS_CopyFileRejectsDirectory(t *testing.T) {
	fs := NewMemFS()
	if err := fs.MkdirAll("/out/armeabi-v7a", 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	if err := fs.CopyFile("/out/armeabi-v7a", "/out/armeabi"); err == nil {
		t.Error("expected error copying a directory")
	}
}

func TestBillyFS_CopyFileMissingSource(t *testing.T) {
	fs := NewMemFS()
	if err := fs.CopyFile("/nope.so", "/out/nope.so"); err == nil {
		t.Error("expected error for missing source")
	}
}

func TestBillyFS_ExistsAndIsDir(t *testing.T) {
	fs := NewMemFS()
	if err := fs.WriteFile("/out/x86/libbar.so", []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	tests := []struct {
		path       string
		wantExists bool
		wantDir    bool
	}{
		{"/out/x86", true, true},
		{"/out/x86/libbar.so", true, false},
		{"/out/armeabi", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			exists, err := fs.Exists(tt.path)
			if err != nil {
				t.Fatalf("Exists failed: %v", err)
			}
			if exists != tt.wantExists {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, exists, tt.wantExists)
			}

			isDir, err := fs.IsDir(tt.path)
			if err != nil {
				t.Fatalf("IsDir failed: %v", err)
			}
			if isDir != tt.wantDir {
				t.Errorf("IsDir(%q) = %v, want %v", tt.path, isDir, tt.wantDir)
			}
		})
	}
}

func TestBillyFS_RemoveAll(t *testing.T) {
	fs := NewMemFS()
	for _, p := range []string{"/out/armeabi-v7a/liba.so", "/out/armeabi-v7a/nested/libb.so"} {
		if err := fs.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	if err := fs.RemoveAll("/out/armeabi-v7a"); err != nil {
		t.Fatalf("RemoveAll failed: %v", err)
	}
	exists, err := fs.Exists("/out/armeabi-v7a")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("directory still exists after RemoveAll")
	}

	// removing again is a no-op
	if err := fs.RemoveAll("/out/armeabi-v7a"); err != nil {
		t.Errorf("RemoveAll on missing path failed: %v", err)
	}
}

func TestOSFS_CopyFilePreservesMode(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "armeabi-v7a", "libfoo.so")
	dst := filepath.Join(tmpDir, "armeabi", "libfoo.so")

	if err := os.MkdirAll(filepath.Dir(src), 0755); err != nil {
		t.Fatalf("failed to create source dir: %v", err)
	}
	if err := os.WriteFile(src, []byte("native"), 0750); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	fs := NewOSFS()
	if err := fs.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("failed to read destination: %v", err)
	}
	if string(data) != "native" {
		t.Errorf("destination content = %q, want %q", data, "native")
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("failed to stat destination: %v", err)
	}
	if info.Mode().Perm()&0700 != 0700 {
		t.Errorf("destination mode = %v, expected owner rwx", info.Mode().Perm())
	}
}

func TestOSFS_ReadDir(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"liba.so", "libb.so", "README"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(name), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	entries, err := NewOSFS().ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("ReadDir returned %d entries, want 3", len(entries))
	}
}
