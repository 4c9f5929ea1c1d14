package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/xinfeng-tech/flutter-libs/internal/clock"
	"github.com/xinfeng-tech/flutter-libs/internal/engine"
	"github.com/xinfeng-tech/flutter-libs/internal/fsops"
	"github.com/xinfeng-tech/flutter-libs/internal/hash"
	"github.com/xinfeng-tech/flutter-libs/internal/project"
)

// manifestTemplate declares two variants whose native-packaging tasks write
// to build/<variant>/lib under the project root.
const manifestTemplate = `
[[variants]]
name = "debug"
nativeTask = "mergeDebugNativeLibs"
finalizeTask = "packageDebug"

[[variants]]
name = "release"
nativeTask = "mergeReleaseNativeLibs"
finalizeTask = "packageRelease"

[[tasks]]
name = "mergeDebugNativeLibs"
outputs = ["build/debug/lib"]

[[tasks]]
name = "mergeReleaseNativeLibs"
outputs = ["build/release/lib"]
`

// setupProject writes a manifest into a temp directory and loads it.
// extension, when non-empty, is prepended as the supportArmeabi line.
func setupProject(t *testing.T, extension string) *project.Project {
	t.Helper()

	root := t.TempDir()
	data := manifestTemplate
	if extension != "" {
		data = "supportArmeabi = " + extension + "\n" + data
	}
	path := filepath.Join(root, "abisync.toml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	p, err := project.Load(path)
	if err != nil {
		t.Fatalf("project.Load() error = %v", err)
	}
	return p
}

// setupEngine builds an engine over the real filesystem.
func setupEngine(t *testing.T) *engine.Engine {
	t.Helper()

	fs := fsops.NewOSFS()
	clk := clock.NewSteppingClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Second)
	return engine.New(fs, hash.NewSHA256Hasher(fs), clk, zerolog.Nop())
}

// writeFile creates a file and any missing parents.
func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// outputDir resolves a variant through the project like the engine does.
func outputDir(t *testing.T, p *project.Project, variant string) string {
	t.Helper()

	dir, err := p.OutputDir(variant)
	if err != nil {
		t.Fatalf("OutputDir(%q) error = %v", variant, err)
	}
	return dir
}

func ptr[T any](v T) *T {
	return &v
}
