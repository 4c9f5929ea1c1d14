package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xinfeng-tech/flutter-libs/internal/engine"
)

const manifest = `
supportArmeabi = 2

[[variants]]
name = "debug"
nativeTask = "mergeDebugNativeLibs"
finalizeTask = "packageDebug"

[[variants]]
name = "release"
nativeTask = "mergeReleaseNativeLibs"
finalizeTask = "packageRelease"

[[variants]]
name = "profile"
nativeTask = "mergeProfileNativeLibs"

[[variants]]
name = "staging"
nativeTask = "mergeStagingNativeLibs"

[[variants]]
name = "orphan"

[[tasks]]
name = "mergeDebugNativeLibs"
outputs = ["build/debug/lib"]

[[tasks]]
name = "mergeReleaseNativeLibs"
outputs = ["/abs/release/lib"]

[[tasks]]
name = "mergeProfileNativeLibs"
outputs = ["build/profile/lib", "build/profile/extra"]
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(manifest), "/work/android")
	require.NoError(t, err)

	require.NotNil(t, p.Manifest.SupportArmeabi)
	assert.Equal(t, 2, *p.Manifest.SupportArmeabi)

	variants, err := p.Variants()
	require.NoError(t, err)
	assert.Equal(t, []string{"debug", "release", "profile", "staging", "orphan"}, variants)

	v, ok := p.Variant("release")
	require.True(t, ok)
	assert.Equal(t, "packageRelease", v.FinalizeTask)
	assert.Equal(t, "/work/android", p.Root())
}

func TestParse_NoExtension(t *testing.T) {
	p, err := Parse([]byte("[[variants]]\nname = \"release\"\n"), "/work")
	require.NoError(t, err)
	assert.Nil(t, p.Manifest.SupportArmeabi)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad toml", "supportArmeabi = ["},
		{"wrong type", `supportArmeabi = "two"`},
		{"unnamed variant", "[[variants]]\nnativeTask = \"x\"\n"},
		{"duplicate variant", "[[variants]]\nname = \"a\"\n[[variants]]\nname = \"a\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "/work")
			assert.Error(t, err)
		})
	}
}

func TestProject_OutputDir(t *testing.T) {
	p, err := Parse([]byte(manifest), "/work/android")
	require.NoError(t, err)

	dir, err := p.OutputDir("debug")
	require.NoError(t, err)
	assert.Equal(t, "/work/android/build/debug/lib", dir)

	dir, err = p.OutputDir("release")
	require.NoError(t, err)
	assert.Equal(t, "/abs/release/lib", dir)
}

func TestProject_OutputDirWiringErrors(t *testing.T) {
	p, err := Parse([]byte(manifest), "/work/android")
	require.NoError(t, err)

	tests := []struct {
		variant    string
		wantTask   string
		wantReason string
	}{
		{"missing", "", "not declared"},
		{"orphan", "", "no native-packaging task"},
		{"staging", "mergeStagingNativeLibs", "task not found"},
		{"profile", "mergeProfileNativeLibs", "found 2"},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			_, err := p.OutputDir(tt.variant)
			require.Error(t, err)
			assert.True(t, errors.Is(err, engine.ErrTaskWiring))

			var wiring *engine.TaskWiringError
			require.True(t, errors.As(err, &wiring))
			assert.Equal(t, tt.variant, wiring.Variant)
			assert.Equal(t, tt.wantTask, wiring.Task)
			assert.Contains(t, wiring.Reason, tt.wantReason)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abisync.toml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir, p.Root())

	out, err := p.OutputDir("debug")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "build", "debug", "lib"), out)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
