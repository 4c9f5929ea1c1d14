// Package project loads the abisync.toml project manifest.
//
// The manifest stands in for the host build: it carries the project-level
// supportArmeabi value and declares, per build variant, which native-packaging
// task produces the variant's library tree and where that task writes it.
//
//	supportArmeabi = 2
//
//	[[variants]]
//	name = "release"
//	nativeTask = "mergeReleaseNativeLibs"
//	finalizeTask = "packageRelease"
//
//	[[tasks]]
//	name = "mergeReleaseNativeLibs"
//	outputs = ["build/app/intermediates/merged_native_libs/release/out/lib"]
package project

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/xinfeng-tech/flutter-libs/internal/engine"
)

// Manifest is the decoded abisync.toml.
type Manifest struct {
	// SupportArmeabi is the project-level strategy; nil when the key is absent
	SupportArmeabi *int `toml:"supportArmeabi"`

	Variants []Variant `toml:"variants"`
	Tasks    []Task    `toml:"tasks"`
}

// Variant is a build variant and the tasks reconciliation is ordered between.
type Variant struct {
	Name string `toml:"name"`

	// NativeTask produces the variant's native library tree; reconciliation runs after it
	NativeTask string `toml:"nativeTask"`

	// FinalizeTask packages the artifact; reconciliation runs before it
	FinalizeTask string `toml:"finalizeTask"`
}

// Task is a build task and the directories it declares as outputs.
type Task struct {
	Name    string   `toml:"name"`
	Outputs []string `toml:"outputs"`
}

// Project is a loaded manifest bound to the directory it was read from.
// It implements engine.VariantSource.
type Project struct {
	Manifest Manifest
	root     string
}

var _ engine.VariantSource = (*Project)(nil)

// Load reads and decodes the manifest at path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return Parse(data, filepath.Dir(path))
}

// Parse decodes manifest bytes. Relative task outputs resolve against root.
func Parse(data []byte, root string) (*Project, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing project manifest: %w", err)
	}

	seen := make(map[string]bool, len(m.Variants))
	for _, v := range m.Variants {
		if v.Name == "" {
			return nil, fmt.Errorf("parsing project manifest: variant without a name")
		}
		if seen[v.Name] {
			return nil, fmt.Errorf("parsing project manifest: duplicate variant %q", v.Name)
		}
		seen[v.Name] = true
	}

	return &Project{Manifest: m, root: root}, nil
}

// Root returns the directory relative outputs are resolved against.
func (p *Project) Root() string {
	return p.root
}

// Variants returns variant names in manifest order.
func (p *Project) Variants() ([]string, error) {
	names := make([]string, len(p.Manifest.Variants))
	for i, v := range p.Manifest.Variants {
		names[i] = v.Name
	}
	return names, nil
}

// Variant looks up a variant by name.
func (p *Project) Variant(name string) (Variant, bool) {
	for _, v := range p.Manifest.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// OutputDir resolves the single output directory of the variant's
// native-packaging task.
func (p *Project) OutputDir(variant string) (string, error) {
	v, ok := p.Variant(variant)
	if !ok {
		return "", &engine.TaskWiringError{Variant: variant, Reason: "variant not declared in project"}
	}
	if v.NativeTask == "" {
		return "", &engine.TaskWiringError{Variant: variant, Reason: "no native-packaging task declared"}
	}

	var matches []Task
	for _, t := range p.Manifest.Tasks {
		if t.Name == v.NativeTask {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return "", &engine.TaskWiringError{Variant: variant, Task: v.NativeTask, Reason: "task not found"}
	case 1:
	default:
		return "", &engine.TaskWiringError{Variant: variant, Task: v.NativeTask, Reason: fmt.Sprintf("task declared %d times", len(matches))}
	}

	outputs := matches[0].Outputs
	if len(outputs) != 1 {
		return "", &engine.TaskWiringError{
			Variant: variant,
			Task:    v.NativeTask,
			Reason:  fmt.Sprintf("expected exactly one output directory, found %d", len(outputs)),
		}
	}

	dir := outputs[0]
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(p.root, dir)
	}
	return filepath.Clean(dir), nil
}
