package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ProjectFileName is the project manifest looked up when none is given.
const ProjectFileName = "abisync.toml"

// ErrProjectNotFound indicates no project manifest could be located.
var ErrProjectNotFound = errors.New("project manifest not found")

// Paths contains the filesystem locations abisync works with.
type Paths struct {
	// Project is the absolute path of the project manifest
	Project string

	// Root is the directory containing the manifest; relative output
	// directories in the manifest are resolved against it
	Root string
}

// ResolvePaths locates the project manifest.
//   - project names a file: use it
//   - project names a directory: use <dir>/abisync.toml
//   - project is empty: search cwd and its parents for abisync.toml
func ResolvePaths(project, cwd string) (*Paths, error) {
	if project == "" {
		found, err := findUpwards(cwd, ProjectFileName)
		if err != nil {
			return nil, err
		}
		return newPaths(found)
	}

	if !filepath.IsAbs(project) {
		project = filepath.Join(cwd, project)
	}
	info, err := os.Stat(project)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, project)
		}
		return nil, fmt.Errorf("failed to stat project %s: %w", project, err)
	}
	if info.IsDir() {
		project = filepath.Join(project, ProjectFileName)
		if _, err := os.Stat(project); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, project)
		}
	}
	return newPaths(project)
}

func newPaths(project string) (*Paths, error) {
	abs, err := filepath.Abs(project)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project path: %w", err)
	}
	return &Paths{
		Project: abs,
		Root:    filepath.Dir(abs),
	}, nil
}

// findUpwards walks from dir to the filesystem root looking for name.
func findUpwards(dir, name string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory: %w", err)
	}
	for {
		candidate := filepath.Join(current, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%w: no %s in %s or any parent", ErrProjectNotFound, name, dir)
		}
		current = parent
	}
}
