package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidProject is returned when a project cannot be created from the
// given name and base directory.
var ErrInvalidProject = errors.New("invalid project")

// Create makes <base>/<name> and writes its descriptor. An existing
// directory is left untouched and reported with created=false, so reopening
// a project never rewrites its descriptor.
func Create(base, name, version string) (dir string, created bool, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false, fmt.Errorf("%w: project name is required", ErrInvalidProject)
	}
	if name == "." || name == ".." {
		return "", false, fmt.Errorf("%w: project name %q names an existing directory", ErrInvalidProject, name)
	}
	if strings.ContainsAny(name, `/\`) {
		return "", false, fmt.Errorf("%w: project name %q must not contain path separators", ErrInvalidProject, name)
	}
	if base == "" {
		return "", false, fmt.Errorf("%w: base directory is required", ErrInvalidProject)
	}

	dir = filepath.Join(base, name)
	if _, err := os.Stat(dir); err == nil {
		return dir, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", false, fmt.Errorf("failed to stat %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", false, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if version == "" {
		version = DefaultVersion
	}
	if err := WriteDescriptor(dir, Descriptor{Name: name, Version: version}); err != nil {
		return dir, true, err
	}
	return dir, true, nil
}
