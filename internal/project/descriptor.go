// Package project manages the on-disk layout of a Lazo project: its
// directory and the project.toml descriptor shared by every suite process.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DescriptorFile is the name of the descriptor inside a project directory.
const DescriptorFile = "project.toml"

// DefaultVersion is written into new descriptors.
const DefaultVersion = "0.1.0"

// UnnamedProject is displayed when a descriptor carries no name.
const UnnamedProject = "Unnamed Project"

const (
	nameKey    = "project_name"
	versionKey = "version"
)

// ErrDescriptorNotFound is returned when a project directory has no
// descriptor. It also matches fs.ErrNotExist.
var ErrDescriptorNotFound = fmt.Errorf("%s not found: %w", DescriptorFile, fs.ErrNotExist)

// Descriptor is the content of project.toml.
type Descriptor struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// DisplayName returns the name, or UnnamedProject when it is empty.
func (d Descriptor) DisplayName() string {
	if d.Name == "" {
		return UnnamedProject
	}
	return d.Name
}

// String renders the descriptor file content.
func (d Descriptor) String() string {
	version := d.Version
	if version == "" {
		version = DefaultVersion
	}
	return fmt.Sprintf("%s = \"%s\"\n%s = \"%s\"\n", nameKey, d.Name, versionKey, version)
}

// DescriptorPath returns the descriptor path for a project directory.
func DescriptorPath(dir string) string {
	return filepath.Join(dir, DescriptorFile)
}

// WriteDescriptor writes d into dir, replacing any existing descriptor.
func WriteDescriptor(dir string, d Descriptor) error {
	if err := os.WriteFile(DescriptorPath(dir), []byte(d.String()), 0644); err != nil {
		return fmt.Errorf("failed to write descriptor: %w", err)
	}
	return nil
}

// ReadDescriptor reads the descriptor of the project in dir.
func ReadDescriptor(dir string) (Descriptor, error) {
	content, err := os.ReadFile(DescriptorPath(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return Descriptor{}, fmt.Errorf("%s: %w", dir, ErrDescriptorNotFound)
	}
	if err != nil {
		return Descriptor{}, fmt.Errorf("failed to read descriptor: %w", err)
	}
	return ParseDescriptor(string(content)), nil
}

// ParseDescriptor extracts name and version from descriptor text. Each value
// comes from the first line starting with its key, with the "key = " prefix
// and all double quotes removed. Missing keys yield empty fields.
func ParseDescriptor(content string) Descriptor {
	var d Descriptor
	var haveName, haveVersion bool
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case !haveName && strings.HasPrefix(line, nameKey):
			d.Name = stripValue(line, nameKey)
			haveName = true
		case !haveVersion && strings.HasPrefix(line, versionKey):
			d.Version = stripValue(line, versionKey)
			haveVersion = true
		}
	}
	return d
}

func stripValue(line, key string) string {
	v := strings.Replace(line, key+" = ", "", 1)
	return strings.ReplaceAll(v, `"`, "")
}
