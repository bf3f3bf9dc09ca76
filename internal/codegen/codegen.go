// Package codegen defines the output of markup generators.
package codegen

import (
	"strings"

	"github.com/barun-bash/uigen/internal/component"
)

// File is one generated source file.
type File struct {
	Name         string   `json:"name"`
	Path         string   `json:"path"`
	Content      string   `json:"content"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// Lines returns the number of lines in the file's content.
func (f File) Lines() int {
	if f.Content == "" {
		return 0
	}
	return strings.Count(strings.TrimSuffix(f.Content, "\n"), "\n") + 1
}

// Generator turns a classified tree into source files.
type Generator interface {
	Generate(tree *component.Tree) ([]File, error)
}
