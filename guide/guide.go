// Package guide provides access to the embedded help pages shown by
// "worthit guide" and the worthit_guide MCP tool.
package guide

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.md
var files embed.FS

// ErrUnknownTopic is returned by Get for a page that does not exist.
var ErrUnknownTopic = errors.New("unknown guide topic")

// Get returns the content of a guide page by name. If name is empty the
// index page "guide" is returned. Names are case-insensitive.
func Get(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "guide"
	}
	data, err := files.ReadFile(name + ".md")
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrUnknownTopic, name)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the available topic names (without the .md suffix),
// excluding the index page.
func List() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name != "guide" {
			names = append(names, name)
		}
	}
	return names, nil
}
