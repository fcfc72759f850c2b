package theme

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

// EmbeddedStylesheets contains the bundled CSS files.
//
//go:embed themes/*.css
var EmbeddedStylesheets embed.FS

// BaseStylesheetName is the name of the bundled base stylesheet.
const BaseStylesheetName = "base"

// GetEmbeddedStylesheet retrieves a bundled stylesheet by name.
// Imports are NOT processed here; use BaseStylesheet or LoadStylesheet.
func GetEmbeddedStylesheet(name string) (string, bool) {
	data, err := EmbeddedStylesheets.ReadFile("themes/" + name + ".css")
	if err != nil {
		return "", false
	}
	return string(data), true
}

// GetEmbeddedPartial retrieves a bundled partial (files starting with _).
func GetEmbeddedPartial(name string) (string, bool) {
	if !strings.HasPrefix(name, "_") {
		name = "_" + name
	}
	if !strings.HasSuffix(name, ".css") {
		name = name + ".css"
	}

	data, err := EmbeddedStylesheets.ReadFile("themes/" + name)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// ListEmbeddedStylesheets returns names of all bundled stylesheets,
// excluding partials.
func ListEmbeddedStylesheets() []string {
	var names []string

	entries, err := fs.ReadDir(EmbeddedStylesheets, "themes")
	if err != nil {
		return []string{BaseStylesheetName}
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "_") {
			continue
		}
		if ext := filepath.Ext(name); ext == ".css" {
			names = append(names, strings.TrimSuffix(name, ext))
		}
	}

	return names
}

// BaseStylesheet returns the bundled base stylesheet with its partials
// inlined.
func BaseStylesheet() string {
	css, _ := GetEmbeddedStylesheet(BaseStylesheetName)
	return ProcessImports(css, "", nil)
}
