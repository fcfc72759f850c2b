package theme

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// importRegex matches @import "file.css"; or @import 'file.css'; or @import url("file.css");
var importRegex = regexp.MustCompile(`@import\s+(?:url\s*\(\s*)?["']([^"']+)["']\s*\)?;?`)

// LoadStylesheet reads a user stylesheet and inlines its @import statements.
// Imports are resolved relative to the stylesheet's directory.
func LoadStylesheet(path string) (string, error) {
	css, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return ProcessImports(string(css), filepath.Dir(path), nil), nil
}

// ProcessImports resolves and inlines @import statements in CSS.
// Imports are resolved relative to baseDir; files that cannot be read fall
// back to bundled partials and stylesheets of the same name.
// The seen map prevents circular imports.
func ProcessImports(css string, baseDir string, seen map[string]bool) string {
	if seen == nil {
		seen = make(map[string]bool)
	}

	return importRegex.ReplaceAllStringFunc(css, func(match string) string {
		submatch := importRegex.FindStringSubmatch(match)
		if len(submatch) < 2 {
			return match
		}

		importPath := submatch[1]

		fullPath := importPath
		if !filepath.IsAbs(importPath) {
			fullPath = filepath.Join(baseDir, importPath)
		}

		if seen[fullPath] {
			return "/* circular import prevented: " + importPath + " */"
		}
		seen[fullPath] = true

		imported, err := os.ReadFile(fullPath)
		if err != nil {
			baseName := filepath.Base(importPath)
			if strings.HasPrefix(baseName, "_") {
				if embedded, found := GetEmbeddedPartial(baseName); found {
					return "/* imported (embedded): " + importPath + " */\n" + embedded
				}
			}
			name := strings.TrimSuffix(baseName, ".css")
			if embedded, found := GetEmbeddedStylesheet(name); found {
				return "/* imported (embedded): " + importPath + " */\n" + ProcessImports(embedded, "", seen)
			}
			return "/* import failed: " + importPath + " - " + err.Error() + " */"
		}

		return "/* imported: " + importPath + " */\n" + ProcessImports(string(imported), filepath.Dir(fullPath), seen)
	})
}
