package scaffold

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// PackageName derives a valid Go package identifier from a module
// path: the last path element, lowercased, with separators and other
// invalid characters removed. "github.com/acme/go-fast-cache" becomes
// "fastcache".
func PackageName(module string) string {
	base := module
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	base = strings.ToLower(base)
	base = strings.TrimPrefix(base, "go-")
	base = strings.TrimSuffix(base, "-go")

	var b strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" {
		return "pkg"
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "pkg" + name
	}
	return name
}

// DisplayName turns a project name into a title for the README:
// "my-cool-pkg" becomes "My Cool Pkg".
func DisplayName(name string) string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	if len(fields) == 0 {
		return name
	}
	return titleCaser.String(strings.Join(fields, " "))
}
