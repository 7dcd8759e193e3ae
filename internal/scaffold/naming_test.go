package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageName(t *testing.T) {
	tests := []struct {
		module   string
		expected string
	}{
		{module: "github.com/acme/widget", expected: "widget"},
		{module: "github.com/acme/go-fast-cache", expected: "fastcache"},
		{module: "github.com/acme/yaml-go", expected: "yaml"},
		{module: "example.com/My-Thing", expected: "mything"},
		{module: "widget", expected: "widget"},
		{module: "github.com/acme/2fa", expected: "pkg2fa"},
		{module: "github.com/acme/---", expected: "pkg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, PackageName(tt.module), "module: %s", tt.module)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{name: "my-cool-pkg", expected: "My Cool Pkg"},
		{name: "snake_case_name", expected: "Snake Case Name"},
		{name: "plain", expected: "Plain"},
		{name: "", expected: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, DisplayName(tt.name))
	}
}
