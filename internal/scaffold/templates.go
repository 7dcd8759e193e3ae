package scaffold

// FileTemplate is one file the scaffolder renders into the new
// project. Name is itself a template, so stub filenames can derive
// from the package name.
type FileTemplate struct {
	Name       string
	Source     string
	BinaryOnly bool
}

// Builtin returns the template set shipped with pkgstrap, in the order
// they are rendered. All sources are written in the engine's template
// language; see internal/template.
func Builtin() []FileTemplate {
	return []FileTemplate{
		{Name: "go.mod", Source: manifestSource},
		{Name: ".gitignore", Source: gitignoreSource},
		{Name: ".editorconfig", Source: editorconfigSource},
		{Name: ".golangci.yml", Source: lintConfigSource},
		{Name: "LICENSE", Source: licenseSource},
		{Name: "README.md", Source: readmeSource},
		{Name: "<%= pkg %>.go", Source: stubSource},
		{Name: "<%= pkg %>_test.go", Source: stubTestSource},
		{Name: "cmd/<%= name %>/main.go", Source: mainSource, BinaryOnly: true},
	}
}

const manifestSource = `module <%= module %>

go <%= goVersion %>
`

const gitignoreSource = `# Binaries
/<%= name %>
*.exe
*.out

# Coverage
*.cover
coverage.html

# Editor droppings
.idea/
.vscode/
*.swp
`

// Deliberately contains no directives: a template without delimiters
// must render to itself byte for byte.
const editorconfigSource = `root = true

[*]
charset = utf-8
end_of_line = lf
insert_final_newline = true
indent_style = tab

[*.{yml,yaml}]
indent_style = space
indent_size = 2
`

const lintConfigSource = `run:
  timeout: 5m

linters:
  disable-all: true
  enable:
<% for linter in linters { %>    - <%= linter %>
<% } %>
issues:
  exclude-use-default: false
`

// licenseSource dispatches on the configured license identifier inside
// the template itself.
const licenseSource = `<% if license == "MIT" { -%>
MIT License

Copyright (c) <%= year %> <%= author %>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
<% } else if license == "Apache-2.0" { -%>
Copyright <%= year %> <%= author %>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
<% } else if license == "BSD-3-Clause" { -%>
Copyright (c) <%= year %>, <%= author %>

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice,
   this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its contributors
   may be used to endorse or promote products derived from this software
   without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES ARE DISCLAIMED. IN NO EVENT SHALL THE
COPYRIGHT HOLDER BE LIABLE FOR ANY DIRECT OR INDIRECT DAMAGES ARISING IN ANY
WAY OUT OF THE USE OF THIS SOFTWARE.
<% } else { -%>
This is free and unencumbered software released into the public domain.

Anyone is free to copy, modify, publish, use, compile, sell, or distribute
this software, either in source code form or as a compiled binary, for any
purpose, commercial or non-commercial, and by any means.

For more information, please refer to http://unlicense.org
<% } -%>
`

const readmeSource = `# <%= display %>

<%= description %>

## Install

    go get <%= module %>
<% if binary { %>
## Usage

    <%= name %> --help
<% } %>
## License

<%= license %>, see LICENSE. Copyright (c) <%= year %> <%= author %>.
`

const stubSource = `// Package <%= pkg %> implements <%= name %>.
//
// <%= description %>
package <%= pkg %>

// Version is the current release of <%= name %>.
const Version = "0.1.0"
`

const stubTestSource = `package <%= pkg %>

import "testing"

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Fatal("Version must not be empty")
	}
}
`

const mainSource = `package main

import (
	"fmt"

	<%= pkg %> "<%= module %>"
)

func main() {
	fmt.Println("<%= name %>", <%= pkg %>.Version)
}
`
