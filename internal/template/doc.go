// Package template implements the micro template engine that renders
// every file pkgstrap scaffolds. It is a deliberately small, two-layer
// engine: a tokenizer that splits template source into text, print and
// code tokens, and a renderer that trims whitespace around directives,
// compiles the tokens into a program in the embedded expression
// language (see the expr subpackage) and executes it against a
// caller-supplied data mapping.
//
// # Template syntax
//
//	<% stmt %>     statement block, executed for control flow only
//	<%- stmt %>    as above, strip whitespace before the opener
//	<% stmt -%>    as above, strip whitespace after the closer
//	<%= expr %>    print block, appends the expression's value
//	<%-= expr %>   print block, trim before
//	<%= expr -%>   print block, trim after
//	anything else  emitted verbatim
//
// Delimiters cannot nest and cannot be escaped; a literal "<%" cannot
// appear in template text. Trim modifiers strip the standard
// whitespace class (space, tab, newline, carriage return) from the
// adjacent text only, never interior whitespace.
//
// A template with no delimiters renders to itself exactly, embedded
// quotes and newlines included.
//
// # Execution model
//
// Each render call builds a fresh variable environment from the data
// mapping plus the reserved output accumulator, runs the compiled
// program, and returns the accumulator. No state survives a call and
// nothing is shared between calls. Templates are trusted input: code
// blocks run arbitrary expression-language statements with no
// iteration limits or timeouts.
//
// The only error the engine itself raises is *SyntaxError, for an
// unclosed or nested delimiter. Failures inside block bodies (bad
// expression syntax, undefined variables) propagate from the expr
// package unchanged and, like syntax errors, yield no partial output.
package template
