// Package expr implements the small expression language embedded in
// pkgstrap's template engine. Code and print blocks in templates are
// written in this language; the template compiler assembles them, plus
// generated output-append statements, into one program that this
// package lexes, parses and interprets.
//
// # Values
//
// null, booleans, numbers (a single 64-bit float type; Go integer
// values in the data mapping are widened on use), strings, lists
// ([]any or []string) and maps (map[string]any). Truthiness: null,
// false, 0, "", empty lists and empty maps are falsy; everything else
// is truthy.
//
// # Expressions
//
//	literals        1, 2.5, "text", 'text', true, false, null
//	variables       name
//	grouping        (expr)
//	property access user.name        (missing keys read as null)
//	indexing        items[0], m["k"]
//	unary           !x, -n
//	arithmetic      * / % + -        (+ concatenates if either side is a string)
//	comparison      < <= > >=        (numbers or strings)
//	equality        == !=
//	logical         && ||            (short-circuit, yield booleans)
//	builtins        len(x), upper(s), lower(s), trim(s)
//
// Reading an undefined variable is a runtime error; template data
// typos fail loudly rather than rendering empty output. Null converts
// to the empty string when concatenated or printed.
//
// # Statements
//
//	assignment      x = expr
//	conditionals    if expr { ... } else if expr { ... } else { ... }
//	iteration       for x in seq { ... }     (list elements, or map keys sorted)
//	                while expr { ... }
//	expression statements and bare { ... } blocks
//
// There are no semicolons. A newline at bracket depth zero terminates
// the current expression, so statements are one per line unless braces
// continue them; inside parentheses and square brackets newlines are
// insignificant. Conditions may be parenthesized C-style: "if (x) {"
// parses as an if over the grouped expression.
//
// There are no user-defined functions, no includes and no access to
// anything outside the environment the caller seeds. Programs are
// trusted input: no iteration limits or timeouts are applied.
package expr
