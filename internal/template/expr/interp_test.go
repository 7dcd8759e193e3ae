package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalIn(t *testing.T, src string, data map[string]any) any {
	t.Helper()
	v, err := Eval(src, NewEnv(data))
	require.NoError(t, err)
	return v
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		src      string
		expected any
	}{
		{src: "1 + 2", expected: 3.0},
		{src: "10 - 4", expected: 6.0},
		{src: "3 * 4", expected: 12.0},
		{src: "10 / 4", expected: 2.5},
		{src: "10 % 3", expected: 1.0},
		{src: "-(1 + 2)", expected: -3.0},
		{src: "2 + 3 * 4", expected: 14.0},
		{src: "(2 + 3) * 4", expected: 20.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, evalIn(t, tt.src, nil), "source: %q", tt.src)
	}
}

func TestEvalStringConcatenation(t *testing.T) {
	data := map[string]any{"name": "go", "n": 2}
	assert.Equal(t, "hello go", evalIn(t, `"hello " + name`, data))
	assert.Equal(t, "v2", evalIn(t, `"v" + n`, data))
	assert.Equal(t, "2x", evalIn(t, `n + "x"`, data))
	assert.Equal(t, "a", evalIn(t, `"a" + null`, data), "null stringifies to empty")
}

func TestEvalComparisons(t *testing.T) {
	tests := []struct {
		src      string
		expected bool
	}{
		{src: "1 < 2", expected: true},
		{src: "2 <= 2", expected: true},
		{src: "3 > 4", expected: false},
		{src: `"a" < "b"`, expected: true},
		{src: `"b" >= "b"`, expected: true},
		{src: "1 == 1.0", expected: true},
		{src: `"x" == "x"`, expected: true},
		{src: `"x" != "y"`, expected: true},
		{src: "null == null", expected: true},
		{src: `1 == "1"`, expected: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, evalIn(t, tt.src, nil), "source: %q", tt.src)
	}
}

func TestEvalLogical(t *testing.T) {
	data := map[string]any{"empty": "", "full": "x"}
	assert.Equal(t, false, evalIn(t, "empty && full", data))
	assert.Equal(t, true, evalIn(t, "empty || full", data))
	assert.Equal(t, true, evalIn(t, "!empty", data))

	// Short-circuit: the undefined right side is never evaluated.
	assert.Equal(t, true, evalIn(t, "full || nosuchvar", data))
	assert.Equal(t, false, evalIn(t, "empty && nosuchvar", data))
}

func TestEvalTruthiness(t *testing.T) {
	falsy := []any{nil, false, 0, 0.0, "", []any{}, map[string]any{}}
	for _, v := range falsy {
		assert.False(t, Truthy(v), "%#v should be falsy", v)
	}
	truthy := []any{true, 1, -1, "0", []any{nil}, map[string]any{"k": nil}}
	for _, v := range truthy {
		assert.True(t, Truthy(v), "%#v should be truthy", v)
	}
}

func TestEvalMemberAndIndex(t *testing.T) {
	data := map[string]any{
		"user":  map[string]any{"name": "ada", "tags": []string{"x", "y"}},
		"items": []any{10, 20, 30},
	}
	assert.Equal(t, "ada", evalIn(t, "user.name", data))
	assert.Equal(t, "y", evalIn(t, "user.tags[1]", data))
	assert.Equal(t, 20, evalIn(t, "items[1]", data))
	assert.Equal(t, "ada", evalIn(t, `user["name"]`, data))
	assert.Nil(t, evalIn(t, "user.missing", data), "missing map keys read as null")
}

func TestEvalBuiltins(t *testing.T) {
	data := map[string]any{"items": []any{1, 2, 3}, "s": "  Go  "}
	assert.Equal(t, 3.0, evalIn(t, "len(items)", data))
	assert.Equal(t, 6.0, evalIn(t, "len(s)", data))
	assert.Equal(t, "HELLO", evalIn(t, `upper("hello")`, data))
	assert.Equal(t, "hello", evalIn(t, `lower("HELLO")`, data))
	assert.Equal(t, "Go", evalIn(t, "trim(s)", data))
}

func TestExecPrograms(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected map[string]any
	}{
		{
			name:     "assignment chain",
			src:      "x = 2\ny = x * x",
			expected: map[string]any{"x": 2.0, "y": 4.0},
		},
		{
			name:     "if taken",
			src:      "if 1 < 2 { r = \"yes\" } else { r = \"no\" }",
			expected: map[string]any{"r": "yes"},
		},
		{
			name:     "for accumulates",
			src:      "total = 0\nfor n in nums {\ntotal = total + n\n}",
			expected: map[string]any{"total": 6.0},
		},
		{
			name:     "while counts",
			src:      "i = 0\nwhile i < 5 {\ni = i + 1\n}",
			expected: map[string]any{"i": 5.0},
		},
		{
			name:     "map keys iterate sorted",
			src:      "keys = \"\"\nfor k in m {\nkeys = keys + k\n}",
			expected: map[string]any{"keys": "abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnv(map[string]any{
				"nums": []any{1, 2, 3},
				"m":    map[string]any{"b": 1, "c": 2, "a": 3},
			})
			require.NoError(t, Exec(tt.src, env))
			for name, expected := range tt.expected {
				got, ok := env.Get(name)
				require.True(t, ok, "variable %q not set", name)
				assert.Equal(t, expected, got)
			}
		})
	}
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "undefined variable", src: "x = nosuchvar"},
		{name: "division by zero", src: "x = 1 / 0"},
		{name: "modulo by zero", src: "x = 1 % 0"},
		{name: "negate string", src: `x = -"a"`},
		{name: "arithmetic on strings", src: `x = "a" - "b"`},
		{name: "iterate a number", src: "for x in 5 { }"},
		{name: "index out of range", src: "x = items[9]"},
		{name: "index with string key on list", src: `x = items["a"]`},
		{name: "member access on number", src: "x = n.field"},
		{name: "unknown function", src: "x = frobnicate(1)"},
		{name: "compare string with number", src: `x = "a" < 1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnv(map[string]any{"items": []any{1}, "n": 1})
			err := Exec(tt.src, env)
			require.Error(t, err)
			assert.ErrorAs(t, err, new(*RuntimeError))
		})
	}
}

func TestEnvIsolation(t *testing.T) {
	data := map[string]any{"x": 1}
	env := NewEnv(data)
	env.Set("x", 99)
	env.Set("y", "new")

	assert.Equal(t, 1, data["x"], "seeding copies the mapping")
	_, ok := data["y"]
	assert.False(t, ok)
}

func TestToString(t *testing.T) {
	tests := []struct {
		in       any
		expected string
	}{
		{in: nil, expected: ""},
		{in: "s", expected: "s"},
		{in: true, expected: "true"},
		{in: false, expected: "false"},
		{in: 3.0, expected: "3"},
		{in: 3.5, expected: "3.5"},
		{in: 42, expected: "42"},
		{in: -0.25, expected: "-0.25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ToString(tt.in), "value: %#v", tt.in)
	}
}
