package jsonfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeNonASCII(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ascii unchanged", `{"a":"b"}`, `{"a":"b"}`},
		{"latin", `"café"`, `"caf\u00e9"`},
		{"bmp", `"π"`, `"\u03c0"`},
		{"astral uses surrogates", `"𝄞"`, `"\ud834\udd1e"`},
		{"existing escapes kept", `"\n\t\"q\"\u00e9"`, `"\n\t\"q\"\u00e9"`},
		{"line separator escaped", "\"a\u2028b\"", `"a\u2028b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(escapeNonASCII([]byte(tt.input))))
		})
	}
}

func TestDescribeRaw(t *testing.T) {
	assert.Equal(t, "an array", describeRaw([]byte(`[]`)))
	assert.Equal(t, "a string", describeRaw([]byte(`"x"`)))
	assert.Equal(t, "null", describeRaw([]byte(`null`)))
	assert.Equal(t, "a boolean", describeRaw([]byte(`false`)))
	assert.Equal(t, "a number", describeRaw([]byte(`-1`)))
	assert.Equal(t, "empty", describeRaw(nil))
}
