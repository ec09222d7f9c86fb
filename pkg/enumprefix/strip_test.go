package enumprefix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		rule     Rule
	}{
		{
			name:     "one digit marker",
			input:    "1. Apple\n",
			expected: "Apple\n",
			rule:     RuleOneDigit,
		},
		{
			name:     "two digit marker",
			input:    "12. Banana\n",
			expected: "Banana\n",
			rule:     RuleTwoDigit,
		},
		{
			name:     "three digit marker",
			input:    "123. Cherry\n",
			expected: "Cherry\n",
			rule:     RuleDefault,
		},
		{
			name:     "empty line",
			input:    "\n",
			expected: "\n",
			rule:     RuleBlank,
		},
		{
			name:     "short line without newline",
			input:    "abcd",
			expected: "\n",
			rule:     RuleBlank,
		},
		{
			name:     "exactly five with newline",
			input:    "1. a\n",
			expected: "\n",
			rule:     RuleBlank,
		},
		{
			name:     "six characters",
			input:    "1. ab\n",
			expected: "ab\n",
			rule:     RuleOneDigit,
		},
		{
			name:     "empty string",
			input:    "",
			expected: "\n",
			rule:     RuleBlank,
		},
		{
			name:     "last line without newline",
			input:    "1. Apple",
			expected: "Apple",
			rule:     RuleOneDigit,
		},
		{
			name:     "no marker falls back to five",
			input:    "Hello world\n",
			expected: " world\n",
			rule:     RuleDefault,
		},
		{
			name:     "dot at index one wins over index two",
			input:    "1.. Apple\n",
			expected: " Apple\n",
			rule:     RuleOneDigit,
		},
		{
			name:     "multibyte characters count once",
			input:    "1. äöü\n",
			expected: "äöü\n",
			rule:     RuleOneDigit,
		},
		{
			name:     "multibyte short line is blanked",
			input:    "äöüß\n",
			expected: "\n",
			rule:     RuleBlank,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, rule := StripRule(tt.input)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.rule, rule)
			assert.Equal(t, tt.rule, Classify(tt.input))
			assert.Equal(t, tt.expected, Strip(tt.input))
		})
	}
}

func TestTransform_PreservesLineCount(t *testing.T) {
	in := []string{"1. Apple\n", "\n", "12. Banana\n", "ab\n", "123. Cherry\n"}

	out := Transform(in)
	assert.Len(t, out, len(in))
	assert.Equal(t, []string{"Apple\n", "\n", "Banana\n", "\n", "Cherry\n"}, out)
}

func TestTransform_Empty(t *testing.T) {
	assert.Empty(t, Transform(nil))
}

func TestTransform_NotIdempotent(t *testing.T) {
	once := Transform([]string{"1. Apple pie\n"})
	twice := Transform(once)

	assert.Equal(t, []string{"Apple pie\n"}, once)
	assert.Equal(t, []string{" pie\n"}, twice)
}

func TestRule_String(t *testing.T) {
	names := make([]string, 0, len(Rules()))
	for _, r := range Rules() {
		names = append(names, r.String())
	}

	assert.Equal(t, []string{"blank", "one_digit", "two_digit", "default"}, names)
	assert.Equal(t, "unknown", Rule(42).String())
}
