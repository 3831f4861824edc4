package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected bool
	}{
		{"valid", "MATH201", true},
		{"valid mixed case", "cSci101", true},
		{"too short", "CS101", false},
		{"too long", "MATH2011", false},
		{"empty", "", false},
		{"digit in alpha part", "MA1H201", false},
		{"alpha in digit part", "MATH2O1", false},
		{"all alpha", "MATHEMA", false},
		{"all digits", "1234567", false},
		{"non ascii letter", "MÄTH201", false},
		{"whitespace", "MATH 20", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateID(tt.id))
		})
	}
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"plain", "Intro to Computer Science", true},
		{"empty", "", false},
		{"newline", "Intro\nto CS", false},
		{"carriage return", "Intro\rto CS", false},
		{"tab", "Intro\tto CS", false},
		{"punctuation ok", "Algorithms: Design & Analysis", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateText(tt.text))
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"no change", "MATH201", "MATH201"},
		{"double quotes", `"MATH201"`, "MATH201"},
		{"single quotes", "'MATH201'", "MATH201"},
		{"control characters", "MATH\t201\r\n", "MATH201"},
		{"other bytes untouched", "a b,c;d", "a b,c;d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "MATH201", Trim("  MATH201  "))
	assert.Equal(t, "", Trim("   \t "))
	assert.Equal(t, "a b", Trim(" a b "))
}

func TestBuild(t *testing.T) {
	t.Run("minimal record", func(t *testing.T) {
		c, err := Build([]string{"CSCI100", "Intro to Computer Science"})
		require.NoError(t, err)
		assert.Equal(t, "CSCI100", c.ID)
		assert.Equal(t, "Intro to Computer Science", c.Title)
		assert.Empty(t, c.Prerequisites)
	})

	t.Run("prerequisites kept", func(t *testing.T) {
		c, err := Build([]string{"CSCI300", "Algorithms", "CSCI200", "MATH201"})
		require.NoError(t, err)
		assert.Equal(t, []string{"CSCI200", "MATH201"}, c.Prerequisites)
	})

	t.Run("invalid prerequisites dropped silently", func(t *testing.T) {
		c, err := Build([]string{"CSCI300", "Algorithms", "CS200", "MATH201", "bogus"})
		require.NoError(t, err)
		assert.Equal(t, []string{"MATH201"}, c.Prerequisites)
	})

	t.Run("fields sanitized and trimmed", func(t *testing.T) {
		c, err := Build([]string{` "CSCI300" `, " 'Algorithms' ", " MATH201 "})
		require.NoError(t, err)
		assert.Equal(t, "CSCI300", c.ID)
		assert.Equal(t, "Algorithms", c.Title)
		assert.Equal(t, []string{"MATH201"}, c.Prerequisites)
	})

	t.Run("no fields", func(t *testing.T) {
		_, err := Build(nil)
		assert.Error(t, err)
	})

	t.Run("too few fields", func(t *testing.T) {
		_, err := Build([]string{"CSCI100"})
		assert.Error(t, err)
	})

	t.Run("invalid id fails record", func(t *testing.T) {
		_, err := Build([]string{"CS100", "Intro"})
		assert.Error(t, err)
	})

	t.Run("empty title fails record", func(t *testing.T) {
		_, err := Build([]string{"CSCI100", "   "})
		assert.Error(t, err)
	})
}
