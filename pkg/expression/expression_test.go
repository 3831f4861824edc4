package expression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecat/coursecat/pkg/course"
)

func TestCompile(t *testing.T) {
	t.Run("valid expressions", func(t *testing.T) {
		compiled, err := Compile([]string{`ID == "CSCI100"`, `HasPrereq("MATH201")`})
		require.NoError(t, err)
		assert.Len(t, compiled, 2)
		assert.Equal(t, `ID == "CSCI100"`, compiled[0].Text)
	})

	t.Run("invalid expression", func(t *testing.T) {
		_, err := Compile([]string{`ID ==`})
		assert.Error(t, err)
	})

	t.Run("non boolean expression", func(t *testing.T) {
		_, err := Compile([]string{`Title`})
		assert.Error(t, err)
	})
}

func TestCheckCourseMatch(t *testing.T) {
	c := course.New("CSCI300", "Introduction to Algorithms", []string{"CSCI200", "MATH201"})

	tests := []struct {
		name       string
		expression string
		expected   bool
	}{
		{"id equality", `ID == "CSCI300"`, true},
		{"id mismatch", `ID == "CSCI100"`, false},
		{"title contains", `Title contains "Algorithms"`, true},
		{"prereq membership", `HasPrereq("MATH201")`, true},
		{"prereq non member", `HasPrereq("PHYS101")`, false},
		{"prereq count", `len(Prerequisites) == 2`, true},
		{"title regex", `TitleMatches("^Intro.*Algo")`, true},
		{"title regex mismatch", `TitleMatches("^Advanced")`, false},
		{"invalid regex evaluates false", `TitleMatches("([")`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled, err := Compile([]string{tt.expression})
			require.NoError(t, err)

			match, err := CheckCourseAllMatch(c, compiled)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, match)
		})
	}
}

func TestCheckCourseSingleMatch(t *testing.T) {
	c := course.New("CSCI300", "Introduction to Algorithms", []string{"CSCI200"})

	compiled, err := Compile([]string{`ID == "CSCI100"`, `HasPrereq("CSCI200")`})
	require.NoError(t, err)

	match, err := CheckCourseSingleMatch(c, compiled)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = CheckCourseAllMatch(c, compiled)
	require.NoError(t, err)
	assert.False(t, match)
}
