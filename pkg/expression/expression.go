package expression

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/coursecat/coursecat/pkg/course"
	"github.com/coursecat/coursecat/pkg/regex"
)

type CompiledExpression struct {
	Text    string
	Program *vm.Program
}

// evalContext is the environment a filter expression runs against. The
// embedded course exposes ID, Title and Prerequisites directly.
type evalContext struct {
	*course.Course
}

// HasPrereq reports whether id is one of the course's prerequisites.
func (e *evalContext) HasPrereq(id string) bool {
	return e.Course.HasPrerequisite(id)
}

// TitleMatches reports whether the course title matches the regex pattern.
// An invalid pattern evaluates to false.
func (e *evalContext) TitleMatches(pattern string) bool {
	match, err := regex.MatchString(pattern, e.Course.Title)
	if err != nil {
		return false
	}

	return match
}

// Compile compiles filter expression texts against the course environment.
// Every expression must evaluate to a boolean.
func Compile(expressions []string) ([]CompiledExpression, error) {
	compiled := make([]CompiledExpression, 0, len(expressions))

	for _, text := range expressions {
		program, err := expr.Compile(text, expr.Env(&evalContext{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile expression %q: %w", text, err)
		}

		compiled = append(compiled, CompiledExpression{Text: text, Program: program})
	}

	return compiled, nil
}
