package expression

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/coursecat/coursecat/pkg/course"
)

// CheckCourseSingleMatch reports whether any expression matches the course.
func CheckCourseSingleMatch(c *course.Course, expressions []CompiledExpression) (bool, error) {
	env := &evalContext{Course: c}

	for _, expression := range expressions {
		result, err := expr.Run(expression.Program, env)
		if err != nil {
			return false, fmt.Errorf("check expression: %w", err)
		}

		expResult, ok := result.(bool)
		if !ok {
			return false, fmt.Errorf("expression %q did not evaluate to a boolean", expression.Text)
		}

		if expResult {
			return true, nil
		}
	}

	return false, nil
}

// CheckCourseAllMatch reports whether every expression matches the course.
func CheckCourseAllMatch(c *course.Course, expressions []CompiledExpression) (bool, error) {
	env := &evalContext{Course: c}

	for _, expression := range expressions {
		result, err := expr.Run(expression.Program, env)
		if err != nil {
			return false, fmt.Errorf("check expression: %w", err)
		}

		expResult, ok := result.(bool)
		if !ok {
			return false, fmt.Errorf("expression %q did not evaluate to a boolean", expression.Text)
		}

		if !expResult {
			return false, nil
		}
	}

	return true, nil
}
