package course

import (
	"strings"

	"github.com/scylladb/go-set/strset"
)

// Course is a single catalog record. Treated as immutable once built;
// construct via New or Build rather than struct literals so the
// prerequisite set stays consistent with the slice.
type Course struct {
	ID            string
	Title         string
	Prerequisites []string

	prereqSet *strset.Set
}

// New creates a course without validating its fields. Callers that start from
// raw input should use Build instead.
func New(id string, title string, prerequisites []string) *Course {
	return &Course{
		ID:            id,
		Title:         title,
		Prerequisites: prerequisites,
		prereqSet:     strset.New(prerequisites...),
	}
}

// HasPrerequisite reports whether id is an exact member of the course's
// prerequisite set.
func (c *Course) HasPrerequisite(id string) bool {
	if c.prereqSet == nil {
		c.prereqSet = strset.New(c.Prerequisites...)
	}
	return c.prereqSet.Has(id)
}

func (c *Course) String() string {
	prereqs := "None"
	if len(c.Prerequisites) > 0 {
		prereqs = strings.Join(c.Prerequisites, ", ")
	}

	return c.ID + ": " + c.Title + "; Prerequisites: " + prereqs
}
