package catalog

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/coursecat/coursecat/pkg/course"
	"github.com/coursecat/coursecat/pkg/coursemap"
	"github.com/coursecat/coursecat/pkg/ingest"
	"github.com/coursecat/coursecat/pkg/logger"
)

// Category selects which course attribute Search matches against.
type Category string

const (
	// CategoryName matches the course id exactly.
	CategoryName Category = "name"
	// CategoryTitle matches any case-sensitive substring of the title.
	CategoryTitle Category = "title"
	// CategoryPrereq matches exact membership in the prerequisite set.
	CategoryPrereq Category = "prereq"
)

// ParseCategory maps user input onto a search category.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(s)) {
	case CategoryName:
		return CategoryName, nil
	case CategoryTitle:
		return CategoryTitle, nil
	case CategoryPrereq:
		return CategoryPrereq, nil
	default:
		return "", fmt.Errorf("invalid search category: %q", s)
	}
}

// Catalog is the facade consumed by the CLI layer. It owns the course map and
// exposes load, listing and search without any terminal I/O of its own.
type Catalog struct {
	courses *coursemap.CourseMap
	delim   byte
	log     *logrus.Entry
}

func New(delim byte) *Catalog {
	return &Catalog{
		courses: coursemap.New(),
		delim:   delim,
		log:     logger.GetLogger("catalog"),
	}
}

// LoadFromFile replaces the catalog contents with the records parsed from
// path. Per-line failures are logged by the ingest; only a file open failure
// is returned.
func (c *Catalog) LoadFromFile(path string) error {
	return ingest.Load(path, c.delim, c.courses)
}

// AllSorted returns every course ascending by id.
func (c *Catalog) AllSorted() []*course.Course {
	return c.courses.Sorted()
}

// Get looks up a single course by id.
func (c *Catalog) Get(id string) (*course.Course, bool) {
	return c.courses.Get(id)
}

func (c *Catalog) Length() int {
	return c.courses.Length()
}

// FilterByPrefix returns courses whose id starts with prefix, ascending by id.
func (c *Catalog) FilterByPrefix(prefix string) []*course.Course {
	var results []*course.Course

	for _, crs := range c.courses.Sorted() {
		if strings.HasPrefix(crs.ID, prefix) {
			results = append(results, crs)
		}
	}

	return results
}

// Search returns all courses matching criteria under the given category, in
// sorted order. Empty criteria or an unknown category yield no results and a
// diagnostic, never an error.
func (c *Catalog) Search(criteria string, category Category) []*course.Course {
	if criteria == "" {
		c.log.Warn("Search criteria cannot be empty")
		return nil
	}

	switch category {
	case CategoryName, CategoryTitle, CategoryPrereq:
	default:
		c.log.Warnf("Invalid search category: %q", category)
		return nil
	}

	var results []*course.Course

	for _, crs := range c.courses.Sorted() {
		switch category {
		case CategoryName:
			if crs.ID == criteria {
				results = append(results, crs)
			}
		case CategoryTitle:
			if strings.Contains(crs.Title, criteria) {
				results = append(results, crs)
			}
		case CategoryPrereq:
			if crs.HasPrerequisite(criteria) {
				results = append(results, crs)
			}
		}
	}

	return results
}
