package coursemap

import (
	"github.com/sirupsen/logrus"

	"github.com/coursecat/coursecat/pkg/course"
)

const (
	// DefaultCapacity is the bucket count of a new or freshly replaced map.
	DefaultCapacity = 1024

	// minCapacity floors custom capacities so tiny maps still chain sanely.
	minCapacity = 16

	// loadFactorThreshold triggers a resize when exceeded after an insert.
	loadFactorThreshold = 0.75
)

// node is one entry in a bucket chain. Each bucket exclusively owns its chain.
type node struct {
	course *course.Course
	next   *node
}

// CourseMap is a chained hash table keyed by course id.
type CourseMap struct {
	buckets  []*node
	capacity int
	size     int

	// sorted is the ascending-by-id view of all entries, rebuilt on demand.
	// sortedDirty tracks whether any mutation happened since the last rebuild.
	sorted      []*course.Course
	sortedDirty bool

	log *logrus.Entry
}
