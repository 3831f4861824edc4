package coursemap

import (
	"sort"

	"github.com/coursecat/coursecat/pkg/course"
	"github.com/coursecat/coursecat/pkg/logger"
)

func New() *CourseMap {
	return NewWithCapacity(DefaultCapacity)
}

func NewWithCapacity(capacity int) *CourseMap {
	if capacity < minCapacity {
		capacity = minCapacity
	}

	return &CourseMap{
		buckets:     make([]*node, capacity),
		capacity:    capacity,
		sortedDirty: true,
		log:         logger.GetLogger("coursemap"),
	}
}

// hash computes the bucket index for a course id using a polynomial rolling
// hash, base 31. Capacity is part of the formula, so every entry must be
// rehashed whenever the capacity changes.
func (m *CourseMap) hash(key string) int {
	h := 0
	for i := 0; i < len(key); i++ {
		h = (h*31 + int(key[i])) % m.capacity
	}

	return h
}

// Insert adds a course to the map. A course whose id is already present is
// rejected and the existing entry is left untouched. Returns whether the
// course was added.
func (m *CourseMap) Insert(c *course.Course) bool {
	if c == nil {
		m.log.Warn("Unable to insert empty course")
		return false
	}

	index := m.hash(c.ID)

	for n := m.buckets[index]; n != nil; n = n.next {
		if n.course.ID == c.ID {
			m.log.Warnf("Duplicate course: %s", c.ID)
			return false
		}
	}

	// insert at head of chain
	m.buckets[index] = &node{course: c, next: m.buckets[index]}
	m.size++
	m.sortedDirty = true

	if float64(m.size)/float64(m.capacity) > loadFactorThreshold {
		m.resize()
	}

	return true
}

// resize doubles the capacity and rehashes every entry into fresh buckets.
// Runs to completion before the triggering insert returns.
func (m *CourseMap) resize() {
	oldBuckets := m.buckets

	m.capacity *= 2
	m.buckets = make([]*node, m.capacity)

	for _, n := range oldBuckets {
		for n != nil {
			next := n.next

			index := m.hash(n.course.ID)
			n.next = m.buckets[index]
			m.buckets[index] = n

			n = next
		}
	}

	m.log.Debugf("Resized to %d buckets (%d courses)", m.capacity, m.size)
}

// Replace discards the entire map and rebuilds it from courses. An empty
// input leaves the map unchanged. Capacity resets to the default baseline, or
// twice the incoming count when that is larger, keeping the post-load load
// factor low. Duplicate ids within the input are skipped, first occurrence
// wins.
func (m *CourseMap) Replace(courses []*course.Course) {
	if len(courses) == 0 {
		m.log.Warn("Empty course list, no change made")
		return
	}

	capacity := DefaultCapacity
	if n := len(courses) * 2; n > capacity {
		capacity = n
	}

	m.buckets = make([]*node, capacity)
	m.capacity = capacity
	m.size = 0
	m.sorted = nil
	m.sortedDirty = true

	for _, c := range courses {
		if c == nil {
			m.log.Warn("Skipping nil course")
			continue
		}

		m.Insert(c)
	}
}

// Remove unlinks the course with the given id. Removing an empty or unknown
// id is a logged no-op. Returns whether an entry was removed.
func (m *CourseMap) Remove(id string) bool {
	if id == "" {
		m.log.Warn("Unable to remove empty course id")
		return false
	}

	index := m.hash(id)

	var prev *node
	for n := m.buckets[index]; n != nil; n = n.next {
		if n.course.ID == id {
			if prev == nil {
				m.buckets[index] = n.next
			} else {
				prev.next = n.next
			}

			m.size--
			m.sortedDirty = true
			return true
		}

		prev = n
	}

	m.log.Warnf("Course not found: %s", id)
	return false
}

// Get looks up a course by id.
func (m *CourseMap) Get(id string) (*course.Course, bool) {
	if id == "" {
		return nil, false
	}

	for n := m.buckets[m.hash(id)]; n != nil; n = n.next {
		if n.course.ID == id {
			return n.course, true
		}
	}

	return nil, false
}

// Sorted returns all courses ascending by id. The view is cached and only
// recomputed after a mutation. Callers must not modify the returned slice.
func (m *CourseMap) Sorted() []*course.Course {
	if m.sortedDirty {
		m.sorted = make([]*course.Course, 0, m.size)

		for _, n := range m.buckets {
			for ; n != nil; n = n.next {
				m.sorted = append(m.sorted, n.course)
			}
		}

		sort.Slice(m.sorted, func(i, j int) bool {
			return m.sorted[i].ID < m.sorted[j].ID
		})

		m.sortedDirty = false
	}

	return m.sorted
}

func (m *CourseMap) Length() int {
	return m.size
}

func (m *CourseMap) Capacity() int {
	return m.capacity
}

func (m *CourseMap) LoadFactor() float64 {
	return float64(m.size) / float64(m.capacity)
}
