package ingest

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/coursecat/coursecat/pkg/course"
	"github.com/coursecat/coursecat/pkg/coursemap"
	"github.com/coursecat/coursecat/pkg/logger"
	"github.com/coursecat/coursecat/pkg/parser"
)

var log = logger.GetLogger("ingest")

// Load reads the course file at path and replaces the contents of m with the
// records it parses. Blank lines are skipped; malformed lines are logged with
// their line number and dropped without aborting the read. Only a failure to
// open the file is returned as an error, in which case m is left untouched.
func Load(path string, delim byte, m *coursemap.CourseMap) error {
	if path == "" {
		return fmt.Errorf("invalid file name")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open course file: %w", err)
	}
	defer f.Close()

	var courses []*course.Course
	lineNumber := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNumber++

		line := scanner.Text()
		if line == "" {
			continue
		}

		c, err := parser.Parse(line, delim, lineNumber)
		if err != nil {
			log.WithError(err).Warnf("Skipping line %d of %q", lineNumber, path)
			continue
		}

		courses = append(courses, c)
	}

	if err := scanner.Err(); err != nil {
		log.WithError(err).Warnf("Stopped reading %q early", path)
	}

	// an empty batch is still handed over; Replace warns and keeps the map
	m.Replace(courses)

	log.Infof("Loaded %s courses from %q", humanize.Comma(int64(len(courses))), path)

	return nil
}
