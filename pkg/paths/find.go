package paths

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/coursecat/coursecat/pkg/logger"
)

var log = logger.GetLogger("paths")

// DataFiles returns the files directly inside folder whose extension matches
// one of extensions (case-insensitive), sorted by path. An unreadable folder
// yields an empty list with a diagnostic.
func DataFiles(folder string, extensions []string) []string {
	var files []string

	entries, err := os.ReadDir(folder)
	if err != nil {
		log.WithError(err).Errorf("Failed to list directory %s", folder)
		return files
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		for _, allowed := range extensions {
			if strings.EqualFold(ext, allowed) {
				files = append(files, filepath.Join(folder, entry.Name()))
				break
			}
		}
	}

	sort.Strings(files)
	return files
}
