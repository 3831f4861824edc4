package regex

import (
	"sync"

	"github.com/dlclark/regexp2"
)

var (
	cache   = map[string]*regexp2.Regexp{}
	cacheMu sync.RWMutex
)

// Compile returns a compiled pattern, reusing a previously compiled instance
// for the same pattern text.
func Compile(pattern string) (*regexp2.Regexp, error) {
	cacheMu.RLock()
	re, ok := cache[pattern]
	cacheMu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, err
	}

	cacheMu.Lock()
	cache[pattern] = re
	cacheMu.Unlock()

	return re, nil
}

// MatchString reports whether s matches pattern.
func MatchString(pattern string, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(s)
}
