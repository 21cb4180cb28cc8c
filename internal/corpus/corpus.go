// Package corpus enumerates the section files of the source text.
//
// Sections live as flat markdown files named dc<NNN>.md where <NNN> is a
// zero-padded section number (dc001.md, dc042.md, ...). Enumeration is
// deterministic: files sort lexicographically by name, which the zero
// padding turns into ascending section order.
package corpus

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	filePrefix = "dc"
	fileExt    = ".md"
)

// Section is one numbered document of the source text, mapped 1:1 to one
// input file and one output row.
type Section struct {
	// Number is the section number extracted from the filename.
	Number int
	// Path is the absolute or dir-relative path to the section file.
	Path string
}

// Read returns the section's raw text content.
func (s Section) Read() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Scan returns the ordered sections found in dir. A missing directory or
// a directory with no matching files yields an empty slice, not an error:
// downstream processing simply has no work to do.
func Scan(dir string) ([]Section, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var sections []Section
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		num, ok := sectionNumber(e.Name())
		if !ok {
			continue
		}
		sections = append(sections, Section{
			Number: num,
			Path:   filepath.Join(dir, e.Name()),
		})
	}

	// os.ReadDir already sorts by filename; sort again so callers never
	// depend on that detail.
	sort.Slice(sections, func(i, j int) bool {
		return filepath.Base(sections[i].Path) < filepath.Base(sections[j].Path)
	})
	return sections, nil
}

// sectionNumber extracts the section number from a filename like
// "dc001.md". Returns false for names that don't match the convention.
func sectionNumber(name string) (int, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileExt) {
		return 0, false
	}
	digits := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileExt)
	if digits == "" {
		return 0, false
	}
	num, err := strconv.Atoi(digits)
	if err != nil || num < 0 {
		return 0, false
	}
	return num, true
}
