package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestScan_OrdersBySectionNumber(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dc042.md", "forty-two")
	writeFile(t, dir, "dc001.md", "one")
	writeFile(t, dir, "dc004.md", "four")
	writeFile(t, dir, "dc110.md", "one ten")

	sections, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, sections, 4)

	got := make([]int, len(sections))
	for i, s := range sections {
		got[i] = s.Number
	}
	assert.Equal(t, []int{1, 4, 42, 110}, got)
}

func TestScan_SkipsNonMatchingNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dc001.md", "one")
	writeFile(t, dir, "README.md", "readme")
	writeFile(t, dir, "dc.md", "no digits")
	writeFile(t, dir, "dcabc.md", "not a number")
	writeFile(t, dir, "dc002.txt", "wrong extension")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dc003.md"), 0o755))

	sections, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, 1, sections[0].Number)
}

func TestScan_MissingDirIsEmpty(t *testing.T) {
	sections, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestScan_EmptyDirIsEmpty(t *testing.T) {
	sections, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestScan_Deterministic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dc007.md", "seven")
	writeFile(t, dir, "dc003.md", "three")

	first, err := Scan(dir)
	require.NoError(t, err)
	second, err := Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSectionRead(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dc001.md", "I the Lord say unto thee...")

	sections, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, sections, 1)

	content, err := sections[0].Read()
	require.NoError(t, err)
	assert.Equal(t, "I the Lord say unto thee...", content)
}

func TestSectionNumber(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantNum int
		wantOK  bool
	}{
		{"zero padded", "dc001.md", 1, true},
		{"three digits", "dc138.md", 138, true},
		{"unpadded", "dc7.md", 7, true},
		{"no digits", "dc.md", 0, false},
		{"wrong prefix", "bc001.md", 0, false},
		{"wrong extension", "dc001.txt", 0, false},
		{"trailing junk", "dc001.md.bak", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num, ok := sectionNumber(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantNum, num)
			}
		})
	}
}
