package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timvw/red-letter/internal/model"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSV(t *testing.T) {
	r := New()
	r.Add(model.Result{Section: 1, Words: 12, Confidence: 90})
	r.Add(model.Result{Section: 4, Failed: true})

	path := filepath.Join(t.TempDir(), "output.csv")
	require.NoError(t, r.WriteCSV(path))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"section", "words", "confidence"}, rows[0])
	assert.Equal(t, []string{"1", "12", "90"}, rows[1])
	assert.Equal(t, []string{"4", "ERROR", "0"}, rows[2])
}

func TestWriteCSV_EmptyRunIsHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	require.NoError(t, New().WriteCSV(path))

	rows := readCSV(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"section", "words", "confidence"}, rows[0])
}

func TestWriteCSV_OverwritesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")

	first := New()
	first.Add(model.Result{Section: 1, Words: 100, Confidence: 50})
	require.NoError(t, first.WriteCSV(path))

	second := New()
	second.Add(model.Result{Section: 2, Words: 7, Confidence: 99})
	require.NoError(t, second.WriteCSV(path))

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2", "7", "99"}, rows[1])
}

func TestWriteCSV_BadPathFails(t *testing.T) {
	r := New()
	err := r.WriteCSV(filepath.Join(t.TempDir(), "missing", "output.csv"))
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	r := New()
	r.Add(model.Result{Section: 1, Words: 12, Confidence: 90})
	r.Add(model.Result{Section: 4, Failed: true})
	r.Add(model.Result{Section: 6, Words: 30, Confidence: 80})

	s := r.Summary()
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Succeeded)
	assert.Equal(t, 42, s.TotalWords)
}

func TestSummary_Empty(t *testing.T) {
	s := New().Summary()
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.Succeeded)
	assert.Equal(t, 0, s.TotalWords)
}

func TestResultsOrderPreserved(t *testing.T) {
	r := New()
	for _, n := range []int{3, 1, 2} {
		r.Add(model.Result{Section: n, Words: n})
	}
	got := r.Results()
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].Section)
	assert.Equal(t, 1, got[1].Section)
	assert.Equal(t, 2, got[2].Section)
}
