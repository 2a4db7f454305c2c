package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemloop/sds-extract/internal/sds"
)

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, nil))

	assert.Equal(t,
		"Product Name,Product Number,Manufacturer,Usage,Revision Date,CAS Numbers,File Name\n",
		buf.String())
}

func TestWriteCSVRecords(t *testing.T) {
	records := []*sds.Record{
		{
			ProductName:  "Acetone",
			Manufacturer: "Chem Corp",
			CASNumbers:   "67-64-1 (60%), 7732-18-5 (40%)",
			FileName:     "acetone.pdf",
		},
		{FileName: "unreadable.pdf"},
	}

	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, records))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	// Fields containing commas must be quoted.
	assert.Contains(t, lines[1], `"67-64-1 (60%), 7732-18-5 (40%)"`)
	assert.Contains(t, lines[1], "acetone.pdf")

	// Missing fields stay as empty columns so every row has the same shape.
	assert.Equal(t, ",,,,,,unreadable.pdf", lines[2])
}

func TestWriteCSVFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "results.csv")

	// Parent directory missing: creation fails cleanly.
	err := WriteCSVFile(path, nil)
	assert.Error(t, err)

	path = filepath.Join(dir, "results.csv")
	require.NoError(t, WriteCSVFile(path, []*sds.Record{{FileName: "x.pdf"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "x.pdf")
}

func TestWriteCSVFileEmptyPath(t *testing.T) {
	assert.Error(t, WriteCSVFile("", nil))
}
