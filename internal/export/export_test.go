package export_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"log-analyzer/internal/export"
	"log-analyzer/internal/model"
)

func sampleTable() model.LogTable {
	return model.LogTable{
		{Timestamp: time.Date(2022, 12, 7, 19, 13, 11, 30*int(time.Millisecond), time.UTC), Message: "PROCESS: started"},
		{Timestamp: time.Date(2022, 12, 7, 19, 14, 0, 0, time.UTC), Message: `quoted "value", with comma`},
		{Timestamp: time.Date(2022, 12, 7, 21, 0, 0, 0, time.FixedZone("CET", 3600)), Message: "a > b"},
	}
}

func TestDefaultPath(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		substring string
		expected  string
	}{
		{name: "Full Export", source: "/var/log/app.log", expected: "/var/log/app.csv"},
		{name: "Search Export", source: "/var/log/app.log", substring: "error", expected: "/var/log/app_error.csv"},
		{name: "Rotated Suffix Dropped", source: "/var/log/app.log.1", expected: "/var/log/app.csv"},
		{name: "No Log Extension", source: "/tmp/output.txt", expected: "/tmp/output.txt.csv"},
		{name: "Dot Log In Directory", source: "/srv/mylog.logs/app.log", expected: "/srv/mylog.csv"},
		{name: "Relative Path", source: "app.log", substring: "PROCESS", expected: "app_PROCESS.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, export.DefaultPath(tt.source, tt.substring))
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, export.WriteCSV(&buf, sampleTable()))

	assert.Equal(t, "timestamp,log\n"+
		"2022-12-07 19:13:11.03,PROCESS: started\n"+
		"2022-12-07 19:14:00,\"quoted \"\"value\"\", with comma\"\n"+
		"2022-12-07 20:00:00,a > b\n", buf.String())
}

func TestWriteCSV_EmptyTable(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, export.WriteCSV(&buf, model.LogTable{}))

	assert.Equal(t, "timestamp,log\n", buf.String())
}

func TestWriteAndReadCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	table := sampleTable()

	require.NoError(t, export.Write(path, table))
	got, err := export.ReadCSV(path, time.UTC)

	require.NoError(t, err)
	require.Len(t, got, len(table))
	for i := range table {
		assert.True(t, table[i].Timestamp.Equal(got[i].Timestamp), "row %d timestamp", i)
		assert.Equal(t, table[i].Message, got[i].Message)
	}
}

func TestWrite_ReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the export\n"), 0644))

	require.NoError(t, export.Write(path, model.LogTable{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "timestamp,log\n", string(data))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	err := export.Write(path, sampleTable())

	assert.Error(t, err)
}

func TestWrite_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, export.Write(path, sampleTable()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("logs")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"timestamp", "log"}, rows[0])
	assert.Equal(t, []string{"2022-12-07 19:13:11.03", "PROCESS: started"}, rows[1])
	assert.Equal(t, []string{"2022-12-07 20:00:00", "a > b"}, rows[3])
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		unsupported bool
	}{
		{name: "Empty File", content: "", unsupported: true},
		{name: "Wrong Header", content: "time,message\n2022-12-07,x\n", unsupported: true},
		{name: "Too Many Columns", content: "timestamp,log\n2022-12-07,x,y\n"},
		{name: "Bad Timestamp", content: "timestamp,log\nnot-a-date,x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in.csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			table, err := export.ReadCSV(path, nil)

			require.Error(t, err)
			assert.Nil(t, table)
			assert.Equal(t, tt.unsupported, errors.Is(err, export.ErrUnsupportedFormat))
		})
	}
}
