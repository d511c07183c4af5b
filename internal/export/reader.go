package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"log-analyzer/internal/model"
	"log-analyzer/internal/util"
)

// ReadCSV loads a table previously written by WriteCSV. Timestamps without zone
// information are interpreted in loc (UTC when nil).
func ReadCSV(path string, loc *time.Location) (model.LogTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(Header)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s has no header row", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	if header[0] != Header[0] || header[1] != Header[1] {
		return nil, fmt.Errorf("%w: unexpected header %v in %s", ErrUnsupportedFormat, header, path)
	}

	table := model.LogTable{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row of %s: %w", path, err)
		}
		ts, err := util.ParseTimestamp(row[0], loc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse exported timestamp: %w", err)
		}
		table = append(table, model.LogRecord{Timestamp: ts, Message: row[1]})
	}
	return table, nil
}
