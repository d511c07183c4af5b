package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"log-analyzer/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// TimestampLayout is how timestamps are rendered in exported files. Values are
// converted to UTC first.
const TimestampLayout = "2006-01-02 15:04:05.999999999"

var (
	// Header is the column row written before any record.
	Header = []string{"timestamp", "log"}

	// ErrUnsupportedFormat is returned when a file cannot be read back as an export.
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

const xlsxSheet = "logs"

// Write stores table at path. Paths ending in ".xlsx" produce a workbook, every
// other path gets comma-separated text. The destination is replaced atomically.
func Write(path string, table model.LogTable) error {
	write := WriteCSV
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		write = WriteXLSX
	}
	if err := writeAtomic(path, func(w io.Writer) error { return write(w, table) }); err != nil {
		return err
	}
	log.Debug().Str("file", path).Int("records", len(table)).Msg("Exported log table")
	return nil
}

// WriteCSV writes the header row followed by one row per record.
func WriteCSV(w io.Writer, table model.LogTable) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	row := make([]string, 2)
	for _, rec := range table {
		row[0] = FormatTimestamp(rec)
		row[1] = rec.Message
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// WriteXLSX writes the same rows as WriteCSV into a single-sheet workbook.
func WriteXLSX(w io.Writer, table model.LogTable) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName(f.GetSheetName(0), xlsxSheet)

	if err := f.SetSheetRow(xlsxSheet, "A1", &[]interface{}{Header[0], Header[1]}); err != nil {
		return fmt.Errorf("failed to write xlsx header: %w", err)
	}
	for i, rec := range table {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address xlsx row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &[]interface{}{FormatTimestamp(rec), rec.Message}); err != nil {
			return fmt.Errorf("failed to write xlsx row %d: %w", i+2, err)
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

// FormatTimestamp renders the record's timestamp with TimestampLayout.
func FormatTimestamp(rec model.LogRecord) string {
	return rec.Timestamp.UTC().Format(TimestampLayout)
}

func writeAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions on %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		log.Error().Err(err).Str("from", tmpPath).Str("to", path).Msg("Failed to rename export file")
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to move export into place: %w", err)
	}
	return nil
}
