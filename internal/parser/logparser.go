package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"
	"unicode"

	"log-analyzer/internal/export"
	"log-analyzer/internal/model"
	"log-analyzer/internal/util"

	"github.com/rs/zerolog/log"
)

// DefaultSeparator divides the timestamp field from the message field.
const DefaultSeparator = " > "

// LogParser reads one timestamped log file, for example
//
//	2022-12-07 19:13:11.030 > PROCESS: started
//
// Every operation performs a fresh pass over the file; nothing is cached.
type LogParser struct {
	path      string
	separator string
	lenient   bool
	loc       *time.Location
	out       io.Writer
}

type Option func(*LogParser)

// WithSeparator overrides DefaultSeparator.
func WithSeparator(sep string) Option {
	return func(p *LogParser) { p.separator = sep }
}

// WithLenientTimestamps drops rows whose timestamp cannot be parsed instead of
// failing the whole read.
func WithLenientTimestamps() Option {
	return func(p *LogParser) { p.lenient = true }
}

// WithLocation sets the location for timestamps that carry no zone.
func WithLocation(loc *time.Location) Option {
	return func(p *LogParser) { p.loc = loc }
}

// WithOutput sets where status messages (counts, export destinations) go.
func WithOutput(w io.Writer) Option {
	return func(p *LogParser) { p.out = w }
}

// NewLogParser validates that path exists and returns a parser for it. The
// check is not repeated by later operations.
func NewLogParser(path string, opts ...Option) (*LogParser, error) {
	p := &LogParser{
		path:      path,
		separator: DefaultSeparator,
		loc:       time.UTC,
		out:       os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.separator == "" {
		return nil, errors.New("separator must not be empty")
	}
	if p.loc == nil {
		p.loc = time.UTC
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return p, nil
}

func (p *LogParser) Path() string {
	return p.path
}

func (p *LogParser) Separator() string {
	return p.separator
}

// SplitLine strips trailing whitespace from line and splits it on the first
// occurrence of sep. ok is false when sep does not occur.
func SplitLine(line, sep string) (timestamp, message string, ok bool) {
	trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
	parts := strings.SplitN(trimmed, sep, 2)
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

type rawRow struct {
	line      int
	timestamp string
	message   string
}

// Read parses the whole file into a table. Lines without the separator are
// skipped. In strict mode (the default) a single unparseable timestamp fails
// the read with a *ParseError.
func (p *LogParser) Read() (model.LogTable, error) {
	rows, err := p.readRows()
	if err != nil {
		return nil, err
	}

	table := make(model.LogTable, 0, len(rows))
	for _, row := range rows {
		ts, err := util.ParseTimestamp(row.timestamp, p.loc)
		if err != nil {
			if p.lenient {
				log.Warn().Str("file", p.path).Int("line", row.line).Str("timestamp", row.timestamp).Msg("Dropping row with unparseable timestamp")
				continue
			}
			return nil, &ParseError{Path: p.path, Line: row.line, Value: row.timestamp, Err: err}
		}
		table = append(table, model.LogRecord{Timestamp: ts, Message: row.message})
	}

	log.Debug().Str("file", p.path).Int("rows", len(rows)).Int("records", len(table)).Msg("Read log file")
	return table, nil
}

func (p *LogParser) readRows() ([]rawRow, error) {
	file, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", p.path, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	var rows []rawRow
	lineNo := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("error reading file %s: %w", p.path, readErr)
		}
		if readErr == io.EOF && line == "" {
			break
		}
		lineNo++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if line != "" {
			ts, msg, ok := SplitLine(line, p.separator)
			if ok {
				rows = append(rows, rawRow{line: lineNo, timestamp: ts, message: msg})
			} else {
				log.Trace().Str("file", p.path).Int("line", lineNo).Msg("Skipping line without separator")
			}
		}
		if readErr == io.EOF {
			break
		}
	}
	return rows, nil
}

// Search returns the records whose message contains substring.
func (p *LogParser) Search(substring string) (model.LogTable, error) {
	table, err := p.Read()
	if err != nil {
		return nil, err
	}
	return table.Filter(substring), nil
}

// SearchExport runs Search and writes the matches to path, or to the default
// "<source>_<substring>.csv" when path is empty. It returns the matches and the
// destination written.
func (p *LogParser) SearchExport(substring, path string) (model.LogTable, string, error) {
	matches, err := p.Search(substring)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		path = export.DefaultPath(p.path, substring)
	}
	if err := export.Write(path, matches); err != nil {
		return nil, "", err
	}
	fmt.Fprintf(p.out, "Exported data to: %s\n", path)
	return matches, path, nil
}

// Count returns the number of records whose message contains substring and
// reports it on the parser's output.
func (p *LogParser) Count(substring string) (int, error) {
	matches, err := p.Search(substring)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(p.out, "Found %d occurrences of \"%s\"\n", len(matches), substring)
	return len(matches), nil
}

// ExportAll writes every record to path, or to the default "<source>.csv" when
// path is empty, and returns the destination.
func (p *LogParser) ExportAll(path string) (string, error) {
	table, err := p.Read()
	if err != nil {
		return "", err
	}
	if path == "" {
		path = export.DefaultPath(p.path, "")
	}
	if err := export.Write(path, table); err != nil {
		return "", err
	}
	fmt.Fprintf(p.out, "Exported data to: %s\n", path)
	return path, nil
}
