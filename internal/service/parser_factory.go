package service

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"log-analyzer/config"
	"log-analyzer/internal/export"
	"log-analyzer/internal/parser"
)

// ParserFactory opens a parser for a source path.
type ParserFactory func(path string) (*parser.LogParser, error)

// ParserOptions translates the parser configuration into parser options.
func ParserOptions(pc config.ParserConfig) []parser.Option {
	opts := []parser.Option{
		parser.WithSeparator(pc.Separator),
		parser.WithLocation(pc.Location),
	}
	if pc.LenientTimestamps {
		opts = append(opts, parser.WithLenientTimestamps())
	}
	return opts
}

// NewParserFactory returns a factory for server-side use. Status messages are
// discarded; services log their results instead.
func NewParserFactory(cfg *config.Config) ParserFactory {
	opts := append(ParserOptions(cfg.Parser), parser.WithOutput(io.Discard))
	return func(path string) (*parser.LogParser, error) {
		return parser.NewLogParser(path, opts...)
	}
}

// exportPath applies the default naming rule with path separators in substring
// replaced by "_", and places the file in dir, or beside the source when dir is
// empty. The result never leaves that directory.
func exportPath(dir, source, substring string) string {
	safe := strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && os.IsPathSeparator(uint8(r)) {
			return '_'
		}
		return r
	}, substring)
	if dir == "" {
		dir = filepath.Dir(export.DefaultPath(source, ""))
	}
	return filepath.Join(dir, filepath.Base(export.DefaultPath(source, safe)))
}
