package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"log-analyzer/config"
	"log-analyzer/internal/dto"

	"github.com/rs/zerolog/log"
)

var (
	// ErrUnknownSource is returned for sources that are not configured in LOG_SOURCES.
	ErrUnknownSource    = errors.New("unknown log source")
	ErrInvalidTimeRange = errors.New("endTime cannot be before startTime")
)

type LogQueryService interface {
	SearchLogs(ctx context.Context, req dto.LogSearchRequest) (*dto.LogSearchResponse, error)
	CountLogs(ctx context.Context, req dto.LogSearchRequest) (*dto.LogCountResponse, error)
	ExportLogs(ctx context.Context, req dto.LogExportRequest) (*dto.LogExportResponse, error)
}

type logQueryService struct {
	sources   map[string]struct{}
	exportDir string
	newParser ParserFactory
}

func NewLogQueryService(cfg *config.Config, newParser ParserFactory) LogQueryService {
	sources := make(map[string]struct{}, len(cfg.Export.Sources))
	for _, s := range cfg.Export.Sources {
		sources[s] = struct{}{}
	}
	return &logQueryService{
		sources:   sources,
		exportDir: cfg.Export.Directory,
		newParser: newParser,
	}
}

func (s *logQueryService) checkSource(source string) error {
	if _, ok := s.sources[source]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
	return nil
}

func (s *logQueryService) SearchLogs(ctx context.Context, req dto.LogSearchRequest) (*dto.LogSearchResponse, error) {
	if !req.StartTime.IsZero() && !req.EndTime.IsZero() && req.EndTime.Before(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}
	if err := s.checkSource(req.Source); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Info().
		Str("source", req.Source).
		Str("query", req.Query).
		Time("start_time", req.StartTime).
		Time("end_time", req.EndTime).
		Msg("Searching logs")

	p, err := s.newParser(req.Source)
	if err != nil {
		return nil, err
	}
	records, err := p.Search(req.Query)
	if err != nil {
		return nil, err
	}
	records = records.Between(req.StartTime, req.EndTime)

	return &dto.LogSearchResponse{
		Records:    records,
		TotalCount: len(records),
	}, nil
}

func (s *logQueryService) CountLogs(ctx context.Context, req dto.LogSearchRequest) (*dto.LogCountResponse, error) {
	if err := s.checkSource(req.Source); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := s.newParser(req.Source)
	if err != nil {
		return nil, err
	}
	count, err := p.Count(req.Query)
	if err != nil {
		return nil, err
	}
	log.Info().Str("source", req.Source).Str("query", req.Query).Int("count", count).Msg("Counted log occurrences")

	return &dto.LogCountResponse{Query: req.Query, Count: count}, nil
}

// ExportLogs writes the full table (empty query) or the matches of query. The
// destination stays in the export directory (or beside the source): an explicit
// path is reduced to its base name and separators in query are replaced.
func (s *logQueryService) ExportLogs(ctx context.Context, req dto.LogExportRequest) (*dto.LogExportResponse, error) {
	if err := s.checkSource(req.Source); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dest := exportPath(s.exportDir, req.Source, req.Query)
	if req.Path != "" {
		dest = filepath.Join(filepath.Dir(dest), filepath.Base(req.Path))
	}

	p, err := s.newParser(req.Source)
	if err != nil {
		return nil, err
	}

	// An empty query matches every record, so this covers the full export too.
	matches, _, err := p.SearchExport(req.Query, dest)
	if err != nil {
		return nil, err
	}
	count := len(matches)

	log.Info().Str("source", req.Source).Str("query", req.Query).Str("path", dest).Int("count", count).Msg("Exported logs")
	return &dto.LogExportResponse{Path: dest, Count: count}, nil
}
