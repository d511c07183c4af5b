package service

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"log-analyzer/config"
	"log-analyzer/internal/filestate"

	"github.com/rs/zerolog/log"
)

// ExportService re-exports configured sources that changed since their last
// successful export.
type ExportService interface {
	ExportChanged(ctx context.Context) error
}

type exportService struct {
	cfg         *config.ExportConfig
	stateMgr    filestate.Manager
	newParser   ParserFactory
	processLock sync.Mutex
}

func NewExportService(
	cfg *config.Config,
	stateMgr filestate.Manager,
	newParser ParserFactory,
) ExportService {
	return &exportService{
		cfg:       &cfg.Export,
		stateMgr:  stateMgr,
		newParser: newParser,
	}
}

func (s *exportService) ExportChanged(ctx context.Context) error {
	if !s.processLock.TryLock() {
		log.Warn().Msg("Export already in progress, skipping run.")
		return nil
	}
	defer s.processLock.Unlock()

	log.Info().Msg("Starting export cycle...")
	startTime := time.Now()

	currentState, err := s.stateMgr.LoadState()
	if err != nil {
		return fmt.Errorf("failed to load export state: %w", err)
	}

	newState := make(filestate.ExportState, len(currentState))
	for k, v := range currentState {
		newState[k] = v
	}

	var exported, skipped, failed int
	for _, source := range s.cfg.Sources {
		if err := ctx.Err(); err != nil {
			log.Info().Msg("Context cancelled during export cycle.")
			break
		}

		info, err := os.Stat(source)
		if err != nil {
			log.Error().Err(err).Str("file", source).Msg("Failed to stat source")
			failed++
			continue
		}
		fp := filestate.FingerprintOf(info)
		if prev, ok := currentState[source]; ok && prev.Equal(fp) {
			log.Debug().Str("file", source).Msg("Source unchanged, skipping export")
			skipped++
			continue
		}

		if err := s.exportSource(source); err != nil {
			log.Error().Err(err).Str("file", source).Msg("Failed to export source")
			failed++
			continue
		}
		newState[source] = fp
		exported++
	}

	if err := s.stateMgr.SaveState(newState); err != nil {
		return fmt.Errorf("failed to save export state: %w", err)
	}

	log.Info().
		Int("exported", exported).
		Int("skipped", skipped).
		Int("failed", failed).
		Dur("duration", time.Since(startTime)).
		Msg("Finished export cycle.")
	return nil
}

func (s *exportService) exportSource(source string) error {
	p, err := s.newParser(source)
	if err != nil {
		return err
	}
	dest, err := p.ExportAll(exportPath(s.cfg.Directory, source, ""))
	if err != nil {
		return err
	}
	log.Debug().Str("file", source).Str("path", dest).Msg("Exported source")
	return nil
}
