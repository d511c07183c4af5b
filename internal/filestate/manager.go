package filestate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Fingerprint identifies the version of a source file that was last exported.
type Fingerprint struct {
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// FingerprintOf reports the current fingerprint of info.
func FingerprintOf(info os.FileInfo) Fingerprint {
	return Fingerprint{Size: info.Size(), ModTime: info.ModTime().UTC()}
}

func (f Fingerprint) Equal(other Fingerprint) bool {
	return f.Size == other.Size && f.ModTime.Equal(other.ModTime)
}

type ExportState map[string]Fingerprint

type Manager interface {
	LoadState() (ExportState, error)
	SaveState(state ExportState) error
	GetStateFilePath() string
}

type fileStateManager struct {
	filePath string
	mu       sync.RWMutex
}

func NewManager(filePath string) Manager {
	return &fileStateManager{
		filePath: filePath,
	}
}

func (m *fileStateManager) LoadState() (ExportState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, err := os.ReadFile(m.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("file", m.filePath).Msg("State file not found, starting fresh.")
			return make(ExportState), nil
		}
		log.Error().Err(err).Str("file", m.filePath).Msg("Failed to read state file")
		return nil, err
	}

	if len(data) == 0 {
		log.Warn().Str("file", m.filePath).Msg("State file is empty, starting fresh.")
		return make(ExportState), nil
	}
	var state ExportState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Error().Err(err).Str("file", m.filePath).Msg("Failed to unmarshal state file")
		return nil, err
	}
	if state == nil {
		state = make(ExportState)
	}

	log.Debug().Str("file", m.filePath).Int("sources_tracked", len(state)).Msg("Loaded export state")
	return state, nil
}

func (m *fileStateManager) SaveState(state ExportState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal state")
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(m.filePath), "."+filepath.Base(m.filePath)+".*.tmp")
	if err != nil {
		log.Error().Err(err).Str("file", m.filePath).Msg("Failed to create temporary state file")
		return err
	}
	tempFilePath := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tempFilePath, 0644)
	}
	if err != nil {
		log.Error().Err(err).Str("file", tempFilePath).Msg("Failed to write temporary state file")
		_ = os.Remove(tempFilePath)
		return err
	}

	if err := os.Rename(tempFilePath, m.filePath); err != nil {
		log.Error().Err(err).Str("from", tempFilePath).Str("to", m.filePath).Msg("Failed to rename state file")
		_ = os.Remove(tempFilePath)
		return err
	}
	log.Debug().Str("file", m.filePath).Int("sources_tracked", len(state)).Msg("Saved export state")
	return nil
}

func (m *fileStateManager) GetStateFilePath() string {
	return m.filePath
}
