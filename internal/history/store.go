package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tipsplit/internal/logger"
	"tipsplit/internal/models"
)

// MaxEntries caps the history log. Older records fall off the end.
const MaxEntries = 20

// Store is a bounded, most-recent-first log of past calculations backed by
// a single JSON file. A missing or corrupt file is treated as an empty log;
// the application must never fail to start or to calculate because of a
// history problem, so read errors stop at this boundary.
type Store struct {
	path    string
	logger  logger.Logger
	entries []models.HistoryRecord
}

func NewStore(path string, log logger.Logger) *Store {
	return &Store{
		path:   path,
		logger: log,
	}
}

// Load reads the backing file and returns up to MaxEntries records, most
// recent first. Any read or decode failure yields an empty log.
func (s *Store) Load() []models.HistoryRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warning("HistoryStore", "history file unreadable, treating as empty", map[string]interface{}{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		s.entries = nil
		return nil
	}

	var records []models.HistoryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warning("HistoryStore", "history file malformed, treating as empty", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		s.entries = nil
		return nil
	}

	if len(records) > MaxEntries {
		records = records[:MaxEntries]
	}

	s.entries = records
	return records
}

// Append inserts the record at the front, truncates to MaxEntries, and
// rewrites the whole backing file. The returned error is informational:
// callers log it and carry on, the calculation result is shown to the user
// regardless of persistence outcome.
func (s *Store) Append(rec models.HistoryRecord) error {
	records := append([]models.HistoryRecord{rec}, s.Load()...)
	if len(records) > MaxEntries {
		records = records[:MaxEntries]
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}

	s.entries = records
	s.logger.Debug("HistoryStore", "history appended", map[string]interface{}{
		"path":    s.path,
		"entries": len(records),
	})
	return nil
}

// Select returns the record at index i from the last loaded snapshot.
// Out-of-range indices report false rather than an error; the view only
// hands over indices it got from a fresh Load.
func (s *Store) Select(i int) (models.HistoryRecord, bool) {
	if i < 0 || i >= len(s.entries) {
		return models.HistoryRecord{}, false
	}
	return s.entries[i], true
}
