package scoring

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Store persists the high score.
type Store interface {
	Load() int
	Save(score int)
}

// Save writes the score to the store only if it beats the high score the game started with.
// It reports whether a write was attempted.
func (s *Scoring) Save(store Store) bool {
	if !s.BeatsHighscore() {
		return false
	}
	store.Save(s.Score)
	return true
}

// Default location of the high score file inside the user data directory.
const (
	DefaultDir  = "Color Columns"
	DefaultFile = "cc_hs"
)

// FileStore keeps the high score as decimal text in a single file. Failures are
// logged and never returned: a failed load yields 0 and a failed save is dropped.
type FileStore struct {
	Path   string
	Logger *slog.Logger
}

// NewFileStore returns a store at dir/file under the user data directory. When dataDir
// is empty the platform's user config directory is used.
func NewFileStore(dataDir, dir, file string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	if dataDir == "" {
		var err error
		dataDir, err = os.UserConfigDir()
		if err != nil {
			logger.Warn("user data dir not found, high score will not persist", "err", err)
			return &FileStore{Logger: logger}
		}
	}
	return &FileStore{
		Path:   filepath.Join(dataDir, dir, file),
		Logger: logger,
	}
}

func (f *FileStore) Load() int {
	if f.Path == "" {
		return 0
	}
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		f.Logger.Debug("no high score file yet", "path", f.Path)
		return 0
	}
	if err != nil {
		f.Logger.Warn("high score file could not be read", "path", f.Path, "err", err)
		return 0
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		f.Logger.Warn("high score could not be parsed", "path", f.Path, "content", string(data), "err", err)
		return 0
	}
	return score
}

func (f *FileStore) Save(score int) {
	if f.Path == "" {
		f.Logger.Warn("high score not saved, no path", "score", score)
		return
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		f.Logger.Warn("high score directory could not be created", "path", f.Path, "err", err)
		return
	}
	if err := os.WriteFile(f.Path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		f.Logger.Warn("high score could not be written", "path", f.Path, "err", err)
		return
	}
	f.Logger.Debug("high score saved", "path", f.Path, "score", score)
}

// MemoryStore keeps the high score in memory and counts saves. It is safe for
// concurrent use.
type MemoryStore struct {
	mu    sync.Mutex
	score int
	saves int
}

// NewMemoryStore returns a store holding score.
func NewMemoryStore(score int) *MemoryStore {
	return &MemoryStore{score: score}
}

func (m *MemoryStore) Load() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

func (m *MemoryStore) Save(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	m.saves++
}

// Saves returns how many times Save was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
