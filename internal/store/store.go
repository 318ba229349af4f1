package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/nibzard/projman/internal/logging"
	"github.com/nibzard/projman/internal/tracker"
)

// DefaultFile is the data file name used when none is configured.
const DefaultFile = "data.json"

// ErrCorrupt is wrapped by every error caused by a data file that exists
// but cannot be parsed or does not have the expected shape.
var ErrCorrupt = errors.New("corrupt data file")

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load/save diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store loads and saves the user collection at a fixed path.
type Store struct {
	path   string
	logger *log.Logger
}

// New returns a Store for the data file at path.
func New(path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultFile
	}
	s := &Store{
		path:   path,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the data file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the data file. A missing file yields an empty collection.
func (s *Store) Load() ([]tracker.User, error) {
	v, exists, err := s.read()
	if err != nil {
		return nil, err
	}
	if !exists {
		s.logger.Debug("data file not found, starting empty", "path", s.path)
		return []tracker.User{}, nil
	}

	result, err := validateValue(v)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("validate %s: %w: %w", s.path, ErrCorrupt, errors.Join(result.Errors...))
	}

	users, err := tracker.DecodeUsers(v)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w: %w", s.path, ErrCorrupt, err)
	}

	s.logger.Debug("loaded data file", "path", s.path, "users", len(users))
	return users, nil
}

// Validate checks the data file against the bundled schema without
// decoding it. A missing file is reported as valid with a warning.
func (s *Store) Validate() (*ValidationResult, error) {
	v, exists, err := s.read()
	if err != nil {
		if errors.Is(err, ErrCorrupt) {
			return &ValidationResult{Exists: true, Errors: []error{err}}, nil
		}
		return nil, err
	}
	if !exists {
		return &ValidationResult{
			Valid:    true,
			Warnings: []string{"data file not found (created on first change)"},
		}, nil
	}
	return validateValue(v)
}

// read parses the data file into a generic JSON value.
func (s *Store) read() (any, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read data file: %w", err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, true, fmt.Errorf("parse %s: %w: %w", s.path, ErrCorrupt, err)
	}
	return v, true, nil
}

// Save writes users to the data file with 2-space indentation, replacing
// its previous content.
func (s *Store) Save(users []tracker.User) error {
	data, err := json.MarshalIndent(tracker.EncodeUsers(users), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal data file: %w", err)
	}

	// Add trailing newline
	data = append(data, '\n')

	if err := writeFileAtomic(s.path, data, 0644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}

	s.logger.Debug("saved data file", "path", s.path, "users", len(users), "bytes", len(data))
	return nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
