// Package store persists a digit list as a single line of decimal text.
//
// Reads and writes are forgiving: a missing, unreadable or empty file loads
// as "absent", and a failed write is logged and dropped. Callers that need
// to know whether a save landed should read the file back.
package store

import (
	"bufio"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/agbru/numlist/internal/digitlist"
	"github.com/agbru/numlist/internal/logging"
	"github.com/agbru/numlist/internal/numeric"
)

// Store reads and writes decimal lines on a filesystem.
type Store struct {
	fs      afero.Fs
	adapter *numeric.Adapter
	logger  logging.Logger
}

// New returns a store on fs converting through adapter. A nil logger
// discards diagnostics.
func New(fs afero.Fs, adapter *numeric.Adapter, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Store{fs: fs, adapter: adapter, logger: logger}
}

// NewOS returns a store on the host filesystem.
func NewOS(adapter *numeric.Adapter, logger logging.Logger) *Store {
	return New(afero.NewOsFs(), adapter, logger)
}

// LoadDecimalLine returns the first line of the file at path with any
// trailing carriage return removed. ok is false when the file cannot be
// read or its first line is empty.
func (s *Store) LoadDecimalLine(path string) (line string, ok bool) {
	f, err := s.fs.Open(path)
	if err != nil {
		s.logger.Debug("load skipped", logging.String("path", path), logging.Err(err))
		return "", false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			s.logger.Debug("load failed", logging.String("path", path), logging.Err(err))
		}
		return "", false
	}
	line = strings.TrimSuffix(sc.Text(), "\r")
	return line, line != ""
}

// maxLineBytes bounds the first line; a decimal value longer than this is
// treated as unreadable.
const maxLineBytes = 64 << 20

// SaveDecimalLine replaces the content of path with text. Parent directories
// are created as needed. Failures are logged at debug level and otherwise
// ignored.
func (s *Store) SaveDecimalLine(path, text string) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			s.logger.Debug("save failed", logging.String("path", path), logging.Err(err))
			return
		}
	}
	if err := afero.WriteFile(s.fs, path, []byte(text), 0o644); err != nil {
		s.logger.Debug("save failed", logging.String("path", path), logging.Err(err))
	}
}

// LoadList parses the file at path into a list in the adapter's primary
// base. ok is false when no line could be read; a line that is not a
// decimal number yields an empty list with ok true.
func (s *Store) LoadList(path string) (*digitlist.List, bool) {
	line, ok := s.LoadDecimalLine(path)
	if !ok {
		return digitlist.New(s.adapter.Primary()), false
	}
	return s.adapter.ParseDecimal(line), true
}

// SaveList writes the decimal value of l to path.
func (s *Store) SaveList(path string, l *digitlist.List) {
	s.SaveDecimalLine(path, s.adapter.ToDecimalString(l))
}
