// Package tablestore persists the jump-table trie to disk and loads it
// back, verifying a content checksum and regenerating from scratch on any
// mismatch or absence. It owns the file envelope (magic, version,
// checksum); internal/jumptable owns the payload's own structure.
package tablestore

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerjump/internal/fileutil"
	"github.com/lox/pokerjump/internal/jumptable"
)

const (
	magic        = "PKJT"
	formatMajor  = uint16(1)
	formatMinor  = uint16(0)
	checksumSize = sha256.Size

	// Header layout (little-endian): magic(4) major(2) minor(2)
	// level5count(8) level6count(8) level7count(8) checksum(32).
	countsSize   = 8 * 3
	headerSize   = 4 + 2 + 2 + countsSize + checksumSize
	level5CountO = 8
	level6CountO = 16
	level7CountO = 24
	checksumO    = 32

	tableFileName = "jumptable.bin"
	tablesDirEnv  = "POKER_TABLES_DIR"
)

// ErrCorruptTable means the file's body didn't match its embedded checksum,
// or a level's parsed entry count didn't match the header's declared count.
var ErrCorruptTable = errors.New("tablestore: checksum mismatch")

// ErrWrongMagic means the file isn't a pokerjump table file at all.
var ErrWrongMagic = errors.New("tablestore: not a pokerjump table file")

// ErrUnsupportedVersion means the file's major version isn't one this
// build knows how to read.
var ErrUnsupportedVersion = errors.New("tablestore: unsupported table format version")

// DefaultDir resolves the directory tables are read from and written to:
// POKER_TABLES_DIR if set, otherwise a "pokerjump" subdirectory of the
// user's cache directory.
func DefaultDir() string {
	if d := os.Getenv(tablesDirEnv); d != "" {
		return d
	}
	if cacheDir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(cacheDir, "pokerjump")
	}
	return filepath.Join(os.TempDir(), "pokerjump")
}

// Store owns the on-disk table file's lifecycle: load-with-verification,
// generate-on-miss, atomic persist.
type Store struct {
	dir    string
	clock  quartz.Clock
	logger *log.Logger
}

// New constructs a Store rooted at dir. A nil clock defaults to the real
// wall clock; a nil logger defaults to the package-level charmbracelet
// logger.
func New(dir string, clock quartz.Clock, logger *log.Logger) *Store {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Store{dir: dir, clock: clock, logger: logger}
}

func (s *Store) path() string {
	return filepath.Join(s.dir, tableFileName)
}

// Load returns a ready JumpTable: the persisted one if present and valid,
// or a freshly generated and persisted one otherwise. A file that fails
// to parse is regenerated once; if that regeneration fails, the returned
// error wraps both the generation error and the parse error.
func (s *Store) Load(ctx context.Context) (*jumptable.JumpTable, error) {
	data, err := s.readFile()
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Info("no table file found, generating", "path", s.path())
		return s.generateAndSave(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("tablestore: load: %w", err)
	}

	jt, err := parse(data)
	if err != nil {
		s.logger.Warn("table file unreadable, regenerating", "path", s.path(), "error", err)
		regenerated, genErr := s.generateAndSave(ctx)
		if genErr != nil {
			return nil, fmt.Errorf("%w (after %w)", genErr, err)
		}
		return regenerated, nil
	}
	return jt, nil
}

// readFile reads the table file fully into memory. Verifying the header's
// checksum requires hashing the whole body regardless, so a memory map
// would buy nothing here: the data ends up copied into the heap either way
// before it can be trusted.
func (s *Store) readFile() ([]byte, error) {
	return os.ReadFile(s.path())
}

func parse(data []byte) (*jumptable.JumpTable, error) {
	if len(data) < headerSize {
		return nil, ErrWrongMagic
	}
	if string(data[:4]) != magic {
		return nil, ErrWrongMagic
	}
	major := binary.LittleEndian.Uint16(data[4:6])
	if major != formatMajor {
		return nil, ErrUnsupportedVersion
	}

	wantLevel5 := binary.LittleEndian.Uint64(data[level5CountO : level5CountO+8])
	wantLevel6 := binary.LittleEndian.Uint64(data[level6CountO : level6CountO+8])
	wantLevel7 := binary.LittleEndian.Uint64(data[level7CountO : level7CountO+8])

	var wantChecksum [checksumSize]byte
	copy(wantChecksum[:], data[checksumO:headerSize])

	body := data[headerSize:]
	gotChecksum := sha256.Sum256(body)
	if !bytes.Equal(gotChecksum[:], wantChecksum[:]) {
		return nil, ErrCorruptTable
	}

	jt, err := jumptable.UnmarshalJumpTable(body)
	if err != nil {
		return nil, fmt.Errorf("tablestore: %w: %v", ErrCorruptTable, err)
	}

	if uint64(jt.Level5Size()) != wantLevel5 ||
		uint64(jt.Level6Size()) != wantLevel6 ||
		uint64(jt.Level7Size()) != wantLevel7 {
		return nil, fmt.Errorf("tablestore: %w: header declared (%d,%d,%d), body held (%d,%d,%d)",
			ErrCorruptTable, wantLevel5, wantLevel6, wantLevel7,
			jt.Level5Size(), jt.Level6Size(), jt.Level7Size())
	}

	return jt, nil
}

func (s *Store) generateAndSave(ctx context.Context) (*jumptable.JumpTable, error) {
	start := s.clock.Now()
	jt, err := jumptable.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("tablestore: generate: %w", err)
	}
	s.logger.Info("generated hand-rank tables",
		"elapsed", s.clock.Now().Sub(start),
		"level5", jt.Level5Size(),
		"level6", jt.Level6Size(),
		"level7", jt.Level7Size(),
	)

	if err := s.save(jt); err != nil {
		return nil, fmt.Errorf("tablestore: persist: %w", err)
	}
	return jt, nil
}

func (s *Store) save(jt *jumptable.JumpTable) error {
	body, err := jt.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	checksum := sha256.Sum256(body)

	var hdr [headerSize]byte
	copy(hdr[:4], magic)
	binary.LittleEndian.PutUint16(hdr[4:6], formatMajor)
	binary.LittleEndian.PutUint16(hdr[6:8], formatMinor)
	binary.LittleEndian.PutUint64(hdr[level5CountO:level5CountO+8], uint64(jt.Level5Size()))
	binary.LittleEndian.PutUint64(hdr[level6CountO:level6CountO+8], uint64(jt.Level6Size()))
	binary.LittleEndian.PutUint64(hdr[level7CountO:level7CountO+8], uint64(jt.Level7Size()))
	copy(hdr[checksumO:headerSize], checksum[:])

	out := make([]byte, 0, len(hdr)+len(body))
	out = append(out, hdr[:]...)
	out = append(out, body...)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create table dir: %w", err)
	}
	return fileutil.WriteFileAtomic(s.path(), out, 0o644)
}
