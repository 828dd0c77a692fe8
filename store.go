// Package recordstore implements a single-file, embedded key→value
// store. A record is an opaque byte payload identified by a short
// textual key. The file is organized into three contiguous regions — a
// fixed file header, an index region of fixed-size entries, and a
// record-data region — and the store's allocator keeps those regions
// consistent under insert, update, and delete: free space inside and
// between records is split, coalesced, and grown; index slots freed by
// delete are compacted by swap-with-last; and the index region itself
// is enlarged by relocating the first live data record to end-of-file.
//
// A Store is not safe for use by multiple processes, and every public
// operation takes a single mutual-exclusion lock covering the whole
// instance — there is no fine-grained locking, no crash-recovery
// journal, and no transaction support. See DESIGN.md for the reasoning
// behind each of these choices.
package recordstore

import (
	"fmt"
	"os"
	"sync"
)

// Store is an open handle to a single record-store file.
type Store struct {
	mu sync.Mutex

	file *os.File
	path string
	mode Mode
	log  Logger

	numRecords   int32
	dataStartPtr int64
	fileLength   int64

	idx    *memIndex
	closed bool
}

// Config carries optional dependencies for a Store. A nil Config, or a
// Config with a nil Logger, is equivalent to &Config{Logger: NoOpLogger()}.
type Config struct {
	Logger Logger
}

func (c *Config) logger() Logger {
	if c == nil || c.Logger == nil {
		return noopLogger{}
	}
	return c.Logger
}

// NoOpLogger returns a Logger that discards everything.
func NoOpLogger() Logger { return noopLogger{} }

// Create makes a new store file at path with room for initialCapacity
// index entries before the index region needs to grow. It fails with
// ErrStoreAlreadyExists if path already exists (spec.md §4.1).
func Create(path string, initialCapacity int, cfg *Config) (*Store, error) {
	if initialCapacity < 0 {
		return nil, fmt.Errorf("recordstore: initial capacity must be >= 0, got %d", initialCapacity)
	}
	if err := validateStorePath(path); err != nil {
		return nil, err
	}

	log := cfg.logger()

	if _, err := os.Stat(path); err == nil {
		return nil, ErrStoreAlreadyExists
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("recordstore: stat %q: %w", path, err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return nil, ErrStoreAlreadyExists
		}
		return nil, fmt.Errorf("recordstore: create %q: %w", path, err)
	}

	dataStartPtr := int64(FileHeaderLen) + int64(initialCapacity)*IndexEntryLen
	if err := file.Truncate(dataStartPtr); err != nil {
		file.Close()
		os.Remove(path)
		return nil, fmt.Errorf("recordstore: truncate %q: %w", path, err)
	}

	s := &Store{
		file:         file,
		path:         path,
		mode:         ModeReadWrite,
		log:          log,
		numRecords:   0,
		dataStartPtr: dataStartPtr,
		fileLength:   dataStartPtr,
		idx:          newMemIndex(),
	}

	if err := writeFileHeader(s.file, fileHeader{numRecords: 0, dataStartPtr: dataStartPtr}); err != nil {
		file.Close()
		os.Remove(path)
		return nil, err
	}

	log.Infow("store created", "path", path, "initialCapacity", initialCapacity, "dataStartPtr", dataStartPtr)
	return s, nil
}

// Open reopens an existing store file at path in the given mode. It
// fails with ErrStoreNotFound if path does not exist (spec.md §4.1).
func Open(path string, mode Mode, cfg *Config) (*Store, error) {
	if err := validateStorePath(path); err != nil {
		return nil, err
	}

	log := cfg.logger()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("recordstore: stat %q: %w", path, err)
	}
	if err := validateExistingStoreFile(path); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, mode.flags(), 0o600)
	if err != nil {
		return nil, fmt.Errorf("recordstore: open %q: %w", path, err)
	}

	hdr, err := readFileHeader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("recordstore: %q: %w", path, err)
	}

	s := &Store{
		file:         file,
		path:         path,
		mode:         mode,
		log:          log,
		numRecords:   hdr.numRecords,
		dataStartPtr: hdr.dataStartPtr,
		fileLength:   info.Size(),
		idx:          newMemIndex(),
	}

	for pos := 0; pos < int(hdr.numRecords); pos++ {
		key, rh, err := readIndexSlot(file, pos)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("recordstore: loading index slot %d: %w", pos, err)
		}
		h := rh
		s.idx.put(key, &h)
	}

	log.Infow("store opened", "path", path, "mode", mode.String(), "numRecords", hdr.numRecords, "dataStartPtr", hdr.dataStartPtr)
	return s, nil
}

// Read returns the payload stored under key. It fails with
// ErrKeyNotFound if key is absent (spec.md §4.2).
func (s *Store) Read(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	h, ok := s.idx.get(key)
	if !ok {
		return nil, ErrKeyNotFound
	}

	buf := make([]byte, h.DataSize)
	if h.DataSize > 0 {
		if _, err := s.file.ReadAt(buf, h.DataPointer); err != nil {
			return nil, fmt.Errorf("recordstore: read payload for %q: %w", key, err)
		}
	}
	return buf, nil
}

// Exists reports whether key is present in the store.
func (s *Store) Exists(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.idx.get(key)
	return ok
}

// Size returns the number of live records in the store.
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx.len()
}

// Keys returns a snapshot of the live keys. The order is unspecified:
// index compaction on delete swaps the last slot into a freed one and
// does not preserve insertion order (spec.md §9).
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx.keys()
}

// Close closes the underlying file and drops the in-memory index.
// Close is not idempotent: a second Close returns ErrClosed without
// touching the file.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.idx = nil

	if err := s.file.Close(); err != nil {
		return fmt.Errorf("recordstore: close %q: %w", s.path, err)
	}
	s.log.Infow("store closed", "path", s.path)
	return nil
}

// persistHeader writes the current in-memory numRecords/dataStartPtr to
// the on-disk file header. Operations that change either field call
// this last, so a reader never observes a record count ahead of its
// index slot or the index region extended without a matching header.
func (s *Store) persistHeader() error {
	return writeFileHeader(s.file, fileHeader{numRecords: s.numRecords, dataStartPtr: s.dataStartPtr})
}

// growFile extends the file (and tracked fileLength) to at least
// newLength bytes.
func (s *Store) growFile(newLength int64) error {
	if newLength <= s.fileLength {
		return nil
	}
	if err := s.file.Truncate(newLength); err != nil {
		return fmt.Errorf("recordstore: grow %q to %d bytes: %w", s.path, newLength, err)
	}
	s.fileLength = newLength
	return nil
}

// truncateFile shrinks the file (and tracked fileLength) to newLength bytes.
func (s *Store) truncateFile(newLength int64) error {
	if err := s.file.Truncate(newLength); err != nil {
		return fmt.Errorf("recordstore: truncate %q to %d bytes: %w", s.path, newLength, err)
	}
	s.fileLength = newLength
	return nil
}
