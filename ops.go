package recordstore

import "fmt"

// Insert adds a new key/payload pair. It fails with ErrKeyExists if key
// is already present, and with ErrKeyTooLarge if key's encoded form
// exceeds MaxKeyLen bytes (spec.md §4.3).
func (s *Store) Insert(key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	return s.insertLocked(key, payload)
}

// insertLocked implements spec.md §4.3 and assumes s.mu is held.
func (s *Store) insertLocked(key string, payload []byte) error {
	if _, err := encodeKey(key); err != nil {
		return err
	}
	if _, ok := s.idx.get(key); ok {
		return ErrKeyExists
	}

	if err := s.ensureIndexSpace(int(s.numRecords) + 1); err != nil {
		return err
	}

	h, err := s.allocate(uint32(len(payload)))
	if err != nil {
		return err
	}
	if uint32(len(payload)) > h.DataCapacity {
		return ErrRecordDoesNotFit
	}

	if len(payload) > 0 {
		if _, err := s.file.WriteAt(payload, h.DataPointer); err != nil {
			return fmt.Errorf("recordstore: insert %q: write payload: %w", key, err)
		}
	}
	h.DataSize = uint32(len(payload))
	h.IndexPosition = int(s.numRecords)

	if err := writeIndexSlot(s.file, key, h); err != nil {
		return fmt.Errorf("recordstore: insert %q: %w", key, err)
	}

	s.numRecords++
	if err := s.persistHeader(); err != nil {
		return err
	}

	s.idx.put(key, h)
	s.log.Infow("record inserted", "key", key, "size", len(payload), "pointer", h.DataPointer, "capacity", h.DataCapacity)
	return nil
}

// Update replaces the payload stored under key. If payload is larger
// than the record's current capacity, the record is relocated via a
// delete followed by an insert — the only path that changes a record's
// DataPointer on update (spec.md §4.4).
func (s *Store) Update(key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	h, ok := s.idx.get(key)
	if !ok {
		return ErrKeyNotFound
	}

	if uint32(len(payload)) > h.DataCapacity {
		if err := s.deleteLocked(key); err != nil {
			return err
		}
		return s.insertLocked(key, payload)
	}

	if len(payload) > 0 {
		if _, err := s.file.WriteAt(payload, h.DataPointer); err != nil {
			return fmt.Errorf("recordstore: update %q: write payload: %w", key, err)
		}
	}
	h.DataSize = uint32(len(payload))

	if err := writeIndexSlot(s.file, key, h); err != nil {
		return fmt.Errorf("recordstore: update %q: %w", key, err)
	}

	s.log.Infow("record updated in place", "key", key, "size", len(payload))
	return nil
}

// Delete removes key from the store, reclaiming its data-region space
// into a neighbor (or truncating the file) and compacting its index
// slot by swapping in the last slot's contents (spec.md §4.5).
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	return s.deleteLocked(key)
}

func (s *Store) deleteLocked(key string) error {
	h, ok := s.idx.get(key)
	if !ok {
		return ErrKeyNotFound
	}

	if err := s.reclaimDataSpace(key, h); err != nil {
		return err
	}

	lastPos := int(s.numRecords) - 1
	if h.IndexPosition != lastPos {
		lastKey, lastHeader, ok := s.idx.atSlot(lastPos)
		if !ok {
			return fmt.Errorf("%w: no record occupies last slot %d", ErrCorrupt, lastPos)
		}
		lastHeader.IndexPosition = h.IndexPosition
		if err := writeIndexSlot(s.file, lastKey, lastHeader); err != nil {
			return fmt.Errorf("recordstore: delete %q: compact slot %d: %w", key, lastPos, err)
		}
	}

	s.numRecords--
	if err := s.persistHeader(); err != nil {
		return err
	}

	s.idx.delete(key)
	s.log.Infow("record deleted", "key", key)
	return nil
}
