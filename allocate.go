package recordstore

import "fmt"

// ensureIndexSpace guarantees that FileHeaderLen + requiredSlots *
// IndexEntryLen <= dataStartPtr, growing the index region by relocating
// live records toward end-of-file as needed (spec.md §4.6).
func (s *Store) ensureIndexSpace(requiredSlots int) error {
	endIndexPtr := indexSlotOffset(requiredSlots)

	if endIndexPtr > s.fileLength && s.numRecords == 0 {
		if err := s.growFile(endIndexPtr); err != nil {
			return err
		}
		s.dataStartPtr = endIndexPtr
		return s.persistHeader()
	}

	for endIndexPtr > s.dataStartPtr {
		key, f, ok := s.idx.findByOffset(s.dataStartPtr)
		if !ok {
			// The data region starting at dataStartPtr is empty slack;
			// on a consistent store this only happens once the loop
			// condition above is already false, but guard it anyway.
			return nil
		}

		oldCapacity := f.DataCapacity

		payload := make([]byte, f.DataSize)
		if f.DataSize > 0 {
			if _, err := s.file.ReadAt(payload, f.DataPointer); err != nil {
				return fmt.Errorf("recordstore: ensureIndexSpace: read %q payload: %w", key, err)
			}
		}

		newOffset := s.fileLength
		f.DataPointer = newOffset
		f.DataCapacity = f.DataSize // forfeit trailing slack; old capacity already captured above

		if err := s.growFile(newOffset + int64(f.DataSize)); err != nil {
			return err
		}

		if f.DataSize > 0 {
			if _, err := s.file.WriteAt(payload, f.DataPointer); err != nil {
				return fmt.Errorf("recordstore: ensureIndexSpace: write %q payload: %w", key, err)
			}
		}
		if err := writeIndexSlot(s.file, key, f); err != nil {
			return fmt.Errorf("recordstore: ensureIndexSpace: rewrite %q header: %w", key, err)
		}

		s.dataStartPtr += int64(oldCapacity)
		if err := s.persistHeader(); err != nil {
			return err
		}

		s.log.Debugw("ensureIndexSpace relocated record", "key", key, "newOffset", newOffset, "dataStartPtr", s.dataStartPtr)
	}

	return nil
}

// allocate picks a home for a new dataLength-byte payload: the first
// donor record with enough intra-record free space gets split (spec.md
// §4.7 step 1), or failing that the file grows to make room at its end
// (step 2). The returned header has no IndexPosition assigned yet —
// that is the caller's responsibility once it knows which slot the new
// record will occupy.
func (s *Store) allocate(dataLength uint32) (*RecordHeader, error) {
	for donorKey, donor := range s.idx.byKey {
		if donor.freeSpace() < dataLength {
			continue
		}

		newHeader := &RecordHeader{
			DataPointer:  donor.DataPointer + int64(donor.DataSize),
			DataCapacity: donor.freeSpace(),
		}

		donor.DataCapacity = donor.DataSize
		if err := writeIndexSlot(s.file, donorKey, donor); err != nil {
			return nil, fmt.Errorf("recordstore: allocate: split donor %q: %w", donorKey, err)
		}

		s.log.Debugw("split donor record", "donor", donorKey, "newCapacity", newHeader.DataCapacity)
		return newHeader, nil
	}

	offset := s.fileLength
	if err := s.growFile(offset + int64(dataLength)); err != nil {
		return nil, err
	}
	return &RecordHeader{DataPointer: offset, DataCapacity: dataLength}, nil
}

// reclaimDataSpace frees the data-region bytes owned by h (about to be
// deleted) into a neighbor, or truncates the file if h is the tail
// (spec.md §4.5). It does not touch the index region; the caller
// handles index-slot compaction separately.
func (s *Store) reclaimDataSpace(key string, h *RecordHeader) error {
	if s.fileLength == h.DataPointer+int64(h.DataCapacity) {
		if err := s.truncateFile(h.DataPointer); err != nil {
			return err
		}
		s.log.Debugw("truncated tail record", "deleted", key, "newLength", h.DataPointer)
		return nil
	}

	if predKey, pred, ok := s.idx.findByOffset(h.DataPointer - 1); ok {
		pred.DataCapacity += h.DataCapacity
		if err := writeIndexSlot(s.file, predKey, pred); err != nil {
			return fmt.Errorf("recordstore: reclaim: extend predecessor %q: %w", predKey, err)
		}
		s.log.Debugw("coalesced into predecessor", "deleted", key, "predecessor", predKey, "newCapacity", pred.DataCapacity)
		return nil
	}

	if succKey, succ, ok := s.idx.findByOffset(h.DataPointer + int64(h.DataCapacity)); ok {
		payload := make([]byte, succ.DataSize)
		if succ.DataSize > 0 {
			if _, err := s.file.ReadAt(payload, succ.DataPointer); err != nil {
				return fmt.Errorf("recordstore: reclaim: read successor %q payload: %w", succKey, err)
			}
		}

		succ.DataPointer = h.DataPointer
		succ.DataCapacity += h.DataCapacity

		if succ.DataSize > 0 {
			if _, err := s.file.WriteAt(payload, succ.DataPointer); err != nil {
				return fmt.Errorf("recordstore: reclaim: write successor %q payload: %w", succKey, err)
			}
		}
		if err := writeIndexSlot(s.file, succKey, succ); err != nil {
			return fmt.Errorf("recordstore: reclaim: rewrite successor %q header: %w", succKey, err)
		}

		s.log.Debugw("shifted successor left", "deleted", key, "successor", succKey, "newPointer", succ.DataPointer)
		return nil
	}

	// Neither a predecessor nor a successor exists and R is not the
	// tail: the tiling invariant is already broken (spec.md §9).
	return fmt.Errorf("%w: no neighbor found for record %q at [%d, %d)", ErrCorrupt, key, h.DataPointer, h.DataPointer+int64(h.DataCapacity))
}
