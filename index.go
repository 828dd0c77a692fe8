package recordstore

// memIndex is the in-memory mirror of the on-disk index region: a
// key→RecordHeader mapping with O(1) lookup by key and an O(n) scan for
// "which record covers this offset?" (spec.md §3.3, §4.8). Iteration
// order over a Go map is unspecified, which matches spec.md §9's note
// that the allocator's donor scan order is unspecified and any donor
// with enough free space is correct.
type memIndex struct {
	byKey map[string]*RecordHeader
}

func newMemIndex() *memIndex {
	return &memIndex{byKey: make(map[string]*RecordHeader)}
}

func (m *memIndex) get(key string) (*RecordHeader, bool) {
	h, ok := m.byKey[key]
	return h, ok
}

func (m *memIndex) put(key string, h *RecordHeader) {
	m.byKey[key] = h
}

func (m *memIndex) delete(key string) {
	delete(m.byKey, key)
}

func (m *memIndex) len() int {
	return len(m.byKey)
}

func (m *memIndex) keys() []string {
	keys := make([]string, 0, len(m.byKey))
	for k := range m.byKey {
		keys = append(keys, k)
	}
	return keys
}

// atSlot returns the key and header currently occupying index slot pos,
// or ("", nil, false) if no live record occupies it.
func (m *memIndex) atSlot(pos int) (string, *RecordHeader, bool) {
	for k, h := range m.byKey {
		if h.IndexPosition == pos {
			return k, h, true
		}
	}
	return "", nil, false
}

// findByOffset returns the header whose [DataPointer, DataPointer+
// DataCapacity) interval contains offset, per spec.md §4.8. Used by
// delete's predecessor/successor search and by ensureIndexSpace's
// "first data record" probe. Returns ok=false when offset lies outside
// every live record.
func (m *memIndex) findByOffset(offset int64) (string, *RecordHeader, bool) {
	for k, h := range m.byKey {
		if offset >= h.DataPointer && offset < h.DataPointer+int64(h.DataCapacity) {
			return k, h, true
		}
	}
	return "", nil, false
}
