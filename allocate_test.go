package recordstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAllocateSplitsDonor exercises spec.md §4.7 step 1 directly: a
// record with trailing free space gets split instead of appending.
func TestAllocateSplitsDonor(t *testing.T) {
	path := tempStorePath(t)
	store, err := Create(path, 4, nil)
	require.NoError(t, err)
	defer store.Close()

	// Insert "a" with 3 bytes, then shrink it to 1 byte in place so it
	// carries 2 bytes of free space without ever triggering the
	// growing-update relocation path.
	require.NoError(t, store.Insert("a", []byte{1, 2, 3}))
	require.NoError(t, store.Update("a", []byte{9}))

	donor, ok := store.idx.get("a")
	require.True(t, ok)
	require.Equal(t, uint32(2), donor.freeSpace())

	fileLenBefore := store.fileLength

	require.NoError(t, store.Insert("b", []byte{7, 8}))

	b, ok := store.idx.get("b")
	require.True(t, ok)
	require.Equal(t, donor.DataPointer+int64(donor.DataSize), b.DataPointer)
	require.Equal(t, uint32(2), b.DataCapacity)

	// No append at end-of-file should have been necessary.
	require.Equal(t, fileLenBefore, store.fileLength)

	got, err := store.Read("b")
	require.NoError(t, err)
	require.Equal(t, []byte{7, 8}, got)
}

// TestAllocateAppendsWhenNoDonorFits exercises spec.md §4.7 step 2.
func TestAllocateAppendsWhenNoDonorFits(t *testing.T) {
	path := tempStorePath(t)
	store, err := Create(path, 4, nil)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Insert("a", []byte{1, 2, 3}))

	before := store.fileLength
	require.NoError(t, store.Insert("b", []byte{4, 5, 6, 7}))
	require.Equal(t, before+4, store.fileLength)
}

// TestEnsureIndexSpaceEmptyFastPath exercises spec.md §4.6's
// empty-store fast path: growing the index region of a store with zero
// records never touches the data region at all.
func TestEnsureIndexSpaceEmptyFastPath(t *testing.T) {
	path := tempStorePath(t)
	store, err := Create(path, 0, nil)
	require.NoError(t, err)
	defer store.Close()

	require.Equal(t, int64(FileHeaderLen), store.dataStartPtr)

	require.NoError(t, store.ensureIndexSpace(4))

	require.Equal(t, indexSlotOffset(4), store.dataStartPtr)
	require.Equal(t, int32(0), store.numRecords)
}

// TestEnsureIndexSpaceRelocatesFirstRecord exercises spec.md §4.6's
// relocation loop directly, independent of Insert's own call to it.
func TestEnsureIndexSpaceRelocatesFirstRecord(t *testing.T) {
	path := tempStorePath(t)
	store, err := Create(path, 1, nil)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Insert("a", []byte{1, 2, 3}))
	originalCapacity := func() uint32 {
		h, _ := store.idx.get("a")
		return h.DataCapacity
	}()

	require.NoError(t, store.ensureIndexSpace(3))

	h, ok := store.idx.get("a")
	require.True(t, ok)
	require.Equal(t, originalCapacity, h.DataSize) // tight-fit after relocation, old capacity already released
	require.Equal(t, h.DataSize, h.DataCapacity)    // forfeited its trailing slack

	got, err := store.Read("a")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, got)

	require.GreaterOrEqual(t, store.dataStartPtr, indexSlotOffset(3))
}

// TestDeleteTailTruncatesFile exercises spec.md §4.5's first case
// directly: deleting the record at the end of the file shrinks it.
func TestDeleteTailTruncatesFile(t *testing.T) {
	path := tempStorePath(t)
	store, err := Create(path, 4, nil)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Insert("a", []byte{1, 2, 3}))
	h, ok := store.idx.get("a")
	require.True(t, ok)

	before := store.fileLength
	require.NoError(t, store.Delete("a"))

	require.Equal(t, h.DataPointer, store.fileLength)
	require.Less(t, store.fileLength, before)
}

// TestDeleteBothNeighborsMissingIsCorrupt simulates a broken tiling
// invariant (spec.md §9) and checks it surfaces ErrCorrupt rather than
// silently doing nothing.
func TestDeleteBothNeighborsMissingIsCorrupt(t *testing.T) {
	path := tempStorePath(t)
	store, err := Create(path, 4, nil)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Insert("a", []byte{1, 2, 3}))

	h, ok := store.idx.get("a")
	require.True(t, ok)

	// Make "a" stop being the tail without a real neighbor covering
	// either boundary, to force the fallthrough case.
	store.fileLength = h.DataPointer + int64(h.DataCapacity) + 64
	require.NoError(t, store.file.Truncate(store.fileLength))

	err = store.reclaimDataSpace("a", h)
	require.ErrorIs(t, err, ErrCorrupt)
}
