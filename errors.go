package recordstore

import "github.com/nmarsh/recordstore/errors"

// Sentinel errors for the operations in spec.md §6.2/§7. Built on the
// teacher's const-string Error type so callers can compare with == as
// well as errors.Is.
const (
	// ErrStoreAlreadyExists is returned by Create when path already exists.
	ErrStoreAlreadyExists = errors.Error("recordstore: store already exists")

	// ErrStoreNotFound is returned by Open when path does not exist.
	ErrStoreNotFound = errors.Error("recordstore: store not found")

	// ErrKeyExists is returned by Insert when the key is already present.
	ErrKeyExists = errors.Error("recordstore: key already exists")

	// ErrKeyNotFound is returned by Read, Update, and Delete for an
	// absent key.
	ErrKeyNotFound = errors.Error("recordstore: key not found")

	// ErrKeyTooLarge is returned when a key's length-prefixed encoding
	// exceeds MaxKeyLen bytes.
	ErrKeyTooLarge = errors.Error("recordstore: key too large")

	// ErrRecordDoesNotFit is an internal consistency error: the
	// allocator handed back a header whose capacity is smaller than the
	// payload being written into it. This should be impossible; seeing
	// it means the allocator has a bug.
	ErrRecordDoesNotFit = errors.Error("recordstore: record does not fit allocated capacity")

	// ErrCorrupt is returned when an operation discovers the file no
	// longer satisfies the tiling invariant (spec.md §9, "delete when
	// both neighbors missing"). It signals the store should be
	// considered corrupt; there is no recovery path.
	ErrCorrupt = errors.Error("recordstore: store invariant violated")

	// ErrClosed is returned by Read, Insert, Update, Delete, and Close
	// on a Store that has already been closed. Exists, Size, and Keys
	// have no error result and do not check for a closed Store.
	ErrClosed = errors.Error("recordstore: store is closed")
)
