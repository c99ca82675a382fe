package bucketpq

import "errors"

var (
	// ErrAlreadyBuilt is returned by Insert once Build has been called.
	ErrAlreadyBuilt = errors.New("bucketpq: cannot insert after build")
	// ErrAlreadyInserted is returned by Insert for a duplicate element.
	ErrAlreadyInserted = errors.New("bucketpq: element already inserted")
	// ErrNotBuilt is returned by Pop/Erase/DecreaseKeyByOne before Build.
	ErrNotBuilt = errors.New("bucketpq: buckets must be built first")
	// ErrBuiltTwice is returned by a second call to Build.
	ErrBuiltTwice = errors.New("bucketpq: buckets already built")
	// ErrEmpty is returned by Build on an empty queue, and by Pop on an
	// exhausted one.
	ErrEmpty = errors.New("bucketpq: queue is empty")
	// ErrNoSuchElement is returned by Erase/DecreaseKeyByOne for an element
	// that was never inserted, or already popped/erased.
	ErrNoSuchElement = errors.New("bucketpq: element does not exist")
	// ErrKeyUnderflow is returned by DecreaseKeyByOne on a zero-valued key.
	ErrKeyUnderflow = errors.New("bucketpq: cannot decrease key below zero")
)
