package packing

import "errors"

// ErrNoSnapshot is returned by UndoEdit/AfterUnmark when called without a
// matching prior BeforeEdit/AfterMark for the same pair.
var ErrNoSnapshot = errors.New("packing: no snapshot for pair")
