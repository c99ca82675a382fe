package finder

import "errors"

// ErrSameVertex indicates FindNear was called with u == v, which cannot be
// contained in any length-2-or-more simple path.
var ErrSameVertex = errors.New("finder: u and v must differ")
