// Package bucketpq implements a bucket-array priority queue specialized for
// small non-negative integer keys with O(1) insert/pop/erase/decrease-key.
// Elements tied for the minimum key are broken uniformly at random, which
// the degree-based lower-bound improvement in package packing relies on to
// avoid a fixed bias toward low vertex indices.
package bucketpq
