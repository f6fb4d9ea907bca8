// Package hilbert transforms between n-dimensional integer coordinates and
// their position along the Hilbert space-filling curve.
//
// # The transpose representation
//
// The curve position is never produced directly from the axes. Skilling's
// algorithm works on an intermediate form he calls the Transpose: the bits of
// the would-be Hilbert integer, dealt column-wise across the n coordinate
// words. For b=5 bits and n=3 dimensions the 15-bit Hilbert integer
//
//	A B C D E F G H I J K L M N O
//
// is stored as
//
//	X[0] = A D G J M
//	X[1] = B E H K N
//	X[2] = C F I L O
//	       high   low
//
// so dimension 0 holds the most significant bit of every 3-bit group. Axes
// are stored conventionally as b-bit integers.
//
// AxesToTranspose and TransposeToAxes convert between axis space and this
// form, in place. They are exact mirrors of each other: the same
// invert/exchange step applied per bit-plane and per dimension, with both
// iteration orders reversed. That mirroring is the inverse relationship
// itself, not a stylistic choice, so the loop directions in the two
// functions must not be unified.
//
// Interleave and Uninterleave then pack a transpose vector into a single
// uint64 and back, which is plain bit interleaving. Encode and Decode
// compose the two steps for callers that only want axes <-> scalar index.
//
// # Why a Gray code
//
// Consecutive positions on the curve differ in exactly one bit of the
// underlying Gray code, which is what gives the Hilbert curve its locality:
// stepping to the next curve position always moves to a grid-adjacent cell,
// unlike a row-major or Morton (Z-order) walk. This is the property that
// makes Hilbert ordering attractive for spatial indexes and tiled storage.
//
// References:
//   - J. Skilling, "Programming the Hilbert curve", AIP Conference
//     Proceedings 707, 381 (2004). Note the appendix's Gray-decode loop ran
//     one index too far; the corrected bound is used here.
//   - https://en.wikipedia.org/wiki/Hilbert_curve#Applications_and_mapping_algorithms
//   - https://github.com/Forceflow/libmorton for interleaving background.
package hilbert
