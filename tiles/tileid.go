// Package tiles orders the tiles of a square zoom pyramid along per-zoom
// Hilbert curves, packing every zoom level into a single uint64 id space.
//
// Zoom z holds 4^z tiles, so the ids for zoom z begin at the pyramid prefix
//
//	(4^z - 1) / 3 = 1 + 4 + ... + 4^(z-1)
//
// and within a zoom the id is the tile's Hilbert index. Consecutive ids at
// one zoom are therefore always grid-adjacent tiles.
package tiles

import (
	"errors"
	"math/bits"

	"github.com/forestrie/go-spacecurve/hilbert"
)

// MaxZoom is the deepest zoom whose pyramid still fits a uint64 id.
const MaxZoom = 31

// invalidID is the first id past the zoom 31 pyramid, (4^32 - 1) / 3.
const invalidID uint64 = 0x5555555555555555

var (
	ErrZoomRange = errors.New("tile zoom exceeds the 64-bit id pyramid")
	ErrTileRange = errors.New("tile x/y outside zoom level bounds")
	ErrIDRange   = errors.New("tile id beyond the maximum zoom pyramid")
)

// pyramidBase returns the count of tiles in all zoom levels before z, which
// is the first id of zoom z.
func pyramidBase(z uint8) uint64 {
	return ((uint64(1) << (2 * uint(z))) - 1) / 3
}

// ID converts standard (z, x, y) tile coordinates to a tile id.
func ID(z uint8, x, y uint32) (uint64, error) {
	if z > MaxZoom {
		return 0, ErrZoomRange
	}
	if z == 0 {
		if x != 0 || y != 0 {
			return 0, ErrTileRange
		}
		return 0, nil
	}
	if uint64(x) >= 1<<z || uint64(y) >= 1<<z {
		return 0, ErrTileRange
	}
	d, err := hilbert.Encode(hilbert.Axes{x, y}, int(z))
	if err != nil {
		return 0, err
	}
	return pyramidBase(z) + d, nil
}

// ZXY recovers the (z, x, y) tile coordinates of a tile id.
func ZXY(id uint64) (uint8, uint32, uint32, error) {
	if id >= invalidID {
		return 0, 0, 0, ErrIDRange
	}
	if id == 0 {
		return 0, 0, 0, nil
	}

	// id lies in zoom z iff 4^z <= 3*id+1 < 4^(z+1), so z is half the bit
	// length, rounded down. 3*id+1 cannot overflow below invalidID.
	z := uint8((bits.Len64(3*id+1) - 1) / 2)

	x, err := hilbert.Decode(id-pyramidBase(z), int(z), 2)
	if err != nil {
		return 0, 0, 0, err
	}
	return z, x[0], x[1], nil
}
