package hilbert

import "errors"

const (
	// CoordBits is the width of a single coordinate word. The bits-per-axis
	// parameter b may not exceed it.
	CoordBits = 32

	// CodeBits is the width of the scalar Hilbert index. Interleaving packs
	// n*b bits into one code, so n*b may not exceed it.
	CodeBits = 64
)

var (
	ErrNoDimensions = errors.New("coordinate vector has no dimensions")
	ErrBitWidth     = errors.New("bits per axis must be in 1..32")
	ErrCoordRange   = errors.New("coordinate does not fit in the declared bits per axis")
	ErrCodeWidth    = errors.New("n*b bits do not fit the 64-bit hilbert code")
	ErrCodeRange    = errors.New("hilbert code has bits set beyond n*b")
)

// Axes holds a point's per-dimension coordinates, one b-bit value per
// dimension. The dimension count n is the slice length.
type Axes []uint32

// Transpose holds the same words reinterpreted as the column-wise transpose
// of the Hilbert integer (see the package documentation). The only sanctioned
// conversions between the two are AxesToTranspose and TransposeToAxes.
type Transpose []uint32

func (x Axes) Clone() Axes {
	c := make(Axes, len(x))
	copy(c, x)
	return c
}

func (h Transpose) Clone() Transpose {
	c := make(Transpose, len(h))
	copy(c, h)
	return c
}

// checkCoords applies the shared preconditions: at least one dimension, a
// representable bit width, and every coordinate within b bits. All entry
// points validate before touching any bits.
func checkCoords(v []uint32, b int) error {
	if len(v) == 0 {
		return ErrNoDimensions
	}
	if b < 1 || b > CoordBits {
		return ErrBitWidth
	}
	if b < CoordBits {
		limit := uint32(1) << b
		for _, c := range v {
			if c >= limit {
				return ErrCoordRange
			}
		}
	}
	return nil
}

// checkCode validates the scalar-code width bound n*b <= CodeBits.
func checkCode(b, n int) error {
	if n < 1 {
		return ErrNoDimensions
	}
	if b < 1 || b > CoordBits {
		return ErrBitWidth
	}
	if n*b > CodeBits {
		return ErrCodeWidth
	}
	return nil
}
