package hilbert

// Encode returns the scalar Hilbert index of the axis-space point x at b bits
// per coordinate. The caller's vector is not modified; the transform runs on
// a copy. Requires len(x)*b <= CodeBits.
func Encode(x Axes, b int) (uint64, error) {
	if err := checkCode(b, len(x)); err != nil {
		return 0, err
	}
	h, err := AxesToTranspose(x.Clone(), b)
	if err != nil {
		return 0, err
	}
	return Interleave(h, b)
}

// Decode returns the axis-space point at scalar Hilbert index code, for n
// dimensions of b bits each.
func Decode(code uint64, b, n int) (Axes, error) {
	h, err := Uninterleave(code, b, n)
	if err != nil {
		return nil, err
	}
	return TransposeToAxes(h, b)
}
