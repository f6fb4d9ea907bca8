package hilbert

// AxesToTranspose converts the axis-space point x, each coordinate a b-bit
// value, into the Hilbert transpose of its curve position. The conversion is
// in place; the returned Transpose is the same storage retagged.
//
// The rotation phase must run from the most significant bit-plane down and
// over ascending dimensions: each level's invert/exchange decision reads the
// lower bits before any finer level has disturbed them. TransposeToAxes
// undoes it by running both loops the other way.
func AxesToTranspose(x Axes, b int) (Transpose, error) {
	if err := checkCoords(x, b); err != nil {
		return nil, err
	}
	n := len(x)
	m := uint32(1) << (b - 1)

	// Inverse undo.
	for q := m; q > 1; q >>= 1 {
		p := q - 1
		for i := 0; i < n; i++ {
			if x[i]&q != 0 {
				// Invert the low bits of the first dimension.
				x[0] ^= p
			} else {
				// Exchange the low bits of dimensions 0 and i.
				t := (x[0] ^ x[i]) & p
				x[0] ^= t
				x[i] ^= t
			}
		}
	}

	// Gray encode.
	for i := 1; i < n; i++ {
		x[i] ^= x[i-1]
	}
	var t uint32
	for q := m; q > 1; q >>= 1 {
		if x[n-1]&q != 0 {
			t ^= q - 1
		}
	}
	for i := range x {
		x[i] ^= t
	}

	return Transpose(x), nil
}

// TransposeToAxes is the exact inverse of AxesToTranspose: it converts the
// transpose h of a curve position back into axis-space coordinates, in place.
func TransposeToAxes(h Transpose, b int) (Axes, error) {
	if err := checkCoords(h, b); err != nil {
		return nil, err
	}
	n := len(h)
	// One past the highest bit-plane. For b=32 this wraps to zero, which the
	// != termination below still handles.
	top := uint32(2) << (b - 1)

	// Gray decode by H ^ (H/2). The loop stops at index 1: index 0 takes the
	// precomputed t instead. (Skilling's appendix ran this loop to index 0,
	// reading one element off the front of the vector.)
	t := h[n-1] >> 1
	for i := n - 1; i > 0; i-- {
		h[i] ^= h[i-1]
	}
	h[0] ^= t

	// Undo excess work, ascending bit-planes over descending dimensions, the
	// mirror image of the rotation phase above.
	for q := uint32(2); q != top; q <<= 1 {
		p := q - 1
		for i := n - 1; i >= 0; i-- {
			if h[i]&q != 0 {
				h[0] ^= p
			} else {
				t = (h[0] ^ h[i]) & p
				h[0] ^= t
				h[i] ^= t
			}
		}
	}

	return Axes(h), nil
}
