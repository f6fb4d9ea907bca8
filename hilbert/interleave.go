package hilbert

// Interleave packs the transpose vector h, each coordinate bounded to b
// bits, into a single scalar code. Bit p of dimension j lands at code bit
// p*n + (n-1-j), so the bit-planes interleave most significant first with
// dimension 0 taking the top bit of every n-bit group. Requires
// len(h)*b <= CodeBits.
func Interleave(h Transpose, b int) (uint64, error) {
	if err := checkCoords(h, b); err != nil {
		return 0, err
	}
	n := len(h)
	if err := checkCode(b, n); err != nil {
		return 0, err
	}

	var code uint64
	for j := 0; j < n; j++ {
		shift := n - 1 - j
		for p := 0; p < b; p++ {
			code |= uint64((h[j]>>p)&1) << (p*n + shift)
		}
	}
	return code, nil
}

// Uninterleave unpacks a scalar code into a fresh n-dimension transpose
// vector, inverting Interleave bit for bit. Bits of code at or above n*b
// would be silently lost, so they are rejected instead.
func Uninterleave(code uint64, b, n int) (Transpose, error) {
	if err := checkCode(b, n); err != nil {
		return nil, err
	}
	if w := n * b; w < CodeBits && code>>w != 0 {
		return nil, ErrCodeRange
	}

	h := make(Transpose, n)
	for j := 0; j < n; j++ {
		shift := n - 1 - j
		for p := 0; p < b; p++ {
			h[j] |= uint32((code>>(p*n+shift))&1) << p
		}
	}
	return h, nil
}
