package hilbert

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The worked example from Skilling's paper: the point (5,10,20) in a
// 32x32x32 cube. Its transpose is (10,14,27), whose interleaving is the
// 15-bit Hilbert integer 7865.
var (
	skillingAxes      = Axes{5, 10, 20}
	skillingTranspose = Transpose{10, 14, 27}
)

func TestAxesToTranspose(t *testing.T) {
	type args struct {
		x Axes
		b int
	}
	tests := []struct {
		name string
		args args
		want Transpose
	}{
		{"skilling worked example", args{skillingAxes.Clone(), 5}, skillingTranspose},
		// n=1 is a trivial curve: the correction term cancels the rotation
		// phase exactly, whatever b is.
		{"single dimension is identity", args{Axes{5}, 3}, Transpose{5}},
		{"single dimension max value", args{Axes{1<<32 - 1}, 32}, Transpose{1<<32 - 1}},
		// b=1 skips both bit-plane loops, leaving only the Gray chain.
		{"one bit is the gray chain", args{Axes{1, 0, 1}, 1}, Transpose{1, 1, 0}},
		{"one bit zero vector", args{Axes{0, 0}, 1}, Transpose{0, 0}},
		{"origin is fixed", args{Axes{0, 0, 0}, 5}, Transpose{0, 0, 0}},
		{"two dimensions", args{Axes{1, 1}, 2}, Transpose{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AxesToTranspose(tt.args.x, tt.args.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransposeToAxes(t *testing.T) {
	type args struct {
		h Transpose
		b int
	}
	tests := []struct {
		name string
		args args
		want Axes
	}{
		{"skilling worked example", args{skillingTranspose.Clone(), 5}, skillingAxes},
		{"single dimension is identity", args{Transpose{5}, 3}, Axes{5}},
		{"one bit undoes the gray chain", args{Transpose{1, 1, 0}, 1}, Axes{1, 0, 1}},
		{"origin is fixed", args{Transpose{0, 0, 0}, 5}, Axes{0, 0, 0}},
		{"two dimensions", args{Transpose{1, 0}, 2}, Axes{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TransposeToAxes(tt.args.h, tt.args.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestTransposeRoundTrip sweeps every coordinate vector for small n and b and
// checks TransposeToAxes(AxesToTranspose(v)) == v. The sweep enumerates
// vectors by decomposing a counter into n b-bit digits.
func TestTransposeRoundTrip(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for b := 1; b <= 4; b++ {
			t.Run(fmt.Sprintf("n=%d b=%d", n, b), func(t *testing.T) {
				total := uint64(1) << (n * b)
				mask := uint32(1)<<b - 1
				for c := uint64(0); c < total; c++ {
					v := make(Axes, n)
					for i := 0; i < n; i++ {
						v[i] = uint32(c>>(i*b)) & mask
					}
					want := v.Clone()
					h, err := AxesToTranspose(v, b)
					require.NoError(t, err)
					got, err := TransposeToAxes(h, b)
					require.NoError(t, err)
					require.Equal(t, want, got, "vector %v does not round trip", want)
				}
			})
		}
	}
}

// TestTransposeInPlace confirms the transforms retag the caller's storage
// rather than allocating.
func TestTransposeInPlace(t *testing.T) {
	v := Axes{5, 10, 20}
	h, err := AxesToTranspose(v, 5)
	require.NoError(t, err)
	assert.Same(t, &v[0], &h[0])

	x, err := TransposeToAxes(h, 5)
	require.NoError(t, err)
	assert.Same(t, &h[0], &x[0])
}

func TestTransposePreconditions(t *testing.T) {
	type args struct {
		v []uint32
		b int
	}
	tests := []struct {
		name string
		args args
		err  error
	}{
		{"empty vector", args{nil, 5}, ErrNoDimensions},
		{"zero bits", args{[]uint32{1}, 0}, ErrBitWidth},
		{"too many bits", args{[]uint32{1}, 33}, ErrBitWidth},
		{"coordinate over b bits", args{[]uint32{4, 0}, 2}, ErrCoordRange},
		{"coordinate at b bits is fine", args{[]uint32{3, 0}, 2}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AxesToTranspose(Axes(tt.args.v).Clone(), tt.args.b)
			assert.ErrorIs(t, err, tt.err)
			_, err = TransposeToAxes(Transpose(tt.args.v).Clone(), tt.args.b)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func BenchmarkAxesToTranspose(b *testing.B) {
	v := Axes{5, 10, 20}
	for i := 0; i < b.N; i++ {
		if _, err := AxesToTranspose(v, 5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransposeToAxes(b *testing.B) {
	v := Transpose{10, 14, 27}
	for i := 0; i < b.N; i++ {
		if _, err := TransposeToAxes(v, 5); err != nil {
			b.Fatal(err)
		}
	}
}
