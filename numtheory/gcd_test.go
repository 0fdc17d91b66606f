package numtheory

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/etru/helpers"
)

func TestExtendedGCD(t *testing.T) {
	testSpec := []struct {
		a, b    int64
		g, x, y int64
	}{
		{35, 15, 5, 1, -2},
		{15, 35, 5, -2, 1},
		{240, 46, 2, -9, 47},
		{17, 0, 17, 1, 0},
		{-17, 0, 17, -1, 0},
		{0, 5, 5, 0, 1},
		{0, -5, 5, 0, -1},
		{1, 1, 1, 0, 1},
	}

	for idx, spec := range testSpec {
		sampleNumber := idx + 1
		t.Run(fmt.Sprintf("Sample%d", sampleNumber), func(t *testing.T) {
			g, x, y, err := ExtendedGCD(spec.a, spec.b)
			if err != nil {
				t.Fatalf("ExtendedGCD(%d, %d): %s", spec.a, spec.b, err)
			}
			if g != spec.g || x != spec.x || y != spec.y {
				t.Fatalf("ExtendedGCD(%d, %d) = (%d, %d, %d), expected (%d, %d, %d)",
					spec.a, spec.b, g, x, y, spec.g, spec.x, spec.y)
			}
		})
	}
}

func TestBezoutIdentity(t *testing.T) {
	values := []int64{
		-1000003, -360, -97, -35, -15, -2, -1, 0, 1, 2, 7, 15, 35, 97, 360, 1000003,
		math.MaxInt32, math.MaxInt64, math.MaxInt64 - 1, math.MinInt64 + 1,
	}

	for _, a := range values {
		for _, b := range values {
			if a == 0 && b == 0 {
				continue
			}
			g, x, y, err := ExtendedGCD(a, b)
			if err != nil {
				t.Fatalf("ExtendedGCD(%d, %d): %s", a, b, err)
			}

			// a*x + b*y may exceed int64 transiently, so check it in big.Int.
			var lhs, t2 big.Int
			lhs.Mul(big.NewInt(a), big.NewInt(x))
			t2.Mul(big.NewInt(b), big.NewInt(y))
			lhs.Add(&lhs, &t2)
			if !lhs.IsInt64() || lhs.Int64() != g {
				t.Fatalf("ExtendedGCD(%d, %d) = (%d, %d, %d): a*x + b*y = %s", a, b, g, x, y, &lhs)
			}

			want := new(big.Int).GCD(nil, nil, big.NewInt(a), big.NewInt(b))
			if want.Int64() != g {
				t.Fatalf("ExtendedGCD(%d, %d): g = %d, expected %s", a, b, g, want)
			}
			if a%g != 0 || b%g != 0 {
				t.Fatalf("ExtendedGCD(%d, %d): %d does not divide both", a, b, g)
			}
		}
	}
}

func TestExtendedGCDError(t *testing.T) {
	testSpec := []struct {
		a, b int64
	}{
		{0, 0},
		{math.MinInt64, 0},
		{math.MinInt64, -1},
		{0, math.MinInt64},
	}

	for idx, spec := range testSpec {
		sampleNumber := idx + 1
		t.Run(fmt.Sprintf("Sample%d", sampleNumber), func(t *testing.T) {
			_, _, _, err := ExtendedGCD(spec.a, spec.b)
			if !errors.Is(err, helpers.ErrDomain) {
				t.Fatalf("ExtendedGCD(%d, %d): expected domain error, got %v", spec.a, spec.b, err)
			}
		})
	}
}
