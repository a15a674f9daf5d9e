package mie

import (
	"math"
	"math/cmplx"
)

// Special-function evaluations for the cylindrical scattering series. The
// Hankel functions only ever see the real size parameter, so they reduce to
// the standard library Bessel functions. The Bessel function of the first
// kind also sees m*alpha with complex m, which no Go library covers, so it is
// evaluated from the ascending series
//
//	J_n(z) = sum_k (-1)^k / (k! (n+k)!) (z/2)^(n+2k)
//
// with a term recurrence. The arguments here stay well inside the series'
// comfortable range (|z| of a few units), where it converges in a handful of
// terms.

const (
	maxSeriesTerms = 120
	seriesTol      = 1.e-17
)

func besselJ(n int, z complex128) complex128 {
	if n < 0 {
		if (-n)%2 != 0 {
			return -besselJ(-n, z)
		}
		return besselJ(-n, z)
	}
	var (
		half = z / 2
		term = complex(1, 0)
	)
	for k := 1; k <= n; k++ {
		term *= half / complex(float64(k), 0)
	}
	sum := term
	zz := -half * half
	for k := 1; k <= maxSeriesTerms; k++ {
		term *= zz / complex(float64(k)*float64(n+k), 0)
		sum += term
		if cmplx.Abs(term) <= seriesTol*cmplx.Abs(sum) {
			break
		}
	}
	return sum
}

// hankel2 is the Hankel function of the second kind, H2_n(x) = J_n(x) - i*Y_n(x).
// Real argument only; x <= 0 yields NaN from Yn and propagates.
func hankel2(n int, x float64) complex128 {
	return complex(math.Jn(n, x), -math.Yn(n, x))
}

// Derivatives via the recurrence f'_n = (f_(n-1) - f_(n+1))/2, valid for both
// J and H2.

func besselJPrime(n int, z complex128) complex128 {
	return (besselJ(n-1, z) - besselJ(n+1, z)) / 2
}

func hankel2Prime(n int, x float64) complex128 {
	return (hankel2(n-1, x) - hankel2(n+1, x)) / 2
}
