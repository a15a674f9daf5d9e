package mie

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// Analytical efficiencies of a long cylindrical wire under normal-incidence
// plane-wave illumination, from the classical Mie cylindrical-scattering
// series. The series is truncated at a fixed, caller-overridable order: this
// is a fixed-order approximation, no convergence check is performed.
//
// Physically invalid inputs (zero wavelength, non-positive radius) are not
// validated; whatever the special functions produce propagates to the caller.

// DefaultMaxOrder is the truncation order used by the demos.
const DefaultMaxOrder = 50

// RelativeIndex is the scatterer's refractive index relative to the
// background, m = sqrt(conj(eps)) / nb. The principal square root of the
// conjugate keeps the e^{-jwt} time convention: for an absorbing material the
// imaginary part of m comes out negative.
func RelativeIndex(permittivity complex128, backgroundIndex float64) complex128 {
	return cmplx.Sqrt(cmplx.Conj(permittivity)) / complex(backgroundIndex, 0)
}

// SizeParameter is alpha = 2*pi*radius*nb / wavelength.
func SizeParameter(radius, backgroundIndex, wavelength float64) float64 {
	return 2 * math.Pi * radius * backgroundIndex / wavelength
}

// Coefficient is the complex scattering coefficient a_nu of the cylindrical
// series,
//
//	a_nu = [J_nu(a)J'_nu(ma) - m J_nu(ma) J'_nu(a)] /
//	       [H_nu(a)J'_nu(ma) - m J_nu(ma) H'_nu(a)]
//
// with H the Hankel function of the second kind. A near-zero denominator is
// not guarded and propagates as a large or infinite value.
func Coefficient(order int, m complex128, alpha float64) complex128 {
	var (
		za  = complex(alpha, 0)
		zm  = m * za
		jm  = besselJ(order, zm)
		jpm = besselJPrime(order, zm)
	)
	num := besselJ(order, za)*jpm - m*jm*besselJPrime(order, za)
	den := hankel2(order, alpha)*jpm - m*jm*hankel2Prime(order, alpha)
	return num / den
}

// Efficiencies returns the normalized absorption, scattering and extinction
// efficiencies of the wire,
//
//	qExt = (2/a) Re[a_0 + 2 sum a_nu]
//	qSca = (2/a) [|a_0|^2 + 2 sum |a_nu|^2]
//	qAbs = qExt - qSca
//
// summing orders 1..maxOrder. maxOrder = 0 uses only the nu=0 term.
func Efficiencies(permittivity complex128, backgroundIndex, wavelength, radius float64,
	maxOrder int) (qAbs, qSca, qExt float64) {
	var (
		m      = RelativeIndex(permittivity, backgroundIndex)
		alpha  = SizeParameter(radius, backgroundIndex, wavelength)
		a0     = Coefficient(0, m, alpha)
		sumExt = a0
		sumSca = cmplx.Abs(a0) * cmplx.Abs(a0)
	)
	for nu := 1; nu <= maxOrder; nu++ {
		a := Coefficient(nu, m, alpha)
		sumExt += 2 * a
		sumSca += 2 * cmplx.Abs(a) * cmplx.Abs(a)
	}
	qExt = 2 / alpha * real(sumExt)
	qSca = 2 / alpha * sumSca
	qAbs = qExt - qSca
	return
}

// EfficiencySweep evaluates the efficiency triple over a uniform wavelength
// span. Slices are index-aligned with the returned wavelengths.
func EfficiencySweep(permittivity complex128, backgroundIndex, radius float64,
	wavelengthMin, wavelengthMax float64, samples, maxOrder int) (wavelengths, qAbs, qSca, qExt []float64) {
	if samples < 2 {
		samples = 2
	}
	wavelengths = floats.Span(make([]float64, samples), wavelengthMin, wavelengthMax)
	qAbs = make([]float64, samples)
	qSca = make([]float64, samples)
	qExt = make([]float64, samples)
	for i, wl := range wavelengths {
		qAbs[i], qSca[i], qExt[i] = Efficiencies(permittivity, backgroundIndex, wl, radius, maxOrder)
	}
	return
}
