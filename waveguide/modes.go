package waveguide

import (
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/cemlab/gocem/utils"
)

// Analytical mode conditions for a rectangular waveguide of width w and
// height h, half-loaded with a dielectric slab of height d < h against the
// bottom wall. The transcendental TE_x/TM_x equations below are zero exactly
// at the allowed propagation constants kz. See Jin, "The Finite Element
// Method in Electromagnetics", for the derivation.
//
// All square roots take the principal complex branch, which matches the
// e^{-jwt} time convention: flipping the branch turns decaying vacuum-side
// fields into growing ones.

type Parameters struct {
	Width, Height, DielectricHeight float64
	Wavelength                      float64
	EpsDielectric, EpsVacuum        complex128
	Tolerance                       float64
}

// TransverseWavenumbers returns the transverse wavenumber kxd inside the
// dielectric and kxv in the vacuum region for a candidate kz. Any complex kz
// is accepted.
func TransverseWavenumbers(kz, k0, ky, epsD, epsV complex128) (kxd, kxv complex128) {
	kxd = cmplx.Sqrt(k0*k0*epsD - ky*ky - kz*kz)
	kxv = cmplx.Sqrt(kxd*kxd - k0*k0*(epsD-epsV))
	return
}

// TECondition is kxd*cot(kxd*d) + kxv*cot(kxv*(h-d)). Poles where an argument
// crosses a multiple of pi are not guarded; callers must tolerate large or
// NaN magnitudes there.
func TECondition(kxd, kxv complex128, d, h float64) complex128 {
	return kxd*cmplx.Cot(kxd*complex(d, 0)) + kxv*cmplx.Cot(kxv*complex(h-d, 0))
}

// TMCondition is (kxd/epsD)*tan(kxd*d) + (kxv/epsV)*tan(kxv*(h-d)), with the
// same pole caveat as TECondition.
func TMCondition(kxd, kxv, epsD, epsV complex128, d, h float64) complex128 {
	return kxd/epsD*cmplx.Tan(kxd*complex(d, 0)) + kxv/epsV*cmplx.Tan(kxv*complex(h-d, 0))
}

// VerifyMode reports whether the candidate kz satisfies either the TE_x or
// the TM_x condition to within tolerance, for the n=1 transverse index
// (ky = pi/width). It is a verification oracle over a caller-supplied
// candidate, not a root finder. Closeness is measured on the complex modulus
// of the residual. Inputs are not validated; degenerate geometry propagates
// through floating point.
func VerifyMode(kz complex128, width, height, dielectricHeight, wavelength float64,
	epsD, epsV complex128, tolerance float64) bool {
	var (
		k0 = complex(2*math.Pi/wavelength, 0)
		ky = complex(math.Pi/width, 0)
	)
	kxd, kxv := TransverseWavenumbers(kz, k0, ky, epsD, epsV)
	fTE := TECondition(kxd, kxv, dielectricHeight, height)
	fTM := TMCondition(kxd, kxv, epsD, epsV, dielectricHeight, height)
	return utils.IsCloseC(fTE, 0, tolerance) || utils.IsCloseC(fTM, 0, tolerance)
}

type ModeKind uint8

const (
	TEx ModeKind = iota
	TMx
)

var kindNames = []string{
	"TE_x",
	"TM_x",
}

func (k ModeKind) String() string {
	return kindNames[k]
}

// Mode is a propagation constant located by FindModes, with the modulus of
// its dispersion residual.
type Mode struct {
	Kind     ModeKind
	Kz       float64
	Residual float64
}

// Residual evaluates the dispersion condition of the given kind at a real kz.
func (p Parameters) Residual(kind ModeKind, kz float64) complex128 {
	var (
		k0 = complex(2*math.Pi/p.Wavelength, 0)
		ky = complex(math.Pi/p.Width, 0)
	)
	kxd, kxv := TransverseWavenumbers(complex(kz, 0), k0, ky, p.EpsDielectric, p.EpsVacuum)
	if kind == TEx {
		return TECondition(kxd, kxv, p.DielectricHeight, p.Height)
	}
	return TMCondition(kxd, kxv, p.EpsDielectric, p.EpsVacuum, p.DielectricHeight, p.Height)
}

// FindModes scans real kz on a uniform grid over [kzMin, kzMax], brackets
// sign changes of the real part of each dispersion residual and refines them
// by bisection. Brackets that converge onto a tan/cot pole leave a large
// residual and are discarded, so only true roots survive the tolerance test.
// Results are sorted by kz.
func FindModes(p Parameters, kzMin, kzMax float64, samples int) (modes []Mode) {
	if samples < 2 {
		samples = 2
	}
	grid := floats.Span(make([]float64, samples), kzMin, kzMax)
	for _, kind := range []ModeKind{TEx, TMx} {
		f := func(kz float64) float64 {
			return real(p.Residual(kind, kz))
		}
		for i := 1; i < len(grid); i++ {
			fa, fb := f(grid[i-1]), f(grid[i])
			if math.IsNaN(fa) || math.IsNaN(fb) || fa*fb > 0 {
				continue
			}
			kz := bisect(f, grid[i-1], grid[i])
			res := cmplx.Abs(p.Residual(kind, kz))
			if res <= p.Tolerance {
				modes = append(modes, Mode{Kind: kind, Kz: kz, Residual: res})
			}
		}
	}
	sort.Slice(modes, func(i, j int) bool {
		return modes[i].Kz < modes[j].Kz
	})
	return
}

func bisect(f func(float64) float64, a, b float64) float64 {
	fa := f(a)
	for i := 0; i < 100; i++ {
		c := 0.5 * (a + b)
		fc := f(c)
		if fc == 0 {
			return c
		}
		if fa*fc < 0 {
			b = c
		} else {
			a, fa = c, fc
		}
	}
	return 0.5 * (a + b)
}
