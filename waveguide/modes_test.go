package waveguide

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference geometry: w=1, h=0.45w, dielectric filling the lower half,
// lambda0 = h/0.2, eps_d = 2.45 against vacuum.
func referenceGuide() Parameters {
	w := 1.0
	h := 0.45 * w
	return Parameters{
		Width:            w,
		Height:           h,
		DielectricHeight: 0.5 * h,
		Wavelength:       h / 0.2,
		EpsDielectric:    complex(2.45, 0),
		EpsVacuum:        complex(1, 0),
		Tolerance:        1.e-4,
	}
}

func TestTransverseWavenumbers(t *testing.T) {
	var (
		p  = referenceGuide()
		k0 = complex(2*math.Pi/p.Wavelength, 0)
		ky = complex(math.Pi/p.Width, 0)
	)
	kxd, kxv := TransverseWavenumbers(0, k0, ky, p.EpsDielectric, p.EpsVacuum)
	// kxd^2 = k0^2*2.45 - pi^2 = 9.23601, kxv^2 = kxd^2 - 1.45*k0^2 = -2.07139
	assert.InDelta(t, 3.03908, real(kxd), 1.e-4)
	assert.InDelta(t, 0, imag(kxd), 1.e-12)
	assert.InDelta(t, 0, real(kxv), 1.e-12)
	// principal branch puts the vacuum-side wavenumber on +i, the decaying choice
	assert.InDelta(t, 1.43923, imag(kxv), 1.e-4)
}

func TestHalfLoadedWaveguideModes(t *testing.T) {
	var (
		p     = referenceGuide()
		k0    = 2 * math.Pi / p.Wavelength
		kzMax = k0 * math.Sqrt(real(p.EpsDielectric))
	)
	modes := FindModes(p, 0, kzMax, 4000)
	require.NotEmpty(t, modes)
	for _, m := range modes {
		fmt.Printf("%s mode: kz = %10.6f, kz/k0 = %8.4f, |residual| = %8.2e\n",
			m.Kind, m.Kz, m.Kz/k0, m.Residual)
		assert.True(t, VerifyMode(complex(m.Kz, 0), p.Width, p.Height, p.DielectricHeight,
			p.Wavelength, p.EpsDielectric, p.EpsVacuum, 1.e-4))
	}
	// This geometry carries a single propagating mode, TM_x with kz near 1.30
	require.Len(t, modes, 1)
	assert.Equal(t, TMx, modes[0].Kind)
	assert.InDelta(t, 1.30, modes[0].Kz, 0.05)

	// kz = 0 is far from any root
	assert.False(t, VerifyMode(0, p.Width, p.Height, p.DielectricHeight,
		p.Wavelength, p.EpsDielectric, p.EpsVacuum, 1.e-4))
}

func TestResidualBracketsRoot(t *testing.T) {
	p := referenceGuide()
	// The TM_x residual is continuous and changes sign across the true root
	fa := real(p.Residual(TMx, 1.2))
	fb := real(p.Residual(TMx, 1.4))
	assert.True(t, fa > 0)
	assert.True(t, fb < 0)

	// For real kz and real permittivities both residuals are real: the vacuum
	// region contributes kxv*cot(kxv*x) = gamma*coth(gamma*x) with kxv = i*gamma
	for _, kz := range []float64{0.5, 1.0, 1.3, 2.0, 3.5} {
		assert.InDelta(t, 0, imag(p.Residual(TEx, kz)), 1.e-10)
		assert.InDelta(t, 0, imag(p.Residual(TMx, kz)), 1.e-10)
	}

	// No TE_x root exists here: both terms of the TE residual stay positive
	for _, kz := range []float64{0.1, 1.0, 2.0, 3.0, 4.0} {
		assert.True(t, real(p.Residual(TEx, kz)) > 0)
	}
}

func TestConditionsAtPoleStayUnguarded(t *testing.T) {
	// Drive cot through a singularity: kxd*d = pi exactly. The residual blows
	// up rather than erroring, per the propagate-through-floating-point policy.
	d, h := 1.0, 2.0
	kxd := complex(math.Pi, 0)
	f := TECondition(kxd, complex(1, 0), d, h)
	assert.True(t, cmplx.Abs(f) > 1.e12 || cmplx.IsNaN(f) || cmplx.IsInf(f))
}
