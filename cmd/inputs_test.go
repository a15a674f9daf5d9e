package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/cemlab/gocem/InputParameters"
)

func TestWaveguideInput(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Half Loaded Waveguide
Width: 1.
Height: 0.45
DielectricHeight: 0.225
Wavelength: 2.25
EpsDielectric: 2.45
EpsVacuum: 1.
Tolerance: 1.e-4
KzMin: 0.
KzMax: 0.   # 0 means scan up to k0*sqrt(EpsDielectric)
Samples: 2000
`)
	var input InputParameters.WaveguideParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Width, 1.)
	assert.Equal(t, input.Height, 0.45)
	assert.Equal(t, input.DielectricHeight, 0.225)
	assert.Equal(t, input.EpsDielectric, 2.45)
	assert.Equal(t, input.Tolerance, 1.e-4)
	assert.Equal(t, input.Samples, 2000)
	input.Print()
}

func TestScatteringInput(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Gold Wire
EpsRe: -1.0782
EpsIm: 5.8089
BackgroundIndex: 1.
Wavelength: 0.4
Radius: 0.05
MaxOrder: 50
`)
	var input InputParameters.ScatteringParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Permittivity(), complex(-1.0782, 5.8089))
	assert.Equal(t, input.BackgroundIndex, 1.)
	assert.Equal(t, input.Wavelength, 0.4)
	assert.Equal(t, input.Radius, 0.05)
	assert.Equal(t, input.MaxOrder, 50)
	input.Print()
}
