/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/cemlab/gocem/InputParameters"
	"github.com/cemlab/gocem/waveguide"
)

type ModeAnalysis struct {
	InputFile string
	Kz        float64
	Scan      bool
}

// WaveguideCmd represents the waveguide command
var WaveguideCmd = &cobra.Command{
	Use:   "waveguide",
	Short: "Mode analysis for a half-loaded rectangular waveguide",
	Long: `
Verifies candidate propagation constants against the analytical TE_x/TM_x
dispersion conditions of a rectangular waveguide half-filled with dielectric,
or scans a kz interval for the propagating modes,

gocem waveguide `,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("waveguide called")
		mwg := &ModeAnalysis{}
		if mwg.InputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			panic(err)
		}
		mwg.Kz, _ = cmd.Flags().GetFloat64("kz")
		mwg.Scan, _ = cmd.Flags().GetBool("scan")
		ip := processWaveguideInput(mwg)
		RunWaveguide(mwg, ip)
	},
}

func processWaveguideInput(mwg *ModeAnalysis) (ip *InputParameters.WaveguideParameters) {
	var (
		err error
	)
	if len(mwg.InputFile) == 0 {
		err := fmt.Errorf("must supply an input parameters file (-I, --inputFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Half Loaded Waveguide"
Width: 1.
Height: 0.45
DielectricHeight: 0.225
Wavelength: 2.25
EpsDielectric: 2.45
EpsVacuum: 1.
Tolerance: 1.e-4
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(mwg.InputFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.WaveguideParameters{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(WaveguideCmd)
	WaveguideCmd.Flags().StringP("inputFile", "I", "", "YAML file with the waveguide geometry and materials")
	WaveguideCmd.Flags().Float64P("kz", "z", 0, "candidate propagation constant to verify")
	WaveguideCmd.Flags().BoolP("scan", "s", false, "scan [KzMin,KzMax] for propagating modes instead of verifying a candidate")
}

func RunWaveguide(mwg *ModeAnalysis, ip *InputParameters.WaveguideParameters) {
	var (
		k0   = 2 * math.Pi / ip.Wavelength
		epsD = complex(ip.EpsDielectric, 0)
		epsV = complex(ip.EpsVacuum, 0)
	)
	ip.Print()
	if mwg.Scan {
		p := waveguide.Parameters{
			Width:            ip.Width,
			Height:           ip.Height,
			DielectricHeight: ip.DielectricHeight,
			Wavelength:       ip.Wavelength,
			EpsDielectric:    epsD,
			EpsVacuum:        epsV,
			Tolerance:        ip.Tolerance,
		}
		kzMax := ip.KzMax
		if kzMax == 0 {
			kzMax = k0 * math.Sqrt(ip.EpsDielectric)
		}
		samples := ip.Samples
		if samples == 0 {
			samples = 2000
		}
		modes := waveguide.FindModes(p, ip.KzMin, kzMax, samples)
		if len(modes) == 0 {
			fmt.Printf("no propagating modes in [%8.4f, %8.4f]\n", ip.KzMin, kzMax)
			return
		}
		for _, m := range modes {
			fmt.Printf("%s mode: kz = %10.6f, kz/k0 = %8.4f, |residual| = %8.2e\n",
				m.Kind, m.Kz, m.Kz/k0, m.Residual)
		}
		return
	}
	ok := waveguide.VerifyMode(complex(mwg.Kz, 0), ip.Width, ip.Height, ip.DielectricHeight,
		ip.Wavelength, epsD, epsV, ip.Tolerance)
	fmt.Printf("kz = %10.6f, kz/k0 = %8.4f, mode condition satisfied: %v\n", mwg.Kz, mwg.Kz/k0, ok)
}
