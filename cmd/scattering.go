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
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/cemlab/gocem/InputParameters"
	"github.com/cemlab/gocem/mie"
)

type WireScattering struct {
	InputFile string
	Sweep     bool
	Profile   bool
}

// ScatteringCmd represents the scattering command
var ScatteringCmd = &cobra.Command{
	Use:   "scattering",
	Short: "Analytical Mie efficiencies of a cylindrical wire",
	Long: `
Computes the analytical absorption, scattering and extinction efficiencies of
a long cylindrical wire under normal-incidence plane-wave illumination,

gocem scattering `,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("scattering called")
		msc := &WireScattering{}
		if msc.InputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			panic(err)
		}
		msc.Sweep, _ = cmd.Flags().GetBool("sweep")
		msc.Profile, _ = cmd.Flags().GetBool("profile")
		ip := processScatteringInput(msc)
		RunScattering(msc, ip)
	},
}

func processScatteringInput(msc *WireScattering) (ip *InputParameters.ScatteringParameters) {
	var (
		err error
	)
	if len(msc.InputFile) == 0 {
		err := fmt.Errorf("must supply an input parameters file (-I, --inputFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Gold Wire"
EpsRe: -1.0782
EpsIm: 5.8089
BackgroundIndex: 1.
Wavelength: 0.4   # microns
Radius: 0.05      # microns
MaxOrder: 50
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(msc.InputFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.ScatteringParameters{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(ScatteringCmd)
	ScatteringCmd.Flags().StringP("inputFile", "I", "", "YAML file with the wire material and geometry")
	ScatteringCmd.Flags().BoolP("sweep", "s", false, "sweep [WavelengthMin,WavelengthMax] instead of a single wavelength")
	ScatteringCmd.Flags().BoolP("profile", "p", false, "write a CPU profile of the run")
}

func RunScattering(msc *WireScattering, ip *InputParameters.ScatteringParameters) {
	if msc.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	ip.Print()
	maxOrder := ip.MaxOrder
	if maxOrder == 0 {
		maxOrder = mie.DefaultMaxOrder
	}
	if msc.Sweep {
		samples := ip.Samples
		if samples == 0 {
			samples = 50
		}
		wavelengths, qAbs, qSca, qExt := mie.EfficiencySweep(ip.Permittivity(), ip.BackgroundIndex,
			ip.Radius, ip.WavelengthMin, ip.WavelengthMax, samples, maxOrder)
		fmt.Printf("%12s %12s %12s %12s\n", "wavelength", "q_abs", "q_sca", "q_ext")
		for i, wl := range wavelengths {
			fmt.Printf("%12.6f %12.8f %12.8f %12.8f\n", wl, qAbs[i], qSca[i], qExt[i])
		}
		return
	}
	qAbs, qSca, qExt := mie.Efficiencies(ip.Permittivity(), ip.BackgroundIndex,
		ip.Wavelength, ip.Radius, maxOrder)
	fmt.Printf("q_abs = %12.8f\nq_sca = %12.8f\nq_ext = %12.8f\n", qAbs, qSca, qExt)
}
