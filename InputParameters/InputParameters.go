package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file for the waveguide demo
type WaveguideParameters struct {
	Title            string  `yaml:"Title"`
	Width            float64 `yaml:"Width"`
	Height           float64 `yaml:"Height"`
	DielectricHeight float64 `yaml:"DielectricHeight"`
	Wavelength       float64 `yaml:"Wavelength"`
	EpsDielectric    float64 `yaml:"EpsDielectric"`
	EpsVacuum        float64 `yaml:"EpsVacuum"`
	Tolerance        float64 `yaml:"Tolerance"`
	KzMin            float64 `yaml:"KzMin"`
	KzMax            float64 `yaml:"KzMax"` // 0 means scan up to k0*sqrt(EpsDielectric)
	Samples          int     `yaml:"Samples"`
}

func (ip *WaveguideParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *WaveguideParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= Width\n", ip.Width)
	fmt.Printf("%8.5f\t\t= Height\n", ip.Height)
	fmt.Printf("%8.5f\t\t= DielectricHeight\n", ip.DielectricHeight)
	fmt.Printf("%8.5f\t\t= Wavelength\n", ip.Wavelength)
	fmt.Printf("%8.5f\t\t= EpsDielectric\n", ip.EpsDielectric)
	fmt.Printf("%8.5f\t\t= EpsVacuum\n", ip.EpsVacuum)
	fmt.Printf("%8.2e\t\t= Tolerance\n", ip.Tolerance)
}

// Parameters obtained from the YAML input file for the scattering demo
type ScatteringParameters struct {
	Title           string  `yaml:"Title"`
	EpsRe           float64 `yaml:"EpsRe"`
	EpsIm           float64 `yaml:"EpsIm"`
	BackgroundIndex float64 `yaml:"BackgroundIndex"`
	Wavelength      float64 `yaml:"Wavelength"`
	Radius          float64 `yaml:"Radius"`
	MaxOrder        int     `yaml:"MaxOrder"`
	WavelengthMin   float64 `yaml:"WavelengthMin"`
	WavelengthMax   float64 `yaml:"WavelengthMax"`
	Samples         int     `yaml:"Samples"`
}

func (ip *ScatteringParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Permittivity assembles the complex permittivity from its YAML components.
func (ip *ScatteringParameters) Permittivity() complex128 {
	return complex(ip.EpsRe, ip.EpsIm)
}

func (ip *ScatteringParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f%+8.5fi\t= Permittivity\n", ip.EpsRe, ip.EpsIm)
	fmt.Printf("%8.5f\t\t= BackgroundIndex\n", ip.BackgroundIndex)
	fmt.Printf("%8.5f\t\t= Wavelength\n", ip.Wavelength)
	fmt.Printf("%8.5f\t\t= Radius\n", ip.Radius)
	fmt.Printf("[%d]\t\t\t= MaxOrder\n", ip.MaxOrder)
}
