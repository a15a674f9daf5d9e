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

	"github.com/spf13/cobra"

	"github.com/cemlab/gocem/geometry2D"
)

// MeshCmd represents the mesh command
var MeshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Generate the two-wire scattering domain mesh",
	Long: `
Triangulates the 10x10 wavelength scattering domain with two circular wire
cross-sections and writes it in Gmsh 2.2 ASCII format,

gocem mesh `,
	Run: func(cmd *cobra.Command, args []string) {
		lambda, _ := cmd.Flags().GetFloat64("lambda")
		segments, _ := cmd.Flags().GetInt("segments")
		outFile, _ := cmd.Flags().GetString("outFile")
		RunMesh(lambda, segments, outFile)
	},
}

func init() {
	rootCmd.AddCommand(MeshCmd)
	MeshCmd.Flags().Float64P("lambda", "l", 0.4, "vacuum wavelength setting the domain scale")
	MeshCmd.Flags().IntP("segments", "n", 64, "chords per wire boundary circle")
	MeshCmd.Flags().StringP("outFile", "o", "domain.msh", "output mesh file in Gmsh 2.2 format")
}

func RunMesh(lambda float64, segments int, outFile string) {
	g := geometry2D.WireDomain(lambda, segments)
	tm, err := geometry2D.Triangulate(g)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	tm.ClassifyRegions(g)
	var nScatterer, nBackground int
	for _, group := range tm.Groups {
		if group == geometry2D.ScattererGroup {
			nScatterer++
		} else {
			nBackground++
		}
	}
	bb := geometry2D.NewBoundingBox(tm.Points)
	fmt.Printf("nodes = %d, triangles = %d (scatterer %d, background %d)\n",
		len(tm.Points), len(tm.Tris), nScatterer, nBackground)
	fmt.Printf("bounds = [%8.4f, %8.4f] x [%8.4f, %8.4f]\n",
		bb.XMin[0], bb.XMax[0], bb.XMin[1], bb.XMax[1])

	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err = tm.WriteMSH2(f); err != nil {
		panic(err)
	}
	fmt.Printf("wrote %s\n", outFile)
}
