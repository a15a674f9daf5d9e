package geometry2D

import (
	"fmt"
	"math"

	"github.com/pradeep-pyro/triangle"
)

// Scattering-domain geometry for the wire demos: a square background region
// of side 10*lambda centered at the origin, with two circular wire
// cross-sections of radius lambda/2 at (0, +/-1.1*lambda). The wire
// boundaries are mesh constraints, not holes - the wire interiors are meshed
// too, so the mesh carries both material regions.

const (
	ScattererGroup  = 1
	BackgroundGroup = 2
)

type Circle struct {
	Center [2]float64
	Radius float64
}

func (c Circle) Contains(x, y float64) bool {
	dx, dy := x-c.Center[0], y-c.Center[1]
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// PSLG is a planar straight-line graph: the constraint input to the mesh
// generator.
type PSLG struct {
	Points   [][2]float64
	Segments [][2]int32
	Wires    []Circle
}

// WireDomain builds the PSLG for the two-wire scattering domain at vacuum
// wavelength lambda, discretizing each wire boundary into the given number of
// chords.
func WireDomain(lambda float64, segments int) (g PSLG) {
	var (
		half   = 5 * lambda
		radius = lambda / 2
		offset = 1.1 * lambda
	)
	g.Points = append(g.Points,
		[2]float64{-half, -half},
		[2]float64{half, -half},
		[2]float64{half, half},
		[2]float64{-half, half},
	)
	for i := int32(0); i < 4; i++ {
		g.Segments = append(g.Segments, [2]int32{i, (i + 1) % 4})
	}
	for _, yc := range []float64{-offset, offset} {
		c := Circle{Center: [2]float64{0, yc}, Radius: radius}
		g.Wires = append(g.Wires, c)
		base := int32(len(g.Points))
		for k := 0; k < segments; k++ {
			theta := 2 * math.Pi * float64(k) / float64(segments)
			g.Points = append(g.Points, [2]float64{
				c.Center[0] + radius*math.Cos(theta),
				c.Center[1] + radius*math.Sin(theta),
			})
		}
		for k := int32(0); k < int32(segments); k++ {
			g.Segments = append(g.Segments, [2]int32{base + k, base + (k+1)%int32(segments)})
		}
	}
	return
}

// TriMesh is the generated triangulation. Groups holds the physical group of
// each triangle after ClassifyRegions.
type TriMesh struct {
	Points [][2]float64
	Tris   [][3]int32
	Groups []int
}

// Triangulate hands the PSLG to the external mesh generator (Shewchuk's
// Triangle) for a conforming Delaunay triangulation. Steiner points added by
// the generator appear in the returned point set.
func Triangulate(g PSLG) (tm *TriMesh, err error) {
	if len(g.Points) < 3 {
		err = fmt.Errorf("need at least 3 points to triangulate, have %d", len(g.Points))
		return
	}
	verts, faces := triangle.ConformingDelaunay(g.Points, g.Segments, [][2]float64{})
	tm = &TriMesh{
		Points: verts,
		Tris:   faces,
	}
	return
}

// ClassifyRegions assigns each triangle to the scatterer or background group
// by testing its centroid against the wire circles.
func (tm *TriMesh) ClassifyRegions(g PSLG) {
	tm.Groups = make([]int, len(tm.Tris))
	for i, tri := range tm.Tris {
		var cx, cy float64
		for _, v := range tri {
			cx += tm.Points[v][0]
			cy += tm.Points[v][1]
		}
		cx /= 3
		cy /= 3
		tm.Groups[i] = BackgroundGroup
		for _, w := range g.Wires {
			if w.Contains(cx, cy) {
				tm.Groups[i] = ScattererGroup
				break
			}
		}
	}
}

type BoundingBox struct {
	XMin [2]float64
	XMax [2]float64
}

func NewBoundingBox(points [][2]float64) (box *BoundingBox) {
	if len(points) == 0 {
		return nil
	}
	box = new(BoundingBox)
	box.XMin = points[0]
	box.XMax = points[0]
	for _, p := range points {
		for i := 0; i < 2; i++ {
			if p[i] < box.XMin[i] {
				box.XMin[i] = p[i]
			}
			if p[i] > box.XMax[i] {
				box.XMax[i] = p[i]
			}
		}
	}
	return box
}

func (bb *BoundingBox) Centroid() (centroid [2]float64) {
	return [2]float64{
		0.5 * (bb.XMax[0] + bb.XMin[0]),
		0.5 * (bb.XMax[1] + bb.XMin[1]),
	}
}
