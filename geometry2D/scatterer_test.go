package geometry2D

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireDomain(t *testing.T) {
	var (
		lambda   = 0.4
		segments = 32
		g        = WireDomain(lambda, segments)
	)
	// 4 rectangle corners + one ring of chords per wire
	assert.Equal(t, 4+2*segments, len(g.Points))
	assert.Equal(t, 4+2*segments, len(g.Segments))
	require.Len(t, g.Wires, 2)
	assert.Equal(t, lambda/2, g.Wires[0].Radius)

	// every ring point sits on its circle
	for _, w := range g.Wires {
		assert.InDelta(t, 1.1*lambda, math.Abs(w.Center[1]), 1.e-12)
	}
	for _, p := range g.Points[4 : 4+segments] {
		dx := p[0] - g.Wires[0].Center[0]
		dy := p[1] - g.Wires[0].Center[1]
		assert.InDelta(t, lambda/2, math.Hypot(dx, dy), 1.e-12)
	}

	bb := NewBoundingBox(g.Points)
	assert.InDelta(t, -5*lambda, bb.XMin[0], 1.e-12)
	assert.InDelta(t, 5*lambda, bb.XMax[0], 1.e-12)
	assert.InDelta(t, -5*lambda, bb.XMin[1], 1.e-12)
	assert.InDelta(t, 5*lambda, bb.XMax[1], 1.e-12)
	c := bb.Centroid()
	assert.InDelta(t, 0, c[0], 1.e-12)
	assert.InDelta(t, 0, c[1], 1.e-12)
}

func TestTriangulateAndClassify(t *testing.T) {
	g := WireDomain(0.4, 32)
	tm, err := Triangulate(g)
	require.NoError(t, err)
	require.NotNil(t, tm)
	assert.GreaterOrEqual(t, len(tm.Points), len(g.Points))
	assert.True(t, len(tm.Tris) > 0)
	for _, tri := range tm.Tris {
		for _, v := range tri {
			assert.True(t, v >= 0 && int(v) < len(tm.Points))
		}
	}

	tm.ClassifyRegions(g)
	require.Len(t, tm.Groups, len(tm.Tris))
	var nScatterer, nBackground int
	for _, group := range tm.Groups {
		switch group {
		case ScattererGroup:
			nScatterer++
		case BackgroundGroup:
			nBackground++
		}
	}
	fmt.Printf("triangles: %d scatterer, %d background\n", nScatterer, nBackground)
	// the wire interiors are meshed, not holes
	assert.True(t, nScatterer > 0)
	assert.True(t, nBackground > nScatterer)
}

func TestTriangulateRejectsDegenerateInput(t *testing.T) {
	_, err := Triangulate(PSLG{Points: [][2]float64{{0, 0}, {1, 0}}})
	assert.Error(t, err)
}

func TestWriteMSH2(t *testing.T) {
	tm := &TriMesh{
		Points: [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		Tris:   [][3]int32{{0, 1, 2}, {1, 3, 2}},
		Groups: []int{ScattererGroup, BackgroundGroup},
	}
	var buf bytes.Buffer
	require.NoError(t, tm.WriteMSH2(&buf))
	out := buf.String()
	for _, section := range []string{"$MeshFormat", "$EndMeshFormat", "$Nodes", "$EndNodes", "$Elements", "$EndElements"} {
		assert.True(t, strings.Contains(out, section+"\n"), section)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// 3 format lines + 2 node-section delimiters + count + 4 nodes
	//   + 2 element-section delimiters + count + 2 elements
	assert.Equal(t, 3+3+4+3+2, len(lines))
	assert.Equal(t, "2.2 0 8", lines[1])
	// element line: id type ntags physical geometric 1-based node ids
	assert.Equal(t, "1 2 2 1 1 1 2 3", lines[12])
	assert.Equal(t, "2 2 2 2 2 2 4 3", lines[13])
}

func TestCircleContains(t *testing.T) {
	c := Circle{Center: [2]float64{0, 1}, Radius: 0.5}
	assert.True(t, c.Contains(0, 1))
	assert.True(t, c.Contains(0.3, 1.3))
	assert.False(t, c.Contains(0.5, 1.5))
}
