package geometry2D

import (
	"fmt"
	"io"
)

// WriteMSH2 exports the mesh in Gmsh 2.2 ASCII format. Element lines carry
// two tags, physical group and geometric entity; both are set to the
// triangle's physical group. Untagged meshes export as background.
func (tm *TriMesh) WriteMSH2(w io.Writer) (err error) {
	if _, err = fmt.Fprintf(w, "$MeshFormat\n2.2 0 8\n$EndMeshFormat\n"); err != nil {
		return
	}
	if _, err = fmt.Fprintf(w, "$Nodes\n%d\n", len(tm.Points)); err != nil {
		return
	}
	for i, p := range tm.Points {
		// Node lines: id x y z, 1-based ids
		if _, err = fmt.Fprintf(w, "%d %f %f %f\n", i+1, p[0], p[1], 0.0); err != nil {
			return
		}
	}
	if _, err = fmt.Fprintf(w, "$EndNodes\n$Elements\n%d\n", len(tm.Tris)); err != nil {
		return
	}
	for i, tri := range tm.Tris {
		group := BackgroundGroup
		if len(tm.Groups) == len(tm.Tris) {
			group = tm.Groups[i]
		}
		// Element type 2 = 3-node triangle
		if _, err = fmt.Fprintf(w, "%d 2 2 %d %d %d %d %d\n",
			i+1, group, group, tri[0]+1, tri[1]+1, tri[2]+1); err != nil {
			return
		}
	}
	_, err = fmt.Fprintf(w, "$EndElements\n")
	return
}
