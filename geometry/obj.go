package geometry

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes m as a Wavefront OBJ object named name
// Faces reference position, uv and normal by the same 1-based index
func WriteOBJ(w io.Writer, name string, m *Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "o %s\n", name)
	for _, p := range m.positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
	}
	for _, uv := range m.uvs {
		fmt.Fprintf(bw, "vt %g %g\n", uv[0], uv[1])
	}
	for _, n := range m.normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
	}
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		a, b, c = a+1, b+1, c+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}
