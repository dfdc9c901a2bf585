package terrain

import "fmt"

// BuildMesh zips an ordered ridge-height buffer into a watertight quad
// strip: columns vertices along the top ridge at (i*spacing, topHeights[i])
// and columns along a flat bottom at -bottomDepth. It also returns the
// matching collision boundary as one closed, non-self-intersecting loop:
// top row left to right, then bottom row right to left.
func BuildMesh(topHeights []float64, spacing, bottomDepth float64) (Mesh, []Vec2, error) {
	columns := len(topHeights)
	if columns < 2 {
		return Mesh{}, nil, fmt.Errorf("%w: %d columns", ErrDegenerateMesh, columns)
	}

	verts := make([]Vec2, 2*columns)
	uvs := make([]Vec2, 2*columns)
	for i, h := range topHeights {
		x := float64(i) * spacing
		u := float64(i) / float64(columns-1)
		verts[i] = Vec2{X: x, Y: h}
		verts[columns+i] = Vec2{X: x, Y: -bottomDepth}
		uvs[i] = Vec2{X: u, Y: 1}
		uvs[columns+i] = Vec2{X: u, Y: 0}
	}

	// Two triangles per quad, both sharing the top-left to bottom-right
	// diagonal, wound counter-clockwise so the top surface faces outward.
	tris := make([]int, 0, 6*(columns-1))
	for i := 0; i < columns-1; i++ {
		tl, tr := i, i+1
		bl, br := columns+i, columns+i+1
		tris = append(tris, tl, bl, br, tl, br, tr)
	}

	collider := make([]Vec2, 0, 2*columns)
	collider = append(collider, verts[:columns]...)
	for i := columns - 1; i >= 0; i-- {
		collider = append(collider, verts[columns+i])
	}

	return Mesh{Vertices: verts, Triangles: tris, UVs: uvs}, collider, nil
}
