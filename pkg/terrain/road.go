package terrain

// BuildRoad derives the road overlay from a chunk's top ridge vertices: a
// thin quad-strip ribbon floating heightOffset above the ridge, plus the
// centerline polyline halfway through the ribbon's thickness. The ribbon is
// purely a function of the ridge it overlays, so it inherits the ridge's
// seam continuity and needs none of its own.
func BuildRoad(top []Vec2, heightOffset, thickness float64) Road {
	n := len(top)
	if n < 2 {
		return Road{}
	}

	verts := make([]Vec2, 2*n)
	uvs := make([]Vec2, 2*n)
	center := make([]Vec2, n)
	for i, p := range top {
		u := float64(i) / float64(n-1)
		verts[i] = Vec2{X: p.X, Y: p.Y + heightOffset}
		verts[n+i] = Vec2{X: p.X, Y: p.Y + heightOffset - thickness}
		uvs[i] = Vec2{X: u, Y: 1}
		uvs[n+i] = Vec2{X: u, Y: 0}
		center[i] = Vec2{X: p.X, Y: p.Y + heightOffset - thickness/2}
	}

	// Same quad-strip triangulation as the terrain mesh.
	tris := make([]int, 0, 6*(n-1))
	for i := 0; i < n-1; i++ {
		tl, tr := i, i+1
		bl, br := n+i, n+i+1
		tris = append(tris, tl, bl, br, tl, br, tr)
	}

	return Road{Vertices: verts, Triangles: tris, UVs: uvs, Centerline: center}
}
