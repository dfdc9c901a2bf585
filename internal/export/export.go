// Package export turns the live terrain window into host-consumable files:
// a JSON snapshot of every chunk's buffers and a Wavefront OBJ of the
// terrain and road meshes.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/QuangD300504/ridgeline/pkg/terrain"
)

// ChunkSnapshot captures one chunk's buffers with its world placement.
type ChunkSnapshot struct {
	GlobalIndex  int            `json:"global_index"`
	WorldOffsetX float64        `json:"world_offset_x"`
	TopHeights   []float64      `json:"top_heights"`
	Mesh         terrain.Mesh   `json:"mesh"`
	Collider     []terrain.Vec2 `json:"collider"`
	Road         terrain.Road   `json:"road"`
}

// WindowSnapshot is the full window, front (leftmost) to back.
type WindowSnapshot struct {
	Seed       int64           `json:"seed"`
	ChunkWidth float64         `json:"chunk_width"`
	Chunks     []ChunkSnapshot `json:"chunks"`
}

// Snapshot copies the window's current state. The copies are detached from
// the live chunks, so the snapshot stays valid across later Ticks.
func Snapshot(w *terrain.Window) WindowSnapshot {
	chunks := w.Chunks()
	snap := WindowSnapshot{
		Seed:       w.Config().Seed,
		ChunkWidth: w.ChunkWidth(),
		Chunks:     make([]ChunkSnapshot, 0, len(chunks)),
	}
	for _, c := range chunks {
		mesh := c.Mesh()
		road := c.Road()
		snap.Chunks = append(snap.Chunks, ChunkSnapshot{
			GlobalIndex:  c.GlobalIndex(),
			WorldOffsetX: c.WorldOffsetX(),
			TopHeights:   append([]float64(nil), c.TopHeights()...),
			Mesh: terrain.Mesh{
				Vertices:  append([]terrain.Vec2(nil), mesh.Vertices...),
				Triangles: append([]int(nil), mesh.Triangles...),
				UVs:       append([]terrain.Vec2(nil), mesh.UVs...),
			},
			Collider: append([]terrain.Vec2(nil), c.Collider()...),
			Road: terrain.Road{
				Vertices:   append([]terrain.Vec2(nil), road.Vertices...),
				Triangles:  append([]int(nil), road.Triangles...),
				UVs:        append([]terrain.Vec2(nil), road.UVs...),
				Centerline: append([]terrain.Vec2(nil), road.Centerline...),
			},
		})
	}
	return snap
}

// WriteJSON writes an indented JSON snapshot of the window.
func WriteJSON(out io.Writer, w *terrain.Window) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Snapshot(w)); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// WriteOBJ writes the window's terrain and road meshes as a Wavefront OBJ,
// one object per chunk, with vertices shifted into world space. Vertex and
// texture indices are 1-based and accumulate across objects per the format.
func WriteOBJ(out io.Writer, w *terrain.Window) error {
	bw := bufio.NewWriter(out)
	fmt.Fprintf(bw, "# ridgeline terrain export, seed %d\n", w.Config().Seed)

	offset := 1
	for i, c := range w.Chunks() {
		mesh := c.Mesh()
		offset = writeObject(bw, fmt.Sprintf("terrain_%d", i), mesh.Vertices, mesh.UVs, mesh.Triangles, c.WorldOffsetX(), offset)

		road := c.Road()
		offset = writeObject(bw, fmt.Sprintf("road_%d", i), road.Vertices, road.UVs, road.Triangles, c.WorldOffsetX(), offset)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush obj: %w", err)
	}
	return nil
}

func writeObject(bw *bufio.Writer, name string, verts, uvs []terrain.Vec2, tris []int, worldOffsetX float64, offset int) int {
	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range verts {
		fmt.Fprintf(bw, "v %g %g 0\n", v.X+worldOffsetX, v.Y)
	}
	for _, uv := range uvs {
		fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
	}
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := tris[i]+offset, tris[i+1]+offset, tris[i+2]+offset
		fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a, a, b, b, c, c)
	}
	return offset + len(verts)
}
