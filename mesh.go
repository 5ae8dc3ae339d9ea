package okpicker

// Vertex is a mesh vertex: a position plus a premultiplied display color.
type Vertex struct {
	Pos   Pos
	Color DisplayRGBA
}

// Mesh is a triangle list with per-vertex colors, in the form the host
// framework's colored-mesh primitive accepts. The rasterizer interpolates
// vertex colors across each triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// ColoredVertex appends a vertex; indices refer to vertices in append
// order.
func (m *Mesh) ColoredVertex(p Pos, c DisplayRGBA) {
	m.Vertices = append(m.Vertices, Vertex{Pos: p, Color: c})
}

// AddTriangle appends one triangle by vertex indices.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// AddRect appends an axis-aligned rectangle as two triangles of a single
// color.
func (m *Mesh) AddRect(r Rect, c DisplayRGBA) {
	i := uint32(len(m.Vertices))
	m.ColoredVertex(Pos{r.Left(), r.Top()}, c)
	m.ColoredVertex(Pos{r.Right(), r.Top()}, c)
	m.ColoredVertex(Pos{r.Right(), r.Bottom()}, c)
	m.ColoredVertex(Pos{r.Left(), r.Bottom()}, c)
	m.AddTriangle(i, i+1, i+2)
	m.AddTriangle(i, i+2, i+3)
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
