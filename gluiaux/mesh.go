package gluiaux

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glui"
)

// Triangle is a mesh face with counter clockwise winding seen from outside.
type Triangle [3]ms3.Vec

// Normal returns the unnormalized face normal.
func (t Triangle) Normal() ms3.Vec {
	return ms3.Cross(ms3.Sub(t[1], t[0]), ms3.Sub(t[2], t[0]))
}

// Centroid returns the mean of the vertices.
func (t Triangle) Centroid() ms3.Vec {
	return ms3.Scale(1./3, ms3.Add(ms3.Add(t[0], t[1]), t[2]))
}

// TriangleDrawer draws filled triangles. Implemented by [gldraw.GL].
type TriangleDrawer interface {
	Triangle(p1, p2, p3 ms3.Vec, c color.Color)
}

// Tetrahedron returns the four faces of a regular tetrahedron centered at the
// origin, wound outwards. size is the half length of its edges along X.
func Tetrahedron(size float32) []Triangle {
	s := size
	f := s / math32.Sqrt2
	p := [4]ms3.Vec{{X: -s, Z: -f}, {X: s, Z: -f}, {Y: -s, Z: f}, {Y: s, Z: f}}
	faces := [4][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	tris := make([]Triangle, len(faces))
	for i, face := range faces {
		t := Triangle{p[face[0]], p[face[1]], p[face[2]]}
		// Centered at the origin: outward normals point away from it.
		if ms3.Dot(t.Normal(), t.Centroid()) < 0 {
			t[1], t[2] = t[2], t[1]
		}
		tris[i] = t
	}
	return tris
}

// DrawShaded draws tris flat shaded by a point light. colors are cycled
// over the faces; a nil or empty slice draws white.
func DrawShaded(d TriangleDrawer, tris []Triangle, colors []color.Color, light ms3.Vec) {
	for i, t := range tris {
		var base color.Color = glui.White
		if len(colors) > 0 && colors[i%len(colors)] != nil {
			base = colors[i%len(colors)]
		}
		c := Lambert(base, t.Centroid(), t.Normal(), light, 0.15)
		d.Triangle(t[0], t[1], t[2], c)
	}
}

// DrawEdges outlines tris. The renderer transform must be the view's full transform.
func DrawEdges(r glui.Renderer, tris []Triangle, c color.Color) {
	for _, t := range tris {
		r.Line(t[0], t[1], c, 1)
		r.Line(t[1], t[2], c, 1)
		r.Line(t[2], t[0], c, 1)
	}
}

// ScaleMesh returns tris scaled about the origin.
func ScaleMesh(tris []Triangle, k float32) []Triangle {
	out := make([]Triangle, len(tris))
	for i, t := range tris {
		for j := range t {
			out[i][j] = ms3.Scale(k, t[j])
		}
	}
	return out
}
