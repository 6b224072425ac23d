// Package mesh builds procedural triangle meshes used by the demo renderer.
package mesh

import (
	"math"

	"math3d-core/math3d"
)

// Triangle indexes three vertices and three texture coordinates.
type Triangle struct {
	VI [3]int // vertex indices
	TI [3]int // UV indices
}

// Mesh is an indexed triangle mesh in model space.
type Mesh struct {
	Name  string
	Verts []math3d.Vector3
	UVs   []math3d.Vector2
	Tris  []Triangle
}

var quadUVs = []math3d.Vector2{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
}

// Box returns an axis-aligned cube with edge length size, one UV quad per
// face.
func Box(size float64) *Mesh {
	h := size / 2
	verts := []math3d.Vector3{
		{X: -h, Y: -h, Z: -h},
		{X: h, Y: -h, Z: -h},
		{X: h, Y: h, Z: -h},
		{X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h},
		{X: h, Y: -h, Z: h},
		{X: h, Y: h, Z: h},
		{X: -h, Y: h, Z: h},
	}

	faces := [6][4]int{
		{0, 1, 2, 3}, // front
		{5, 4, 7, 6}, // back
		{4, 0, 3, 7}, // left
		{1, 5, 6, 2}, // right
		{3, 2, 6, 7}, // top
		{4, 5, 1, 0}, // bottom
	}

	m := &Mesh{Name: "box", Verts: verts, UVs: quadUVs}
	for _, f := range faces {
		m.Tris = append(m.Tris,
			Triangle{VI: [3]int{f[0], f[1], f[2]}, TI: [3]int{0, 1, 2}},
			Triangle{VI: [3]int{f[0], f[2], f[3]}, TI: [3]int{0, 2, 3}},
		)
	}
	return m
}

// UVSphere returns a latitude/longitude sphere. rings and segments are
// clamped to a sane minimum.
func UVSphere(radius float64, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	m := &Mesh{Name: "sphere"}
	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
		for s := 0; s <= segments; s++ {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)

			m.Verts = append(m.Verts, math3d.NewVector3(
				radius*sinPhi*cosTheta,
				radius*cosPhi,
				radius*sinPhi*sinTheta,
			))
			m.UVs = append(m.UVs, math3d.NewVector2(
				float64(s)/float64(segments),
				float64(r)/float64(rings),
			))
		}
	}

	stride := segments + 1
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := r*stride + s
			b := a + stride
			m.Tris = append(m.Tris,
				Triangle{VI: [3]int{a, b, a + 1}, TI: [3]int{a, b, a + 1}},
				Triangle{VI: [3]int{a + 1, b, b + 1}, TI: [3]int{a + 1, b, b + 1}},
			)
		}
	}
	return m
}

// Torus returns a torus with the given center-circle radius and tube radius.
func Torus(radius, tube float64, radialSegments, tubularSegments int) *Mesh {
	if radialSegments < 3 {
		radialSegments = 3
	}
	if tubularSegments < 3 {
		tubularSegments = 3
	}

	m := &Mesh{Name: "torus"}
	for r := 0; r <= radialSegments; r++ {
		u := 2 * math.Pi * float64(r) / float64(radialSegments)
		sinU, cosU := math.Sin(u), math.Cos(u)
		for t := 0; t <= tubularSegments; t++ {
			v := 2 * math.Pi * float64(t) / float64(tubularSegments)
			sinV, cosV := math.Sin(v), math.Cos(v)

			m.Verts = append(m.Verts, math3d.NewVector3(
				(radius+tube*cosV)*cosU,
				tube*sinV,
				(radius+tube*cosV)*sinU,
			))
			m.UVs = append(m.UVs, math3d.NewVector2(
				float64(r)/float64(radialSegments),
				float64(t)/float64(tubularSegments),
			))
		}
	}

	stride := tubularSegments + 1
	for r := 0; r < radialSegments; r++ {
		for t := 0; t < tubularSegments; t++ {
			a := r*stride + t
			b := a + stride
			m.Tris = append(m.Tris,
				Triangle{VI: [3]int{a, b, a + 1}, TI: [3]int{a, b, a + 1}},
				Triangle{VI: [3]int{a + 1, b, b + 1}, TI: [3]int{a + 1, b, b + 1}},
			)
		}
	}
	return m
}
