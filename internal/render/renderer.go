// Package render rasterises the rotated torus point cloud into a frame
// buffer with a depth test and single-light shading.
package render

import (
	"donut/internal/core"
	"donut/internal/linalg"
	"donut/internal/scene"
)

// Samples is a read-only point cloud with paired unit normals. *mesh.Mesh
// implements it.
type Samples interface {
	Len() int
	Position(i int) linalg.Vec3
	Normal(i int) linalg.Vec3
}

// Stats counts what happened to the samples of one frame.
type Stats struct {
	Samples int
	// Culled samples were behind the eye.
	Culled int
	// Clipped samples projected outside the viewport.
	Clipped int
	// Occluded samples lost the depth test.
	Occluded int
	Drawn    int
}

// Renderer splats samples into a FrameBuffer.
type Renderer struct {
	mesh  Samples
	scene *scene.Scene
}

// New constructs a Renderer for the samples as seen in the scene.
func New(m Samples, s *scene.Scene) *Renderer {
	return &Renderer{mesh: m, scene: s}
}

// Mesh returns the rendered samples.
func (r *Renderer) Mesh() Samples { return r.mesh }

// Scene returns the scene the renderer projects into.
func (r *Renderer) Scene() *scene.Scene { return r.scene }

// Render rotates every sample by rot and draws it into fb. The buffer is not
// cleared first.
//
// Eye position, screen offset and the depth comparison go together: the eye
// is at EyeZ looking towards +z, a sample is visible when it lies beyond the
// eye, and a smaller z wins a cell.
func (r *Renderer) Render(fb *core.FrameBuffer, rot linalg.Mat3) Stats {
	vp := r.scene.Viewport
	light := r.scene.Light
	eyeZ := vp.EyeZ()

	st := Stats{Samples: r.mesh.Len()}
	for i := 0; i < r.mesh.Len(); i++ {
		p := rot.MulVec(r.mesh.Position(i))

		relZ := p.Z - eyeZ
		if !(relZ > 0) {
			st.Culled++
			continue
		}

		scale := vp.EyeDistance / relZ
		idx := fb.Index(int(p.X*scale), int(p.Y*scale))
		if idx < 0 {
			st.Clipped++
			continue
		}

		n := rot.MulVec(r.mesh.Normal(i))
		if fb.Plot(idx, p.Z, Glyph(Shade(light, n))) {
			st.Drawn++
		} else {
			st.Occluded++
		}
	}
	return st
}
