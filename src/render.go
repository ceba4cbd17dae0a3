package main

import (
	"image"
	"math"

	gl "github.com/go-gl/gl/v2.1/gl"
	mgl "github.com/go-gl/mathgl/mgl32"
)

// The renderer is a collaborator, not part of the animation core: it takes
// camera, lights and positioned solids every frame and keeps no scene state
// of its own across frames.

var gfx *Renderer

type Camera struct {
	Eye   mgl.Vec3
	Focal mgl.Vec3
	Up    mgl.Vec3
	FOV   float32 // vertical, degrees
	Near  float32
	Far   float32
}

type Lighting struct {
	Direction  mgl.Vec3 // direction the light shines towards
	Diffuse    mgl.Vec3
	Ambient    mgl.Vec3
	Background mgl.Vec3
}

func (s *System) camera() Camera {
	return Camera{
		Eye:   vec3(s.cfg.Camera.Eye),
		Focal: vec3(s.cfg.Camera.Focal),
		Up:    vec3(s.cfg.Camera.Up),
		FOV:   s.cfg.Camera.FOV,
		Near:  s.cfg.Camera.Near,
		Far:   s.cfg.Camera.Far,
	}
}

func (s *System) lighting() Lighting {
	return Lighting{
		Direction:  vec3(s.cfg.Lighting.Direction),
		Diffuse:    vec3(s.cfg.Lighting.Diffuse),
		Ambient:    vec3(s.cfg.Lighting.Ambient),
		Background: vec3(s.cfg.Lighting.Background),
	}
}

type vtx struct {
	pos mgl.Vec3
	n   mgl.Vec3
}

type Renderer struct {
	sphere   []vtx
	cylinder []vtx
}

func (r *Renderer) Init() {
	chk(gl.Init())
	r.sphere = buildSphere(16, 24)
	r.cylinder = buildCylinder(24)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.NORMALIZE)
	gl.ShadeModel(gl.SMOOTH)
}

func (r *Renderer) Close() {}

func (r *Renderer) BeginFrame(bg mgl.Vec3) {
	gl.ClearColor(bg.X(), bg.Y(), bg.Z(), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *Renderer) EndFrame() {}

// buildSphere tessellates a unit sphere as a triangle list; position doubles
// as normal.
func buildSphere(stacks, slices int) []vtx {
	at := func(i, j int) mgl.Vec3 {
		theta := math.Pi * float64(i) / float64(stacks)
		phi := 2 * math.Pi * float64(j) / float64(slices)
		return mgl.Vec3{
			float32(math.Sin(theta) * math.Cos(phi)),
			float32(math.Cos(theta)),
			float32(math.Sin(theta) * math.Sin(phi)),
		}
	}
	var out []vtx
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a, b, c, d := at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1)
			out = append(out,
				vtx{a, a}, vtx{d, d}, vtx{b, b},
				vtx{b, b}, vtx{d, d}, vtx{c, c})
		}
	}
	return out
}

// buildCylinder tessellates the side wall of a unit-radius cylinder spanning
// y in [-0.5, 0.5]. Capsules close it with sphere caps, so no end discs.
func buildCylinder(slices int) []vtx {
	at := func(j int, y float32) (mgl.Vec3, mgl.Vec3) {
		phi := 2 * math.Pi * float64(j) / float64(slices)
		x, z := float32(math.Cos(phi)), float32(math.Sin(phi))
		return mgl.Vec3{x, y, z}, mgl.Vec3{x, 0, z}
	}
	var out []vtx
	for j := 0; j < slices; j++ {
		ap, an := at(j, 0.5)
		bp, bn := at(j, -0.5)
		cp, cn := at(j+1, -0.5)
		dp, dn := at(j+1, 0.5)
		out = append(out,
			vtx{ap, an}, vtx{dp, dn}, vtx{bp, bn},
			vtx{bp, bn}, vtx{dp, dn}, vtx{cp, cn})
	}
	return out
}

func drawMesh(mesh []vtx) {
	gl.Begin(gl.TRIANGLES)
	for _, v := range mesh {
		gl.Normal3f(v.n.X(), v.n.Y(), v.n.Z())
		gl.Vertex3f(v.pos.X(), v.pos.Y(), v.pos.Z())
	}
	gl.End()
}

func setMaterial(m Material) {
	diff := [4]float32{m.Color[0], m.Color[1], m.Color[2], 1}
	spec := [4]float32{0.12, 0.12, 0.12, 1}
	if m.Metallic {
		spec = [4]float32{0.85, 0.85, 0.85, 1}
	}
	shininess := (1 - ClampF(m.Roughness, 0, 1)) * 120
	gl.Materialfv(gl.FRONT_AND_BACK, gl.AMBIENT_AND_DIFFUSE, &diff[0])
	gl.Materialfv(gl.FRONT_AND_BACK, gl.SPECULAR, &spec[0])
	gl.Materialf(gl.FRONT_AND_BACK, gl.SHININESS, shininess)
}

// viewportAspect guards against a minimized window: a 0-height framebuffer
// would otherwise feed an infinite aspect into the projection.
func viewportAspect(w, h int32) float32 {
	if w <= 0 || h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}

// DrawScene renders the posed solids with one directional light plus an
// ambient term. All state is supplied per call.
func (r *Renderer) DrawScene(cam Camera, li Lighting, solids []PlacedSolid, w, h int32) {
	gl.Viewport(0, 0, w, h)

	gl.MatrixMode(gl.PROJECTION)
	proj := mgl.Perspective(mgl.DegToRad(cam.FOV), viewportAspect(w, h), cam.Near, cam.Far)
	gl.LoadMatrixf(&proj[0])

	gl.MatrixMode(gl.MODELVIEW)
	view := mgl.LookAtV(cam.Eye, cam.Focal, cam.Up)
	gl.LoadMatrixf(&view[0])

	gl.Enable(gl.LIGHTING)
	gl.Enable(gl.LIGHT0)
	// GL wants the direction towards the light, w=0 for directional.
	toLight := li.Direction.Mul(-1).Normalize()
	pos := [4]float32{toLight.X(), toLight.Y(), toLight.Z(), 0}
	diff := [4]float32{li.Diffuse.X(), li.Diffuse.Y(), li.Diffuse.Z(), 1}
	amb := [4]float32{li.Ambient.X(), li.Ambient.Y(), li.Ambient.Z(), 1}
	gl.Lightfv(gl.LIGHT0, gl.POSITION, &pos[0])
	gl.Lightfv(gl.LIGHT0, gl.DIFFUSE, &diff[0])
	gl.Lightfv(gl.LIGHT0, gl.AMBIENT, &amb[0])

	for _, s := range solids {
		gl.PushMatrix()
		m := s.trans
		gl.MultMatrixf(&m[0])
		setMaterial(s.mat)
		switch s.shape {
		case ShapeSphere:
			gl.PushMatrix()
			gl.Scalef(s.radius, s.radius, s.radius)
			drawMesh(r.sphere)
			gl.PopMatrix()
		case ShapeCapsule:
			gl.PushMatrix()
			gl.Scalef(s.radius, s.length, s.radius)
			drawMesh(r.cylinder)
			gl.PopMatrix()
			for _, end := range []float32{s.length / 2, -s.length / 2} {
				gl.PushMatrix()
				gl.Translatef(0, end, 0)
				gl.Scalef(s.radius, s.radius, s.radius)
				drawMesh(r.sphere)
				gl.PopMatrix()
			}
		}
		gl.PopMatrix()
	}
	gl.Disable(gl.LIGHT0)
	gl.Disable(gl.LIGHTING)
}

// UploadRGBA creates a texture from an overlay image.
func (r *Renderer) UploadRGBA(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	b := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func (r *Renderer) DeleteTexture(tex uint32) {
	if tex != 0 {
		gl.DeleteTextures(1, &tex)
	}
}

// DrawOverlay blends a window-sized texture over the finished 3D frame.
func (r *Renderer) DrawOverlay(tex uint32, w, h int32) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(w), float64(h), 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.TEXTURE_2D)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Color4f(1, 1, 1, 1)
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(0, 0)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(float32(w), 0)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(float32(w), float32(h))
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(0, float32(h))
	gl.End()
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.TEXTURE_2D)
	gl.Enable(gl.DEPTH_TEST)
}

// CaptureRGBA reads back the framebuffer for screenshots.
func (r *Renderer) CaptureRGBA(w, h int32) *image.RGBA {
	buf := make([]uint8, w*h*4)
	gl.ReadPixels(0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(buf))
	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	stride := int(w) * 4
	for y := 0; y < int(h); y++ {
		copy(img.Pix[y*stride:(y+1)*stride], buf[(int(h)-1-y)*stride:])
	}
	return img
}
