package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws everything as point sprites: road tiles, kerbs, posts, the
// car and the pad overlay. One streaming VBO shared by the solid and glow
// programs.
type Renderer struct {
	spriteProg uint32
	glowProg   uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUCamera     int32
	spUZoom       int32
	spUResolution int32

	glowUCamera     int32
	glowUZoom       int32
	glowUResolution int32
}

func NewRenderer() (*Renderer, error) {
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{spriteProg: spriteProg, glowProg: glowProg}

	// Streaming VBO: 8 floats per sprite (x, y, size, r, g, b, a, rotation).
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = vao
	r.spriteVBO = vbo

	gl.UseProgram(spriteProg)
	r.spUCamera = gl.GetUniformLocation(spriteProg, gl.Str("uCamera\x00"))
	r.spUZoom = gl.GetUniformLocation(spriteProg, gl.Str("uZoom\x00"))
	r.spUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))

	gl.UseProgram(glowProg)
	r.glowUCamera = gl.GetUniformLocation(glowProg, gl.Str("uCamera\x00"))
	r.glowUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))
	r.glowUResolution = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.spriteVBO != 0 {
		gl.DeleteBuffers(1, &r.spriteVBO)
	}
	if r.spriteVAO != 0 {
		gl.DeleteVertexArrays(1, &r.spriteVAO)
	}
	for _, id := range []uint32{r.spriteProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawSprites renders world-space point sprites through the camera.
// buf format: [x, y, size, r, g, b, a, rotation] * N.
func (r *Renderer) DrawSprites(buf []float32, cam Camera, fbW, fbH int) {
	r.draw(r.spriteProg, buf, float32(cam.X), float32(cam.Y), float32(cam.Zoom), fbW, fbH, false)
}

// DrawScreenSprites renders sprites whose positions and sizes are already in
// framebuffer pixels (the pad overlay). Camera centred, zoom 1 makes the
// shader's world transform the identity.
func (r *Renderer) DrawScreenSprites(buf []float32, fbW, fbH int) {
	r.draw(r.spriteProg, buf, float32(fbW)/2, float32(fbH)/2, 1, fbW, fbH, false)
}

// DrawScreenGlow is DrawScreenSprites with the additive radial program.
func (r *Renderer) DrawScreenGlow(buf []float32, fbW, fbH int) {
	r.draw(r.glowProg, buf, float32(fbW)/2, float32(fbH)/2, 1, fbW, fbH, true)
}

func (r *Renderer) draw(prog uint32, buf []float32, camX, camY, zoom float32, fbW, fbH int, additive bool) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(prog)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	if prog == r.glowProg {
		gl.Uniform2f(r.glowUCamera, camX, camY)
		gl.Uniform1f(r.glowUZoom, zoom)
		gl.Uniform2f(r.glowUResolution, float32(fbW), float32(fbH))
	} else {
		gl.Uniform2f(r.spUCamera, camX, camY)
		gl.Uniform1f(r.spUZoom, zoom)
		gl.Uniform2f(r.spUResolution, float32(fbW), float32(fbH))
	}

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
