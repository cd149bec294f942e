package graphics

import (
	"glscene/internal/logging"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// RenderTarget is an off-screen framebuffer with an RGB colour texture and a
// combined depth/stencil renderbuffer. The three handles are created together
// and released together.
type RenderTarget struct {
	fbo     uint32
	texture uint32
	rbo     uint32

	width, height int32
	status        uint32

	log *logging.Logger
}

// NewRenderTarget allocates the framebuffer and its attachments. An incomplete
// framebuffer is logged at ERROR and reported by Complete; the target is still
// returned.
func NewRenderTarget(width, height int, logger *logging.Logger) *RenderTarget {
	rt := &RenderTarget{
		width:  int32(width),
		height: int32(height),
		log:    logger,
	}

	gl.GenFramebuffers(1, &rt.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.fbo)

	gl.GenTextures(1, &rt.texture)
	gl.GenRenderbuffers(1, &rt.rbo)
	rt.allocate()

	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, rt.texture, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, rt.rbo)

	rt.status = gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	if rt.status != gl.FRAMEBUFFER_COMPLETE {
		rt.errorf("Framebuffer isn't complete (status 0x%x).", rt.status)
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	if rt.log != nil {
		rt.log.Infof("Framebuffer created (%dx%d).", width, height)
	}
	return rt
}

// allocate (re)specifies attachment storage at the current size. Handles are kept.
func (rt *RenderTarget) allocate() {
	gl.BindTexture(gl.TEXTURE_2D, rt.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, rt.width, rt.height, 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindRenderbuffer(gl.RENDERBUFFER, rt.rbo)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, rt.width, rt.height)
}

// Resize re-specifies the storage of both attachments. Non-positive sizes, as
// reported for a minimised window, are ignored.
func (rt *RenderTarget) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if int32(width) == rt.width && int32(height) == rt.height {
		return
	}
	rt.width, rt.height = int32(width), int32(height)

	rt.allocate()

	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.fbo)
	rt.status = gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	if rt.status != gl.FRAMEBUFFER_COMPLETE {
		rt.errorf("Framebuffer isn't complete after resize (status 0x%x).", rt.status)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	if rt.log != nil {
		rt.log.Debugf("Framebuffer rescaled to %dx%d.", width, height)
	}
}

// Bind makes this target the current draw destination and sets the viewport to its size.
func (rt *RenderTarget) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.fbo)
	gl.Viewport(0, 0, rt.width, rt.height)
}

// Unbind restores the window-provided framebuffer.
func (rt *RenderTarget) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// ColorHandle returns the colour attachment texture.
func (rt *RenderTarget) ColorHandle() uint32 { return rt.texture }

// Handles returns the framebuffer, colour texture and renderbuffer handles.
func (rt *RenderTarget) Handles() (fbo, texture, rbo uint32) {
	return rt.fbo, rt.texture, rt.rbo
}

// Size returns the current storage dimensions.
func (rt *RenderTarget) Size() (width, height int) {
	return int(rt.width), int(rt.height)
}

// Complete reports whether the last completeness check passed.
func (rt *RenderTarget) Complete() bool {
	return rt.status == gl.FRAMEBUFFER_COMPLETE
}

// Delete releases all three objects. It is safe to call more than once.
func (rt *RenderTarget) Delete() {
	if rt.fbo == 0 && rt.texture == 0 && rt.rbo == 0 {
		return
	}
	gl.DeleteFramebuffers(1, &rt.fbo)
	gl.DeleteTextures(1, &rt.texture)
	gl.DeleteRenderbuffers(1, &rt.rbo)
	rt.fbo, rt.texture, rt.rbo = 0, 0, 0
}

func (rt *RenderTarget) errorf(format string, args ...any) {
	if rt.log != nil {
		rt.log.Errorf(format, args...)
	}
}
