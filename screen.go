package main

import (
	"github.com/plane8/plane8/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	// Screen is the render target the framebuffer is rasterized into.
	Screen *sdl.Texture

	// palette maps the two plane bits to a color. Index 0 is the
	// background, 1 the first plane, 2 the second, 3 both.
	palette = [4]sdl.Color{
		{R: 143, G: 145, B: 133, A: 255},
		{R: 17, G: 29, B: 43, A: 255},
		{R: 95, G: 112, B: 120, A: 255},
		{R: 0, G: 0, B: 0, A: 255},
	}
)

// InitScreen creates the render target for the video memory. It is sized for
// the largest resolution; smaller modes use a sub-rectangle.
func InitScreen() {
	var err error

	Screen, err = Renderer.CreateTexture(sdl.PIXELFORMAT_RGB888, sdl.TEXTUREACCESS_TARGET, 128, 64)
	if err != nil {
		panic(err)
	}
}

// Refresh rasterizes the framebuffer and presents the frame.
func Refresh() {
	bg := palette[0]
	Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	Renderer.Clear()

	RefreshScreen()
	CopyScreen()

	Renderer.Present()
	VM.SetDraw(false)
}

// RefreshScreen redraws the render target from both bit-planes.
func RefreshScreen() {
	if err := Renderer.SetRenderTarget(Screen); err != nil {
		panic(err)
	}

	bg := palette[0]
	Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	Renderer.Clear()

	vmem := VM.VMem()
	w, h := vmem.RenderWidth(), vmem.RenderHeight()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := vmem.Index(x, y)

			color := 0
			if vmem.GetIndex(chip8.PlaneFirst, idx) {
				color |= 1
			}
			if vmem.GetIndex(chip8.PlaneSecond, idx) {
				color |= 2
			}
			if color == 0 {
				continue
			}

			c := palette[color]
			Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
			Renderer.DrawPoint(int32(x), int32(y))
		}
	}

	Renderer.SetRenderTarget(nil)
}

// CopyScreen stretches the active part of the render target over the window.
func CopyScreen() {
	vmem := VM.VMem()

	src := sdl.Rect{
		W: int32(vmem.RenderWidth()),
		H: int32(vmem.RenderHeight()),
	}

	ww, wh := Window.GetSize()
	Renderer.Copy(Screen, &src, &sdl.Rect{W: ww, H: wh})
}
