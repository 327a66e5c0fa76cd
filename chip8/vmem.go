package chip8

import "fmt"

// VideoMode selects the logical resolution the machine exposes to programs.
type VideoMode int

const (
	// VideoModeDefault is the original 64x32 CHIP-8 resolution.
	VideoModeDefault VideoMode = iota

	// VideoModeHiRes is the legacy 64x64 two-page mode entered by the
	// 0x1260 boot sequence.
	VideoModeHiRes

	// VideoModeExtended is the 128x64 SCHIP resolution.
	VideoModeExtended
)

// Plane identifies the XO-CHIP bit-planes a video operation targets.
type Plane int

const (
	PlaneNone Plane = iota
	PlaneFirst
	PlaneSecond
	PlaneBoth
)

// Physical buffer dimensions. Both planes are always allocated at the
// largest supported resolution.
const (
	widthDefault    = 64
	heightDefault   = 32
	widthHiRes      = 64
	heightHiRes     = 64
	widthExtended   = 128
	heightExtended  = 64
	planeBufferSize = widthExtended * heightExtended
)

// VideoMemory holds the two binary bit-planes making up the framebuffer.
//
// In VideoModeDefault every logical pixel occupies a 2x2 block of buffer
// cells, so the buffer always works at extended (128x64) granularity. This
// keeps the SCHIP scroll opcodes correct in low resolution, where a one-cell
// scroll moves the image by half a screen pixel.
type VideoMemory struct {
	planes [2][]bool
	mode   VideoMode
	plane  Plane
}

// NewVideoMemory returns cleared video memory in default mode with the
// first plane selected.
func NewVideoMemory() *VideoMemory {
	return &VideoMemory{
		planes: [2][]bool{
			make([]bool, planeBufferSize),
			make([]bool, planeBufferSize),
		},
		mode:  VideoModeDefault,
		plane: PlaneFirst,
	}
}

// Mode returns the active video mode.
func (v *VideoMemory) Mode() VideoMode {
	return v.mode
}

// SetMode switches the logical resolution.
func (v *VideoMemory) SetMode(mode VideoMode) {
	v.mode = mode
}

// CurrentPlane returns the plane(s) write operations currently target.
func (v *VideoMemory) CurrentPlane() Plane {
	return v.plane
}

// SelectPlane chooses the plane(s) targeted by clear, set, draw and scroll
// operations.
func (v *VideoMemory) SelectPlane(plane Plane) {
	v.plane = plane
}

// Width returns the logical width exposed to programs.
func (v *VideoMemory) Width() int {
	if v.mode == VideoModeExtended {
		return widthExtended
	}
	return widthDefault
}

// Height returns the logical height exposed to programs.
func (v *VideoMemory) Height() int {
	if v.mode == VideoModeDefault {
		return heightDefault
	}
	return heightExtended
}

// RenderWidth returns the physical buffer width. It differs from Width in
// default mode, where rendering happens at extended size to support the
// SCHIP half-pixel scrolls.
func (v *VideoMemory) RenderWidth() int {
	if v.mode == VideoModeHiRes {
		return widthHiRes
	}
	return widthExtended
}

// RenderHeight returns the physical buffer height.
func (v *VideoMemory) RenderHeight() int {
	return heightExtended
}

// Index converts render coordinates to a buffer index.
func (v *VideoMemory) Index(x, y int) int {
	return y*v.RenderWidth() + x
}

// Get reads the logical pixel (x, y) from one plane. Reading PlaneNone is
// always false; reading PlaneBoth is a caller bug.
func (v *VideoMemory) Get(plane Plane, x, y int) bool {
	if v.mode == VideoModeDefault {
		x, y = x*2, y*2
	}
	return v.GetIndex(plane, v.Index(x, y))
}

// GetIndex reads a buffer cell directly in render coordinates.
func (v *VideoMemory) GetIndex(plane Plane, index int) bool {
	if index < 0 || index >= v.RenderWidth()*v.RenderHeight() {
		panic(fmt.Sprintf("video memory index %d out of bounds", index))
	}
	switch plane {
	case PlaneNone:
		return false
	case PlaneFirst:
		return v.planes[0][index]
	case PlaneSecond:
		return v.planes[1][index]
	default:
		panic("cannot read both planes at once")
	}
}

// Set writes the logical pixel (x, y) on the given plane(s). In default
// mode the write covers the full 2x2 cell block backing the pixel.
func (v *VideoMemory) Set(plane Plane, x, y int, value bool) {
	if v.mode == VideoModeDefault {
		x, y = x*2, y*2
		v.setIndex(plane, v.Index(x, y), value)
		v.setIndex(plane, v.Index(x+1, y), value)
		v.setIndex(plane, v.Index(x, y+1), value)
		v.setIndex(plane, v.Index(x+1, y+1), value)
		return
	}
	v.setIndex(plane, v.Index(x, y), value)
}

func (v *VideoMemory) setIndex(plane Plane, index int, value bool) {
	if index < 0 || index >= v.RenderWidth()*v.RenderHeight() {
		panic(fmt.Sprintf("video memory index %d out of bounds", index))
	}
	switch plane {
	case PlaneNone:
	case PlaneFirst:
		v.planes[0][index] = value
	case PlaneSecond:
		v.planes[1][index] = value
	case PlaneBoth:
		v.planes[0][index] = value
		v.planes[1][index] = value
	}
}

// selected returns the buffer indices of the planes the current plane
// selection covers, in drawing order.
func (v *VideoMemory) selected() []int {
	switch v.plane {
	case PlaneFirst:
		return []int{0}
	case PlaneSecond:
		return []int{1}
	case PlaneBoth:
		return []int{0, 1}
	default:
		return nil
	}
}

// Clear turns off every cell of the selected plane(s).
func (v *VideoMemory) Clear() {
	v.SetAll(false)
}

// SetAll writes value to every cell of the selected plane(s).
func (v *VideoMemory) SetAll(value bool) {
	for _, p := range v.selected() {
		buf := v.planes[p]
		for i := range buf {
			buf[i] = value
		}
	}
}

// ScrollDown shifts the selected plane(s) down by n render rows, filling the
// vacated rows with false. In default mode one row is half a screen pixel.
func (v *VideoMemory) ScrollDown(n int) {
	rw, rh := v.RenderWidth(), v.RenderHeight()
	for _, p := range v.selected() {
		buf := v.planes[p]
		for y := rh - 1; y >= 0; y-- {
			for x := 0; x < rw; x++ {
				val := false
				if y >= n {
					val = buf[(y-n)*rw+x]
				}
				buf[y*rw+x] = val
			}
		}
	}
}

// ScrollUp shifts the selected plane(s) up by n render rows (XO-CHIP).
func (v *VideoMemory) ScrollUp(n int) {
	rw, rh := v.RenderWidth(), v.RenderHeight()
	for _, p := range v.selected() {
		buf := v.planes[p]
		for y := 0; y < rh; y++ {
			for x := 0; x < rw; x++ {
				val := false
				if y+n < rh {
					val = buf[(y+n)*rw+x]
				}
				buf[y*rw+x] = val
			}
		}
	}
}

// ScrollLeft shifts the selected plane(s) left by the fixed SCHIP step of
// four render columns.
func (v *VideoMemory) ScrollLeft() {
	rw, rh := v.RenderWidth(), v.RenderHeight()
	for _, p := range v.selected() {
		buf := v.planes[p]
		for y := 0; y < rh; y++ {
			for x := 0; x < rw; x++ {
				val := false
				if x+4 < rw {
					val = buf[y*rw+x+4]
				}
				buf[y*rw+x] = val
			}
		}
	}
}

// ScrollRight shifts the selected plane(s) right by four render columns.
func (v *VideoMemory) ScrollRight() {
	rw, rh := v.RenderWidth(), v.RenderHeight()
	for _, p := range v.selected() {
		buf := v.planes[p]
		for y := 0; y < rh; y++ {
			for x := rw - 1; x >= 0; x-- {
				val := false
				if x >= 4 {
					val = buf[y*rw+x-4]
				}
				buf[y*rw+x] = val
			}
		}
	}
}
