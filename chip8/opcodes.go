package chip8

import "math/rand"

// Every handler leaves PC on the next instruction to execute. Unrecognized
// opcodes fall through to nop so unsupported extensions degrade gracefully.

// nop skips an unrecognized instruction.
func (c *CPU) nop() {
	c.pc += 2
}

// skipSize returns the byte length of the instruction at PC+2, so taken
// skips step over the 4-byte XO-CHIP F000 form correctly.
func (c *CPU) skipSize() uint16 {
	if c.readWord(c.pc+2) == 0xF000 {
		return 4
	}
	return 2
}

// writeVF stores an ALU result and its flag. The quirk controls which write
// wins when the destination register is VF itself.
func (c *CPU) writeVF(reg int, value, vf byte) {
	if c.quirks.VFOrder {
		c.v[reg] = value
		c.v[0xF] = vf
	} else {
		c.v[0xF] = vf
		c.v[reg] = value
	}
}

// 00CN - SCHIP - scroll display n lines down.
func (c *CPU) scrollDown(n byte) {
	c.vmem.ScrollDown(int(n))
	c.pc += 2
}

// 00DN - XO-CHIP - scroll display n lines up.
func (c *CPU) scrollUp(n byte) {
	c.vmem.ScrollUp(int(n))
	c.pc += 2
}

// 00E0 - clear the selected plane(s).
func (c *CPU) cls() {
	c.vmem.Clear()
	c.draw = true
	c.pc += 2
}

// 00EE - return from subroutine.
func (c *CPU) ret() {
	c.sp--
	c.pc = c.stack[c.sp] + 2
}

// 00FB - SCHIP - scroll display 4 pixels right.
func (c *CPU) scrollRight() {
	c.vmem.ScrollRight()
	c.pc += 2
}

// 00FC - SCHIP - scroll display 4 pixels left.
func (c *CPU) scrollLeft() {
	c.vmem.ScrollLeft()
	c.pc += 2
}

// 00FD - SCHIP - exit. Installs an endless loop at 0x200 instead of
// terminating the host process.
func (c *CPU) exit() {
	c.mem[programStart] = 0x12
	c.mem[programStart+1] = 0x00
	c.pc = programStart
}

// 00FE - SCHIP - disable extended screen mode.
func (c *CPU) low() {
	c.vmem.SetMode(VideoModeDefault)
	c.pc += 2
}

// 00FF - SCHIP - enable extended screen mode.
func (c *CPU) high() {
	c.vmem.SetMode(VideoModeExtended)
	c.pc += 2
}

// 0230 - legacy two-page clear. Only meaningful in HiRes mode; otherwise it
// is an ordinary SYS no-op.
func (c *CPU) clsHiRes() {
	if c.vmem.Mode() == VideoModeHiRes {
		c.vmem.Clear()
		c.draw = true
		c.pc += 2
	} else {
		c.sys()
	}
}

// 0NNN - legacy SYS call, ignored.
func (c *CPU) sys() {
	c.pc += 2
}

// 1NNN - jump to address.
func (c *CPU) jump(nnn uint16) {
	c.pc = nnn
}

// 1260 - legacy HiRes entry. Only as the very first instruction it enables
// the 64x64 mode and jumps to 0x2C0; anywhere else it is a plain jump.
func (c *CPU) jumpHiRes(nnn uint16) {
	if c.pc == programStart {
		c.vmem.SetMode(VideoModeHiRes)
		c.pc = 0x2C0
	} else {
		c.jump(nnn)
	}
}

// 2NNN - call subroutine.
func (c *CPU) call(nnn uint16) {
	c.stack[c.sp] = c.pc
	c.sp++
	c.pc = nnn
}

// 3XNN - skip next instruction if Vx == nn.
func (c *CPU) skipIf(x int, nn byte) {
	if c.v[x] == nn {
		c.pc += 2 + c.skipSize()
	} else {
		c.pc += 2
	}
}

// 4XNN - skip next instruction if Vx != nn.
func (c *CPU) skipIfNot(x int, nn byte) {
	if c.v[x] != nn {
		c.pc += 2 + c.skipSize()
	} else {
		c.pc += 2
	}
}

// 5XY0 - skip next instruction if Vx == Vy.
func (c *CPU) skipIfXY(x, y int) {
	if c.v[x] == c.v[y] {
		c.pc += 2 + c.skipSize()
	} else {
		c.pc += 2
	}
}

// 5XY2 - XO-CHIP - store Vmin(x,y)..Vmax(x,y) to memory at I. I is not
// modified.
func (c *CPU) storeRange(x, y int) {
	lo, hi := x, y
	if lo > hi {
		lo, hi = hi, lo
	}
	for k := lo; k <= hi; k++ {
		c.writeMem(int(c.i)+k-lo, c.v[k])
	}
	c.pc += 2
}

// 5XY3 - XO-CHIP - load Vmin(x,y)..Vmax(x,y) from memory at I.
func (c *CPU) loadRange(x, y int) {
	lo, hi := x, y
	if lo > hi {
		lo, hi = hi, lo
	}
	for k := lo; k <= hi; k++ {
		c.v[k] = c.readMem(int(c.i) + k - lo)
	}
	c.pc += 2
}

// 6XNN - Vx = nn.
func (c *CPU) loadX(x int, nn byte) {
	c.v[x] = nn
	c.pc += 2
}

// 7XNN - Vx += nn, wrapping, no flag.
func (c *CPU) addX(x int, nn byte) {
	c.v[x] += nn
	c.pc += 2
}

// 8XY0 - Vx = Vy.
func (c *CPU) loadXY(x, y int) {
	c.v[x] = c.v[y]
	c.pc += 2
}

// 8XY1 - Vx |= Vy.
func (c *CPU) or(x, y int) {
	c.v[x] |= c.v[y]
	c.pc += 2
}

// 8XY2 - Vx &= Vy.
func (c *CPU) and(x, y int) {
	c.v[x] &= c.v[y]
	c.pc += 2
}

// 8XY3 - Vx ^= Vy.
func (c *CPU) xor(x, y int) {
	c.v[x] ^= c.v[y]
	c.pc += 2
}

// 8XY4 - Vx += Vy, VF = 1 on carry.
func (c *CPU) addXY(x, y int) {
	res := uint16(c.v[x]) + uint16(c.v[y])
	vf := byte(0)
	if res > 0xFF {
		vf = 1
	}
	c.writeVF(x, byte(res), vf)
	c.pc += 2
}

// 8XY5 - Vx -= Vy, VF = 0 on borrow.
func (c *CPU) subXY(x, y int) {
	vf := byte(0)
	if c.v[x] >= c.v[y] {
		vf = 1
	}
	c.writeVF(x, c.v[x]-c.v[y], vf)
	c.pc += 2
}

// 8XY6 - shift right one bit, VF = shifted-out bit. The shift quirk selects
// whether Vx or Vy is the source.
func (c *CPU) shr(x, y int) {
	src := c.v[y]
	if c.quirks.Shift {
		src = c.v[x]
	}
	c.writeVF(x, src>>1, src&1)
	c.pc += 2
}

// 8XY7 - Vx = Vy - Vx, VF = 0 on borrow.
func (c *CPU) subYX(x, y int) {
	vf := byte(0)
	if c.v[y] >= c.v[x] {
		vf = 1
	}
	c.writeVF(x, c.v[y]-c.v[x], vf)
	c.pc += 2
}

// 8XYE - shift left one bit, VF = shifted-out bit.
func (c *CPU) shl(x, y int) {
	src := c.v[y]
	if c.quirks.Shift {
		src = c.v[x]
	}
	c.writeVF(x, src<<1, src>>7)
	c.pc += 2
}

// 9XY0 - skip next instruction if Vx != Vy.
func (c *CPU) skipIfNotXY(x, y int) {
	if c.v[x] != c.v[y] {
		c.pc += 2 + c.skipSize()
	} else {
		c.pc += 2
	}
}

// ANNN - I = nnn.
func (c *CPU) loadI(nnn uint16) {
	c.i = nnn
	c.pc += 2
}

// BNNN - jump to nnn + V0, or nnn + Vx under the jump quirk.
func (c *CPU) jumpV0(nnn uint16) {
	if c.quirks.Jump {
		c.pc = nnn + uint16(c.v[nnn>>8&0xF])
	} else {
		c.pc = nnn + uint16(c.v[0])
	}
}

// CXNN - Vx = random byte & nn.
func (c *CPU) rnd(x int, nn byte) {
	c.v[x] = byte(rand.Intn(0x100)) & nn
	c.pc += 2
}

// DXYN - draw a sprite at (Vx, Vy) on the selected plane(s).
//
// DXY0 draws a 16-row sprite; it is 16 columns wide in extended mode or
// under the draw quirk, 8 otherwise. When both planes are selected, the
// second plane's sprite bytes follow the first's in memory; I itself is
// never modified. Columns always wrap; rows wrap or clip depending on the
// vertical wrapping quirk. VF reports a collision on either plane.
func (c *CPU) drw(x, y int, n byte) {
	px, py := int(c.v[x]), int(c.v[y])

	big := (c.vmem.Mode() == VideoModeExtended || c.quirks.Draw) && n == 0
	width := 8
	if big {
		width = 16
	}
	height := int(n)
	if n == 0 {
		height = 16
	}
	rowBytes := width / 8

	w, h := c.vmem.Width(), c.vmem.Height()
	collision := false
	addr := int(c.i)

	for _, plane := range []Plane{PlaneFirst, PlaneSecond} {
		if !c.planeSelected(plane) {
			continue
		}

		for row := 0; row < height; row++ {
			ty := py + row
			if ty >= h {
				if !c.quirks.VerticalWrapping {
					continue
				}
				ty %= h
			}

			bits := uint16(c.readMem(addr + row*rowBytes))
			if big {
				bits = bits<<8 | uint16(c.readMem(addr+row*rowBytes+1))
			}

			for col := 0; col < width; col++ {
				tx := (px + col) % w
				bit := bits>>(width-1-col)&1 == 1

				old := c.vmem.Get(plane, tx, ty)
				if bit && old {
					collision = true
				}
				c.vmem.Set(plane, tx, ty, old != bit)
			}
		}

		// the next selected plane reads the following sprite bytes
		addr += rowBytes * height
	}

	if collision {
		c.v[0xF] = 1
	} else {
		c.v[0xF] = 0
	}
	c.draw = true
	c.pc += 2
}

// planeSelected reports whether a draw targets the given plane.
func (c *CPU) planeSelected(plane Plane) bool {
	cur := c.vmem.CurrentPlane()
	return cur == plane || cur == PlaneBoth
}

// EX9E - skip next instruction if key Vx is pressed.
func (c *CPU) skipIfPressed(x int) {
	if c.keys[c.v[x]&0xF] {
		c.pc += 2 + c.skipSize()
	} else {
		c.pc += 2
	}
}

// EXA1 - skip next instruction if key Vx is not pressed.
func (c *CPU) skipIfNotPressed(x int) {
	if !c.keys[c.v[x]&0xF] {
		c.pc += 2 + c.skipSize()
	} else {
		c.pc += 2
	}
}

// F000 NNNN - XO-CHIP - load I with the following 16-bit word. The
// instruction is 4 bytes long.
func (c *CPU) loadILong() {
	c.i = c.readWord(c.pc + 2)
	c.pc += 4
}

// FX01 - XO-CHIP - select the drawing plane(s). Values above 3 are ignored.
func (c *CPU) selectPlane(x int) {
	switch x {
	case 0:
		c.vmem.SelectPlane(PlaneNone)
	case 1:
		c.vmem.SelectPlane(PlaneFirst)
	case 2:
		c.vmem.SelectPlane(PlaneSecond)
	case 3:
		c.vmem.SelectPlane(PlaneBoth)
	}
	c.pc += 2
}

// F002 - XO-CHIP - copy 16 bytes at I into the audio pattern buffer.
func (c *CPU) loadAudio() {
	for k := range c.audioBuf {
		c.audioBuf[k] = c.readMem(int(c.i) + k)
	}
	c.hasAudioBuf = true
	c.pc += 2
}

// FX07 - Vx = DT.
func (c *CPU) loadXDT(x int) {
	c.v[x] = c.dt
	c.pc += 2
}

// FX0A - block until a key is pressed, latching it into Vx.
func (c *CPU) loadXK(x int) {
	c.keyWait = true
	c.keyReg = x
	c.pc += 2
}

// FX15 - DT = Vx.
func (c *CPU) loadDTX(x int) {
	c.dt = c.v[x]
	c.pc += 2
}

// FX18 - ST = Vx.
func (c *CPU) loadSTX(x int) {
	c.st = c.v[x]
	c.pc += 2
}

// FX1E - I += Vx. Sets VF to 1 if I runs past the end of memory, an
// undocumented flag some SCHIP ROMs depend on.
func (c *CPU) addIX(x int) {
	sum := uint32(c.i) + uint32(c.v[x])
	if sum >= MemorySize {
		c.v[0xF] = 1
	}
	c.i = uint16(sum)
	c.pc += 2
}

// FX29 - I = address of the 4x5 font sprite for digit Vx.
func (c *CPU) loadF(x int) {
	c.i = fontSmallBase + uint16(c.v[x])*5
	c.pc += 2
}

// FX30 - SCHIP - I = address of the 8x10 font sprite for digit Vx.
func (c *CPU) loadHF(x int) {
	c.i = fontBigBase + uint16(c.v[x])*10
	c.pc += 2
}

// FX33 - store the BCD digits of Vx at I, I+1, I+2.
func (c *CPU) loadB(x int) {
	c.writeMem(int(c.i), c.v[x]/100)
	c.writeMem(int(c.i)+1, c.v[x]%100/10)
	c.writeMem(int(c.i)+2, c.v[x]%10)
	c.pc += 2
}

// FX55 - store V0..Vx to memory at I. The load/store quirk leaves I
// unchanged; without it I advances by x+1.
func (c *CPU) saveRegs(x int) {
	for k := 0; k <= x; k++ {
		c.writeMem(int(c.i)+k, c.v[k])
	}
	if !c.quirks.LoadStore {
		c.i += uint16(x) + 1
	}
	c.pc += 2
}

// FX65 - load V0..Vx from memory at I.
func (c *CPU) loadRegs(x int) {
	for k := 0; k <= x; k++ {
		c.v[k] = c.readMem(int(c.i) + k)
	}
	if !c.quirks.LoadStore {
		c.i += uint16(x) + 1
	}
	c.pc += 2
}

// FX75 - SCHIP - store V0..Vx in the RPL flags. x is clamped to 7.
func (c *CPU) saveFlags(x int) {
	if x > 7 {
		x = 7
	}
	copy(c.rpl[:x+1], c.v[:x+1])
	c.pc += 2
}

// FX85 - SCHIP - load V0..Vx from the RPL flags. x is clamped to 7.
func (c *CPU) loadFlags(x int) {
	if x > 7 {
		x = 7
	}
	copy(c.v[:x+1], c.rpl[:x+1])
	c.pc += 2
}
