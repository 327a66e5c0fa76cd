// Package chip8 implements a CHIP-8 family virtual machine covering the
// classic CHIP-8, SCHIP and XO-CHIP instruction sets. The package owns all
// emulated machine state; pacing, rendering and audio output are left to the
// caller, which drives the machine through Tick and UpdateTimers and reads
// the video and audio buffers between ticks.
package chip8

// MemorySize is the XO-CHIP addressable memory range.
const MemorySize = 0x10000

const (
	programStart = 0x200
	stackDepth   = 16
)

// CPU is a CHIP-8 virtual machine. It advances by exactly one instruction
// per Tick unless it is blocked waiting for a key.
type CPU struct {
	mem  [MemorySize]byte
	vmem *VideoMemory

	stack [stackDepth]uint16
	sp    int
	keys  [16]bool

	pc uint16
	v  [16]byte
	i  uint16
	dt byte
	st byte

	// SCHIP persistent flag registers, independent of V.
	rpl [8]byte

	// Current and prefetched instruction. nextOpcode always holds the
	// two bytes at the current PC; it is refreshed after every state
	// change that can move PC.
	opcode         uint16
	opcodeDesc     string
	nextOpcode     uint16
	nextOpcodeDesc string

	draw    bool
	keyWait bool
	keyReg  int

	// Last XO-CHIP pattern buffer loaded via F002. Unset until first use.
	audioBuf    [16]byte
	hasAudioBuf bool

	quirks Quirks
}

// New returns a zeroed machine with both built-in fonts loaded and the
// program counter at 0x200. No program is loaded; call LoadROM or
// LoadBootROM before ticking.
func New() *CPU {
	c := &CPU{
		vmem:   NewVideoMemory(),
		pc:     programStart,
		quirks: DefaultQuirks(),
	}

	copy(c.mem[fontSmallBase:], fontSmall[:])
	copy(c.mem[fontBigBase:], fontBig[:])

	c.prefetch()

	return c
}

// LoadROM copies a program into memory at 0x200 and resets the program
// counter and video mode. If the program does not fit, the bootstrap ROM is
// loaded instead and ErrROMTooLarge is returned.
func (c *CPU) LoadROM(prog []byte) error {
	if len(prog) > len(c.mem)-programStart {
		c.LoadBootROM()
		return ErrROMTooLarge
	}

	copy(c.mem[programStart:], prog)
	c.pc = programStart
	c.vmem.SetMode(VideoModeDefault)
	c.prefetch()

	return nil
}

// LoadBootROM loads the embedded boot program. It is used as the initial
// boot screen and as the fallback whenever ROM loading or execution fails.
func (c *CPU) LoadBootROM() {
	copy(c.mem[programStart:], bootROM)
	c.pc = programStart
	c.vmem.SetMode(VideoModeDefault)
	c.prefetch()
}

// Tick replaces the keypad state and advances the machine. While waiting
// for a key the tick latches the lowest pressed key into the wait register
// and executes nothing; otherwise exactly one instruction runs.
func (c *CPU) Tick(keys [16]bool) error {
	c.keys = keys

	if c.keyWait {
		for i, pressed := range keys {
			if pressed {
				c.keyWait = false
				c.v[c.keyReg] = byte(i)
				break
			}
		}
		return nil
	}

	return c.emulateCycle()
}

// UpdateTimers decrements the delay and sound timers if they are running.
// The caller must invoke it at 60 Hz, independent of the CPU clock rate.
func (c *CPU) UpdateTimers() {
	if c.dt > 0 {
		c.dt--
	}
	if c.st > 0 {
		c.st--
	}
}

// emulateCycle executes the prefetched instruction and refreshes the
// prefetch at the new program counter.
func (c *CPU) emulateCycle() error {
	c.opcode, c.opcodeDesc = c.nextOpcode, c.nextOpcodeDesc

	if int(c.pc)+1 >= len(c.mem) {
		c.LoadBootROM()
		return ErrProgramCounterOverflow
	}

	c.execute(decode(c.opcode))

	c.prefetch()

	return nil
}

// execute runs a decoded instruction against the machine state.
func (c *CPU) execute(d decoded) {
	switch d.inst {
	case instCls:
		c.cls()
	case instRet:
		c.ret()
	case instScrollRight:
		c.scrollRight()
	case instScrollLeft:
		c.scrollLeft()
	case instExit:
		c.exit()
	case instLow:
		c.low()
	case instHigh:
		c.high()
	case instClsHiRes:
		c.clsHiRes()
	case instScrollDown:
		c.scrollDown(d.n)
	case instScrollUp:
		c.scrollUp(d.n)
	case instSys:
		c.sys()
	case instJumpHiRes:
		c.jumpHiRes(d.nnn)
	case instJump:
		c.jump(d.nnn)
	case instCall:
		c.call(d.nnn)
	case instSkipIf:
		c.skipIf(d.x, d.nn)
	case instSkipIfNot:
		c.skipIfNot(d.x, d.nn)
	case instSkipIfXY:
		c.skipIfXY(d.x, d.y)
	case instStoreRange:
		c.storeRange(d.x, d.y)
	case instLoadRange:
		c.loadRange(d.x, d.y)
	case instLoadX:
		c.loadX(d.x, d.nn)
	case instAddX:
		c.addX(d.x, d.nn)
	case instLoadXY:
		c.loadXY(d.x, d.y)
	case instOr:
		c.or(d.x, d.y)
	case instAnd:
		c.and(d.x, d.y)
	case instXor:
		c.xor(d.x, d.y)
	case instAddXY:
		c.addXY(d.x, d.y)
	case instSubXY:
		c.subXY(d.x, d.y)
	case instShr:
		c.shr(d.x, d.y)
	case instSubYX:
		c.subYX(d.x, d.y)
	case instShl:
		c.shl(d.x, d.y)
	case instSkipIfNotXY:
		c.skipIfNotXY(d.x, d.y)
	case instLoadI:
		c.loadI(d.nnn)
	case instJumpV0:
		c.jumpV0(d.nnn)
	case instRnd:
		c.rnd(d.x, d.nn)
	case instDraw:
		c.drw(d.x, d.y, d.n)
	case instSkipIfPressed:
		c.skipIfPressed(d.x)
	case instSkipIfNotPressed:
		c.skipIfNotPressed(d.x)
	case instLoadILong:
		c.loadILong()
	case instSelectPlane:
		c.selectPlane(d.x)
	case instLoadAudio:
		c.loadAudio()
	case instLoadXDT:
		c.loadXDT(d.x)
	case instLoadXK:
		c.loadXK(d.x)
	case instLoadDTX:
		c.loadDTX(d.x)
	case instLoadSTX:
		c.loadSTX(d.x)
	case instAddIX:
		c.addIX(d.x)
	case instLoadF:
		c.loadF(d.x)
	case instLoadHF:
		c.loadHF(d.x)
	case instLoadB:
		c.loadB(d.x)
	case instSaveRegs:
		c.saveRegs(d.x)
	case instLoadRegs:
		c.loadRegs(d.x)
	case instSaveFlags:
		c.saveFlags(d.x)
	case instLoadFlags:
		c.loadFlags(d.x)
	default:
		c.nop()
	}
}

// prefetch reads the instruction at the current PC into nextOpcode. An
// out-of-range PC leaves the prefetch zeroed; the next cycle reports the
// overflow.
func (c *CPU) prefetch() {
	if int(c.pc)+1 >= len(c.mem) {
		c.nextOpcode = 0
		c.nextOpcodeDesc = ""
		return
	}

	c.nextOpcode = c.readWord(c.pc)
	c.nextOpcodeDesc = describe(c.nextOpcode, c.readWord(c.pc+2))
}

// readWord reads a big-endian 16-bit word; the address wraps at the memory
// bound.
func (c *CPU) readWord(addr uint16) uint16 {
	return uint16(c.mem[addr])<<8 | uint16(c.mem[addr+1])
}

// readMem and writeMem access memory through an int address, wrapping
// modulo the 64 KiB space.
func (c *CPU) readMem(addr int) byte {
	return c.mem[addr&0xFFFF]
}

func (c *CPU) writeMem(addr int, b byte) {
	c.mem[addr&0xFFFF] = b
}

// VMem exposes the framebuffer for rendering. Callers must not mutate CPU
// state concurrently with a Tick.
func (c *CPU) VMem() *VideoMemory {
	return c.vmem
}

// AudioBuffer returns the last XO-CHIP pattern buffer loaded via F002 and
// whether one has been loaded at all.
func (c *CPU) AudioBuffer() ([16]byte, bool) {
	return c.audioBuf, c.hasAudioBuf
}

// SoundActive reports whether the sound timer is running.
func (c *CPU) SoundActive() bool {
	return c.st > 0
}

// Draw reports whether the framebuffer changed since the flag was cleared.
func (c *CPU) Draw() bool {
	return c.draw
}

// SetDraw clears (or sets) the draw flag; the renderer resets it after
// presenting a frame.
func (c *CPU) SetDraw(draw bool) {
	c.draw = draw
}

// PC returns the program counter.
func (c *CPU) PC() uint16 { return c.pc }

// I returns the index register.
func (c *CPU) I() uint16 { return c.i }

// V returns the general-purpose registers.
func (c *CPU) V() [16]byte { return c.v }

// Stack returns the return-address stack.
func (c *CPU) Stack() [stackDepth]uint16 { return c.stack }

// SP returns the stack pointer.
func (c *CPU) SP() int { return c.sp }

// DT returns the delay timer.
func (c *CPU) DT() byte { return c.dt }

// ST returns the sound timer.
func (c *CPU) ST() byte { return c.st }

// Opcode returns the instruction executed by the last cycle.
func (c *CPU) Opcode() uint16 { return c.opcode }

// OpcodeDescription returns a readable form of the last instruction.
func (c *CPU) OpcodeDescription() string { return c.opcodeDesc }

// NextOpcode returns the prefetched instruction at the current PC.
func (c *CPU) NextOpcode() uint16 { return c.nextOpcode }

// NextOpcodeDescription returns a readable form of the next instruction.
func (c *CPU) NextOpcodeDescription() string { return c.nextOpcodeDesc }
