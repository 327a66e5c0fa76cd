package chip8

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
)

var noKeys [16]bool

func TestInitialState(t *testing.T) {
	c := New()

	assert.Equal(t, MemorySize, len(c.mem))
	assert.Equal(t, uint16(0x200), c.pc)
	assert.Equal(t, uint16(0), c.i)
	assert.Equal(t, 0, c.sp)
	assert.Equal(t, byte(0), c.dt)
	assert.Equal(t, byte(0), c.st)
	assert.Equal(t, [16]byte{}, c.v)
	assert.Equal(t, [stackDepth]uint16{}, c.stack)

	assert.Equal(t, fontSmall[:], c.mem[fontSmallBase:fontSmallBase+len(fontSmall)])
	assert.Equal(t, fontBig[:], c.mem[fontBigBase:fontBigBase+len(fontBig)])

	assert.Equal(t, DefaultQuirks(), c.Quirks())
	assert.Equal(t, VideoModeDefault, c.vmem.Mode())

	_, ok := c.AudioBuffer()
	assert.False(t, ok)
}

func TestLoadROM(t *testing.T) {
	c := New()
	c.pc = 0x123

	prog := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 0xA, 0xB, 0xC, 0xD, 0xE, 0xF, 0, 0xF}
	assert.NoError(t, c.LoadROM(prog))

	assert.Equal(t, prog, c.mem[0x200:0x200+len(prog)])
	assert.Equal(t, uint16(0x200), c.pc)
	assert.Equal(t, uint16(0x0102), c.nextOpcode)
}

func TestLoadROMResetsVideoMode(t *testing.T) {
	c := New()
	c.vmem.SetMode(VideoModeExtended)

	assert.NoError(t, c.LoadROM([]byte{0x00, 0xE0}))
	assert.Equal(t, VideoModeDefault, c.vmem.Mode())
}

func TestLoadROMTooLarge(t *testing.T) {
	c := New()

	err := c.LoadROM(make([]byte, MemorySize-0x200+1))
	assert.True(t, errors.Is(err, ErrROMTooLarge))

	// the bootstrap ROM must be in place as a fallback
	assert.Equal(t, bootROM, c.mem[0x200:0x200+len(bootROM)])
	assert.Equal(t, uint16(0x200), c.pc)
}

func TestLoadBootROM(t *testing.T) {
	c := New()
	c.LoadBootROM()

	assert.Equal(t, bootROM, c.mem[0x200:0x200+len(bootROM)])
	assert.Equal(t, uint16(0x00E0), c.nextOpcode)
}

func TestTickKeyWait(t *testing.T) {
	c := New()
	assert.NoError(t, c.LoadROM([]byte{0xF5, 0x0A, 0x00, 0x00}))

	assert.NoError(t, c.Tick(noKeys))
	assert.True(t, c.keyWait)
	assert.Equal(t, 5, c.keyReg)

	// no key pressed, nothing executes
	pc := c.pc
	assert.NoError(t, c.Tick(noKeys))
	assert.True(t, c.keyWait)
	assert.Equal(t, pc, c.pc)

	// the lowest pressed key is latched; the latching tick executes
	// no instruction either
	keys := noKeys
	keys[0xB] = true
	keys[0x4] = true
	assert.NoError(t, c.Tick(keys))
	assert.False(t, c.keyWait)
	assert.Equal(t, byte(0x4), c.v[5])
	assert.Equal(t, pc, c.pc)

	assert.NoError(t, c.Tick(noKeys))
	assert.Equal(t, pc+2, c.pc)
}

func TestUpdateTimers(t *testing.T) {
	c := New()
	c.dt = 2
	c.st = 1

	c.UpdateTimers()
	assert.Equal(t, byte(1), c.dt)
	assert.Equal(t, byte(0), c.st)
	assert.False(t, c.SoundActive())

	c.UpdateTimers()
	assert.Equal(t, byte(0), c.dt)
	assert.Equal(t, byte(0), c.st)
}

func TestSoundActive(t *testing.T) {
	c := New()
	assert.False(t, c.SoundActive())

	c.st = 3
	assert.True(t, c.SoundActive())
}

func TestProgramCounterOverflow(t *testing.T) {
	c := New()
	assert.NoError(t, c.LoadROM([]byte{0x00, 0x00}))
	c.pc = 0xFFFF
	c.prefetch()

	err := c.Tick(noKeys)
	assert.True(t, errors.Is(err, ErrProgramCounterOverflow))

	// the machine recovered into the bootstrap ROM
	assert.Equal(t, uint16(0x200), c.pc)
	assert.Equal(t, bootROM, c.mem[0x200:0x200+len(bootROM)])
	assert.NoError(t, c.Tick(noKeys))
}

func TestPrefetchTracksPC(t *testing.T) {
	c := New()
	assert.NoError(t, c.LoadROM([]byte{0x12, 0x04, 0x00, 0x00, 0x6A, 0xBC}))

	assert.Equal(t, uint16(0x1204), c.nextOpcode)
	assert.NoError(t, c.Tick(noKeys))

	// after the jump the prefetch reflects the new PC
	assert.Equal(t, uint16(0x1204), c.opcode)
	assert.Equal(t, uint16(0x6ABC), c.nextOpcode)
}

func TestOpcodeDescriptions(t *testing.T) {
	c := New()
	assert.NoError(t, c.LoadROM([]byte{0x6A, 0xBC, 0x00, 0xE0}))

	assert.Equal(t, "LD     VA, #BC", c.NextOpcodeDescription())
	assert.NoError(t, c.Tick(noKeys))
	assert.Equal(t, "LD     VA, #BC", c.OpcodeDescription())
	assert.Equal(t, "CLS", c.NextOpcodeDescription())
}
