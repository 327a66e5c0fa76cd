package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/vmihailenco/msgpack/v5"
)

func TestSaveStateRoundTrip(t *testing.T) {
	c := New()
	assert.NoError(t, c.LoadROM([]byte{
		0x00, 0xFF, // extended mode
		0xA0, 0x50, // I = 0x050
		0x63, 0xAB, // V3 = 0xAB
		0xF0, 0x02, // audio pattern from I
		0x22, 0x00, // push a return address
	}))
	for i := 0; i < 5; i++ {
		assert.NoError(t, c.Tick(noKeys))
	}
	c.dt, c.st = 10, 20
	c.rpl[2] = 0x42
	c.vmem.Set(c.vmem.CurrentPlane(), 5, 5, true)
	c.prefetch()

	data, err := c.SaveState()
	assert.NoError(t, err)

	r, err := FromState(data)
	assert.NoError(t, err)

	assert.Equal(t, c.pc, r.pc)
	assert.Equal(t, c.sp, r.sp)
	assert.Equal(t, c.stack, r.stack)
	assert.Equal(t, c.v, r.v)
	assert.Equal(t, c.i, r.i)
	assert.Equal(t, c.dt, r.dt)
	assert.Equal(t, c.st, r.st)
	assert.Equal(t, c.rpl, r.rpl)
	assert.Equal(t, c.mem, r.mem)
	assert.Equal(t, c.quirks, r.quirks)
	assert.Equal(t, c.opcode, r.opcode)
	assert.Equal(t, c.nextOpcode, r.nextOpcode)

	assert.Equal(t, VideoModeExtended, r.vmem.Mode())
	assert.True(t, r.vmem.Get(PlaneFirst, 5, 5))

	buf, ok := r.AudioBuffer()
	assert.True(t, ok)
	assert.Equal(t, c.audioBuf, buf)

	// both machines keep running identically
	for i := 0; i < 3; i++ {
		assert.NoError(t, c.Tick(noKeys))
		assert.NoError(t, r.Tick(noKeys))
		assert.Equal(t, c.pc, r.pc)
		assert.Equal(t, c.v, r.v)
	}
}

func TestSaveStateNoAudioBuffer(t *testing.T) {
	c := New()
	c.LoadBootROM()

	data, err := c.SaveState()
	assert.NoError(t, err)

	r, err := FromState(data)
	assert.NoError(t, err)

	_, ok := r.AudioBuffer()
	assert.False(t, ok)
}

func TestSaveStateKeyWait(t *testing.T) {
	c := New()
	assert.NoError(t, c.LoadROM([]byte{0xF3, 0x0A}))
	assert.NoError(t, c.Tick(noKeys))

	data, err := c.SaveState()
	assert.NoError(t, err)

	r, err := FromState(data)
	assert.NoError(t, err)
	assert.True(t, r.keyWait)
	assert.Equal(t, 3, r.keyReg)

	keys := noKeys
	keys[9] = true
	assert.NoError(t, r.Tick(keys))
	assert.Equal(t, byte(9), r.v[3])
}

func TestFromStateRejectsGarbage(t *testing.T) {
	_, err := FromState([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	assert.True(t, err != nil)

	_, err = FromState(nil)
	assert.True(t, err != nil)
}

func TestFromStateRejectsVersionMismatch(t *testing.T) {
	c := New()
	c.LoadBootROM()

	data, err := c.SaveState()
	assert.NoError(t, err)

	var s snapshot
	assert.NoError(t, msgpack.Unmarshal(data, &s))
	s.Version = stateVersion + 1

	data, err = msgpack.Marshal(&s)
	assert.NoError(t, err)

	_, err = FromState(data)
	assert.Error(t, err, "load state: unsupported snapshot version 2")
}

func TestFromStateRejectsOutOfRangeValues(t *testing.T) {
	c := New()
	c.LoadBootROM()

	data, err := c.SaveState()
	assert.NoError(t, err)

	corrupt := func(mutate func(s *snapshot)) error {
		var s snapshot
		assert.NoError(t, msgpack.Unmarshal(data, &s))
		mutate(&s)

		d, err := msgpack.Marshal(&s)
		assert.NoError(t, err)

		_, err = FromState(d)
		return err
	}

	err = corrupt(func(s *snapshot) { s.SP = stackDepth + 4 })
	assert.Error(t, err, "load state: malformed snapshot")

	err = corrupt(func(s *snapshot) { s.SP = -1 })
	assert.Error(t, err, "load state: malformed snapshot")

	err = corrupt(func(s *snapshot) { s.KeyReg = 16 })
	assert.Error(t, err, "load state: malformed snapshot")

	err = corrupt(func(s *snapshot) { s.VideoMode = VideoModeExtended + 1 })
	assert.Error(t, err, "load state: malformed snapshot")

	err = corrupt(func(s *snapshot) { s.Plane = PlaneBoth + 1 })
	assert.Error(t, err, "load state: malformed snapshot")
}

func TestFromStateRestoresLongLoadDescription(t *testing.T) {
	c := New()
	assert.NoError(t, c.LoadROM([]byte{0xF0, 0x00, 0xAB, 0xCD}))
	assert.NoError(t, c.Tick(noKeys))
	assert.Equal(t, "LD     I, #ABCD", c.OpcodeDescription())

	data, err := c.SaveState()
	assert.NoError(t, err)

	r, err := FromState(data)
	assert.NoError(t, err)
	assert.Equal(t, "LD     I, #ABCD", r.OpcodeDescription())
}

func TestFromStateRejectsTruncated(t *testing.T) {
	c := New()
	c.LoadBootROM()

	data, err := c.SaveState()
	assert.NoError(t, err)

	var s snapshot
	assert.NoError(t, msgpack.Unmarshal(data, &s))
	s.Mem = s.Mem[:100]

	data, err = msgpack.Marshal(&s)
	assert.NoError(t, err)

	_, err = FromState(data)
	assert.Error(t, err, "load state: malformed snapshot")
}
