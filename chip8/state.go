package chip8

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// stateVersion is bumped whenever the snapshot layout changes. FromState
// rejects snapshots written by an incompatible version.
const stateVersion = 1

// snapshot is the external save-state schema. It is decoupled from the CPU
// struct layout so states stay portable across releases.
type snapshot struct {
	Version int `msgpack:"version"`

	Mem   []byte   `msgpack:"mem"`
	Stack []uint16 `msgpack:"stack"`
	SP    int      `msgpack:"sp"`
	Keys  []bool   `msgpack:"keys"`

	PC uint16 `msgpack:"pc"`
	V  []byte `msgpack:"v"`
	I  uint16 `msgpack:"i"`
	DT byte   `msgpack:"dt"`
	ST byte   `msgpack:"st"`
	R  []byte `msgpack:"rpl"`

	Opcode  uint16 `msgpack:"opcode"`
	Draw    bool   `msgpack:"draw"`
	KeyWait bool   `msgpack:"key_wait"`
	KeyReg  int    `msgpack:"key_reg"`

	AudioBuffer []byte `msgpack:"audio_buffer"`

	Quirks Quirks `msgpack:"quirks"`

	VideoMode   VideoMode `msgpack:"video_mode"`
	Plane       Plane     `msgpack:"plane"`
	VideoPlanes [][]bool  `msgpack:"video_planes"`
}

// SaveState serializes the full machine state into an opaque blob.
func (c *CPU) SaveState() ([]byte, error) {
	s := snapshot{
		Version: stateVersion,
		Mem:     c.mem[:],
		Stack:   c.stack[:],
		SP:      c.sp,
		Keys:    c.keys[:],
		PC:      c.pc,
		V:       c.v[:],
		I:       c.i,
		DT:      c.dt,
		ST:      c.st,
		R:       c.rpl[:],
		Opcode:  c.opcode,
		Draw:    c.draw,
		KeyWait: c.keyWait,
		KeyReg:  c.keyReg,
		Quirks:  c.quirks,

		VideoMode:   c.vmem.mode,
		Plane:       c.vmem.plane,
		VideoPlanes: [][]bool{c.vmem.planes[0], c.vmem.planes[1]},
	}

	if c.hasAudioBuf {
		s.AudioBuffer = c.audioBuf[:]
	}

	data, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, errors.Wrap(err, "save state")
	}

	return data, nil
}

// FromState builds a machine from a snapshot previously produced by
// SaveState.
func FromState(data []byte) (*CPU, error) {
	var s snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "load state")
	}

	if s.Version != stateVersion {
		return nil, errors.Errorf("load state: unsupported snapshot version %d", s.Version)
	}
	if len(s.Mem) != MemorySize || len(s.V) != 16 || len(s.Stack) != stackDepth ||
		len(s.Keys) != 16 || len(s.R) != 8 || len(s.VideoPlanes) != 2 ||
		len(s.VideoPlanes[0]) != planeBufferSize || len(s.VideoPlanes[1]) != planeBufferSize {
		return nil, errors.New("load state: malformed snapshot")
	}
	if s.SP < 0 || s.SP > stackDepth || s.KeyReg < 0 || s.KeyReg >= 16 ||
		s.VideoMode < VideoModeDefault || s.VideoMode > VideoModeExtended ||
		s.Plane < PlaneNone || s.Plane > PlaneBoth {
		return nil, errors.New("load state: malformed snapshot")
	}

	c := New()

	copy(c.mem[:], s.Mem)
	copy(c.stack[:], s.Stack)
	c.sp = s.SP
	copy(c.keys[:], s.Keys)
	c.pc = s.PC
	copy(c.v[:], s.V)
	c.i = s.I
	c.dt = s.DT
	c.st = s.ST
	copy(c.rpl[:], s.R)
	c.opcode = s.Opcode
	// F000 advances PC past its operand word, so it sits at PC-2.
	var operand uint16
	if s.Opcode == 0xF000 && s.PC >= 4 {
		operand = c.readWord(s.PC - 2)
	}
	c.opcodeDesc = describe(s.Opcode, operand)
	c.draw = s.Draw
	c.keyWait = s.KeyWait
	c.keyReg = s.KeyReg
	c.quirks = s.Quirks

	if s.AudioBuffer != nil {
		if len(s.AudioBuffer) != len(c.audioBuf) {
			return nil, errors.New("load state: malformed audio buffer")
		}
		copy(c.audioBuf[:], s.AudioBuffer)
		c.hasAudioBuf = true
	}

	c.vmem.mode = s.VideoMode
	c.vmem.plane = s.Plane
	copy(c.vmem.planes[0], s.VideoPlanes[0])
	copy(c.vmem.planes[1], s.VideoPlanes[1])

	c.prefetch()

	return c, nil
}
