package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		op      uint16
		operand uint16
		want    string
	}{
		{0x0000, 0, "-"},
		{0x00E0, 0, "CLS"},
		{0x00EE, 0, "RET"},
		{0x00C3, 0, "SCD    3"},
		{0x00D7, 0, "SCU    7"},
		{0x00FB, 0, "SCR"},
		{0x00FC, 0, "SCL"},
		{0x00FD, 0, "EXIT"},
		{0x00FE, 0, "LOW"},
		{0x00FF, 0, "HIGH"},
		{0x0230, 0, "SYS    #0230"},
		{0x1234, 0, "JP     #0234"},
		{0x2456, 0, "CALL   #0456"},
		{0x3A12, 0, "SE     VA, #12"},
		{0x4A12, 0, "SNE    VA, #12"},
		{0x5AB0, 0, "SE     VA, VB"},
		{0x5AB2, 0, "SAVE   VA - VB"},
		{0x5AB3, 0, "LOAD   VA - VB"},
		{0x6A12, 0, "LD     VA, #12"},
		{0x7A12, 0, "ADD    VA, #12"},
		{0x8AB0, 0, "LD     VA, VB"},
		{0x8AB1, 0, "OR     VA, VB"},
		{0x8AB4, 0, "ADD    VA, VB"},
		{0x8AB6, 0, "SHR    VA, VB"},
		{0x8ABE, 0, "SHL    VA, VB"},
		{0x9AB0, 0, "SNE    VA, VB"},
		{0xA123, 0, "LD     I, #0123"},
		{0xB123, 0, "JP     V0, #0123"},
		{0xC512, 0, "RND    V5, #12"},
		{0xDAB5, 0, "DRW    VA, VB, 5"},
		{0xEA9E, 0, "SKP    VA"},
		{0xEAA1, 0, "SKNP   VA"},
		{0xF000, 0xABCD, "LD     I, #ABCD"},
		{0xF201, 0, "PLANE  2"},
		{0xF002, 0, "AUDIO"},
		{0xFA07, 0, "LD     VA, DT"},
		{0xFA0A, 0, "LD     VA, K"},
		{0xFA15, 0, "LD     DT, VA"},
		{0xFA18, 0, "LD     ST, VA"},
		{0xFA1E, 0, "ADD    I, VA"},
		{0xFA29, 0, "LD     F, VA"},
		{0xFA30, 0, "LD     HF, VA"},
		{0xFA33, 0, "LD     B, VA"},
		{0xFA55, 0, "LD     [I], VA"},
		{0xFA65, 0, "LD     VA, [I]"},
		{0xFA75, 0, "LD     R, VA"},
		{0xFA85, 0, "LD     VA, R"},
		{0x5AB4, 0, "??"},
		{0xFAFF, 0, "??"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.op, tt.operand))
		})
	}
}

func TestDisassemble(t *testing.T) {
	c := New()
	assert.NoError(t, c.LoadROM([]byte{0x6A, 0x12, 0xF0, 0x00, 0xAB, 0xCD}))

	assert.Equal(t, "0200 - LD     VA, #12", c.Disassemble(0x200))
	assert.Equal(t, "0202 - LD     I, #ABCD", c.Disassemble(0x202))
	assert.Equal(t, "", c.Disassemble(0xFFFF))
}
