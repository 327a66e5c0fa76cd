package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestPCBreakpoint(t *testing.T) {
	c := New()
	assert.NoError(t, c.LoadROM([]byte{0x12, 0x04, 0x00, 0x00, 0x00, 0x00}))

	assert.True(t, c.CheckBreakpoint(PCBreakpoint(0x200)))
	assert.False(t, c.CheckBreakpoint(PCBreakpoint(0x204)))

	assert.NoError(t, c.Tick(noKeys))
	assert.True(t, c.CheckBreakpoint(PCBreakpoint(0x204)))
}

func TestIBreakpoint(t *testing.T) {
	c := New()
	assert.NoError(t, c.LoadROM([]byte{0xA1, 0x23}))

	assert.False(t, c.CheckBreakpoint(IBreakpoint(0x123)))
	assert.NoError(t, c.Tick(noKeys))
	assert.True(t, c.CheckBreakpoint(IBreakpoint(0x123)))
}

func TestOpcodeBreakpoint(t *testing.T) {
	c := New()
	assert.NoError(t, c.LoadROM([]byte{0x30, 0x12}))

	tests := []struct {
		pattern string
		want    bool
	}{
		{"3012", true},
		{"3012 ", false},
		{"301", false},
		{"30**", true},
		{"30*2", true},
		{"****", true},
		{"40**", false},
		{"30*3", false},
		{"3o12", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, c.CheckBreakpoint(OpcodeBreakpoint(tt.pattern)))
		})
	}

	// patterns are case insensitive
	c = New()
	assert.NoError(t, c.LoadROM([]byte{0xDA, 0xB5}))
	assert.True(t, c.CheckBreakpoint(OpcodeBreakpoint("dab5")))
	assert.True(t, c.CheckBreakpoint(OpcodeBreakpoint("d***")))
}

func TestNilBreakpoint(t *testing.T) {
	c := New()
	assert.False(t, c.CheckBreakpoint(nil))
}
