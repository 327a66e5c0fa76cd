package chip8

// Quirks is the set of configurable deviations from strict original CHIP-8
// semantics. ROMs written against different historical interpreters expect
// different combinations; the driver toggles these between ticks, never
// while an instruction executes.
type Quirks struct {
	// LoadStore leaves I unchanged after FX55/FX65 instead of advancing
	// it by x+1.
	LoadStore bool

	// Shift makes 8XY6/8XYE shift Vx instead of Vy.
	Shift bool

	// Jump makes BNNN jump to NNN+Vx (x taken from the high nibble of
	// NNN) instead of NNN+V0.
	Jump bool

	// VFOrder writes the result register before the VF flag in the ALU
	// family. Only observable when the destination register is VF.
	VFOrder bool

	// Draw treats DXY0 as a 16x16 sprite even outside extended mode.
	Draw bool

	// VerticalWrapping wraps sprite rows drawn past the bottom edge back
	// to the top instead of clipping them.
	VerticalWrapping bool
}

// DefaultQuirks returns the power-on quirk configuration.
func DefaultQuirks() Quirks {
	return Quirks{
		LoadStore:        true,
		Shift:            true,
		VerticalWrapping: true,
	}
}

// Quirks returns the active quirk configuration.
func (c *CPU) Quirks() Quirks {
	return c.quirks
}

// SetQuirks replaces the quirk configuration. Must not be called while a
// Tick is in progress.
func (c *CPU) SetQuirks(q Quirks) {
	c.quirks = q
}
