package chip8

import (
	"fmt"
	"strings"
)

// Breakpoint is a halt condition a debugger checks between ticks.
type Breakpoint interface {
	matches(c *CPU) bool
}

// PCBreakpoint matches when the program counter equals the value.
type PCBreakpoint uint16

// IBreakpoint matches when the index register equals the value.
type IBreakpoint uint16

// OpcodeBreakpoint matches the prefetched next opcode against a 4-hex-digit
// pattern where '*' is a wildcard nibble, e.g. "D***" for any draw.
type OpcodeBreakpoint string

func (bp PCBreakpoint) matches(c *CPU) bool {
	return c.pc == uint16(bp)
}

func (bp IBreakpoint) matches(c *CPU) bool {
	return c.i == uint16(bp)
}

func (bp OpcodeBreakpoint) matches(c *CPU) bool {
	pattern := strings.ToUpper(string(bp))
	if len(pattern) != 4 {
		return false
	}

	oc := fmt.Sprintf("%04X", c.nextOpcode)
	for k := 0; k < 4; k++ {
		if pattern[k] != '*' && pattern[k] != oc[k] {
			return false
		}
	}

	return true
}

// CheckBreakpoint reports whether the machine currently satisfies the
// breakpoint condition.
func (c *CPU) CheckBreakpoint(bp Breakpoint) bool {
	return bp != nil && bp.matches(c)
}
