package chip8

import "github.com/pkg/errors"

var (
	// ErrROMTooLarge is returned by LoadROM when the program does not fit
	// into the addressable space above 0x200. The bootstrap ROM is loaded
	// instead.
	ErrROMTooLarge = errors.New("ROM too large for program memory")

	// ErrProgramCounterOverflow is returned by Tick when the program
	// counter advanced past the addressable memory bound. The machine is
	// reset to the bootstrap ROM.
	ErrProgramCounterOverflow = errors.New("program counter out of memory bounds")
)
