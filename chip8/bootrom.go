package chip8

// bootROM is the embedded program loaded at power-on and whenever loading or
// executing a ROM fails unrecoverably. It clears the screen, draws "C8"
// using the built-in font and spins.
var bootROM = []byte{
	0x00, 0xE0, // CLS
	0x60, 0x0C, // LD  V0, #0C
	0xF0, 0x29, // LD  F, V0
	0x6A, 0x1A, // LD  VA, #1A
	0x6B, 0x0D, // LD  VB, #0D
	0xDA, 0xB5, // DRW VA, VB, 5
	0x60, 0x08, // LD  V0, #08
	0xF0, 0x29, // LD  F, V0
	0x6A, 0x20, // LD  VA, #20
	0xDA, 0xB5, // DRW VA, VB, 5
	0x12, 0x14, // JP  #214
}
