package chip8

import "fmt"

// describe renders an instruction as an assembler-style mnemonic for the
// debugger surface. operand is the 16-bit word following the instruction,
// needed for the 4-byte F000 form.
func describe(op, operand uint16) string {
	if op == 0x0000 {
		return "-"
	}

	d := decode(op)

	switch d.inst {
	case instCls:
		return "CLS"
	case instRet:
		return "RET"
	case instScrollRight:
		return "SCR"
	case instScrollLeft:
		return "SCL"
	case instExit:
		return "EXIT"
	case instLow:
		return "LOW"
	case instHigh:
		return "HIGH"
	case instScrollDown:
		return fmt.Sprintf("SCD    %d", d.n)
	case instScrollUp:
		return fmt.Sprintf("SCU    %d", d.n)
	case instClsHiRes, instSys:
		return fmt.Sprintf("SYS    #%04X", d.nnn)
	case instJumpHiRes, instJump:
		return fmt.Sprintf("JP     #%04X", d.nnn)
	case instCall:
		return fmt.Sprintf("CALL   #%04X", d.nnn)
	case instSkipIf:
		return fmt.Sprintf("SE     V%X, #%02X", d.x, d.nn)
	case instSkipIfNot:
		return fmt.Sprintf("SNE    V%X, #%02X", d.x, d.nn)
	case instSkipIfXY:
		return fmt.Sprintf("SE     V%X, V%X", d.x, d.y)
	case instStoreRange:
		return fmt.Sprintf("SAVE   V%X - V%X", d.x, d.y)
	case instLoadRange:
		return fmt.Sprintf("LOAD   V%X - V%X", d.x, d.y)
	case instLoadX:
		return fmt.Sprintf("LD     V%X, #%02X", d.x, d.nn)
	case instAddX:
		return fmt.Sprintf("ADD    V%X, #%02X", d.x, d.nn)
	case instLoadXY:
		return fmt.Sprintf("LD     V%X, V%X", d.x, d.y)
	case instOr:
		return fmt.Sprintf("OR     V%X, V%X", d.x, d.y)
	case instAnd:
		return fmt.Sprintf("AND    V%X, V%X", d.x, d.y)
	case instXor:
		return fmt.Sprintf("XOR    V%X, V%X", d.x, d.y)
	case instAddXY:
		return fmt.Sprintf("ADD    V%X, V%X", d.x, d.y)
	case instSubXY:
		return fmt.Sprintf("SUB    V%X, V%X", d.x, d.y)
	case instShr:
		return fmt.Sprintf("SHR    V%X, V%X", d.x, d.y)
	case instSubYX:
		return fmt.Sprintf("SUBN   V%X, V%X", d.x, d.y)
	case instShl:
		return fmt.Sprintf("SHL    V%X, V%X", d.x, d.y)
	case instSkipIfNotXY:
		return fmt.Sprintf("SNE    V%X, V%X", d.x, d.y)
	case instLoadI:
		return fmt.Sprintf("LD     I, #%04X", d.nnn)
	case instJumpV0:
		return fmt.Sprintf("JP     V0, #%04X", d.nnn)
	case instRnd:
		return fmt.Sprintf("RND    V%X, #%02X", d.x, d.nn)
	case instDraw:
		return fmt.Sprintf("DRW    V%X, V%X, %d", d.x, d.y, d.n)
	case instSkipIfPressed:
		return fmt.Sprintf("SKP    V%X", d.x)
	case instSkipIfNotPressed:
		return fmt.Sprintf("SKNP   V%X", d.x)
	case instLoadILong:
		return fmt.Sprintf("LD     I, #%04X", operand)
	case instSelectPlane:
		return fmt.Sprintf("PLANE  %d", d.x)
	case instLoadAudio:
		return "AUDIO"
	case instLoadXDT:
		return fmt.Sprintf("LD     V%X, DT", d.x)
	case instLoadXK:
		return fmt.Sprintf("LD     V%X, K", d.x)
	case instLoadDTX:
		return fmt.Sprintf("LD     DT, V%X", d.x)
	case instLoadSTX:
		return fmt.Sprintf("LD     ST, V%X", d.x)
	case instAddIX:
		return fmt.Sprintf("ADD    I, V%X", d.x)
	case instLoadF:
		return fmt.Sprintf("LD     F, V%X", d.x)
	case instLoadHF:
		return fmt.Sprintf("LD     HF, V%X", d.x)
	case instLoadB:
		return fmt.Sprintf("LD     B, V%X", d.x)
	case instSaveRegs:
		return fmt.Sprintf("LD     [I], V%X", d.x)
	case instLoadRegs:
		return fmt.Sprintf("LD     V%X, [I]", d.x)
	case instSaveFlags:
		return fmt.Sprintf("LD     R, V%X", d.x)
	case instLoadFlags:
		return fmt.Sprintf("LD     V%X, R", d.x)
	}

	return "??"
}

// Disassemble renders the instruction at a memory address together with the
// address itself, for debugger listings.
func (c *CPU) Disassemble(addr uint16) string {
	if int(addr)+1 >= len(c.mem) {
		return ""
	}
	return fmt.Sprintf("%04X - %s", addr, describe(c.readWord(addr), c.readWord(addr+2)))
}
