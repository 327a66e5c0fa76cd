package chip8

// instruction identifies one operation of the CHIP-8/SCHIP/XO-CHIP set.
type instruction int

const (
	instInvalid instruction = iota
	instScrollDown
	instScrollUp
	instCls
	instRet
	instScrollRight
	instScrollLeft
	instExit
	instLow
	instHigh
	instClsHiRes
	instSys
	instJumpHiRes
	instJump
	instCall
	instSkipIf
	instSkipIfNot
	instSkipIfXY
	instStoreRange
	instLoadRange
	instLoadX
	instAddX
	instLoadXY
	instOr
	instAnd
	instXor
	instAddXY
	instSubXY
	instShr
	instSubYX
	instShl
	instSkipIfNotXY
	instLoadI
	instJumpV0
	instRnd
	instDraw
	instSkipIfPressed
	instSkipIfNotPressed
	instLoadILong
	instSelectPlane
	instLoadAudio
	instLoadXDT
	instLoadXK
	instLoadDTX
	instLoadSTX
	instAddIX
	instLoadF
	instLoadHF
	instLoadB
	instSaveRegs
	instLoadRegs
	instSaveFlags
	instLoadFlags
)

// decoded is the pure result of decoding one instruction word. Context
// dependent behavior (the 1260 HiRes entry, the 0230 HiRes clear) stays in
// the handlers; decoding never looks at machine state.
type decoded struct {
	inst instruction

	x, y int
	n    byte
	nn   byte
	nnn  uint16
}

// decode classifies an opcode. Literal matches take precedence over
// wildcard families.
func decode(op uint16) decoded {
	d := decoded{
		x:   int(op >> 8 & 0xF),
		y:   int(op >> 4 & 0xF),
		n:   byte(op & 0xF),
		nn:  byte(op),
		nnn: op & 0x0FFF,
	}

	switch {
	case op == 0x00E0:
		d.inst = instCls
	case op == 0x00EE:
		d.inst = instRet
	case op == 0x00FB:
		d.inst = instScrollRight
	case op == 0x00FC:
		d.inst = instScrollLeft
	case op == 0x00FD:
		d.inst = instExit
	case op == 0x00FE:
		d.inst = instLow
	case op == 0x00FF:
		d.inst = instHigh
	case op == 0x0230:
		d.inst = instClsHiRes
	case op&0xFFF0 == 0x00C0:
		d.inst = instScrollDown
	case op&0xFFF0 == 0x00D0:
		d.inst = instScrollUp
	case op&0xF000 == 0x0000:
		d.inst = instSys
	case op == 0x1260:
		d.inst = instJumpHiRes
	case op&0xF000 == 0x1000:
		d.inst = instJump
	case op&0xF000 == 0x2000:
		d.inst = instCall
	case op&0xF000 == 0x3000:
		d.inst = instSkipIf
	case op&0xF000 == 0x4000:
		d.inst = instSkipIfNot
	case op&0xF00F == 0x5000:
		d.inst = instSkipIfXY
	case op&0xF00F == 0x5002:
		d.inst = instStoreRange
	case op&0xF00F == 0x5003:
		d.inst = instLoadRange
	case op&0xF000 == 0x6000:
		d.inst = instLoadX
	case op&0xF000 == 0x7000:
		d.inst = instAddX
	case op&0xF00F == 0x8000:
		d.inst = instLoadXY
	case op&0xF00F == 0x8001:
		d.inst = instOr
	case op&0xF00F == 0x8002:
		d.inst = instAnd
	case op&0xF00F == 0x8003:
		d.inst = instXor
	case op&0xF00F == 0x8004:
		d.inst = instAddXY
	case op&0xF00F == 0x8005:
		d.inst = instSubXY
	case op&0xF00F == 0x8006:
		d.inst = instShr
	case op&0xF00F == 0x8007:
		d.inst = instSubYX
	case op&0xF00F == 0x800E:
		d.inst = instShl
	case op&0xF00F == 0x9000:
		d.inst = instSkipIfNotXY
	case op&0xF000 == 0xA000:
		d.inst = instLoadI
	case op&0xF000 == 0xB000:
		d.inst = instJumpV0
	case op&0xF000 == 0xC000:
		d.inst = instRnd
	case op&0xF000 == 0xD000:
		d.inst = instDraw
	case op&0xF0FF == 0xE09E:
		d.inst = instSkipIfPressed
	case op&0xF0FF == 0xE0A1:
		d.inst = instSkipIfNotPressed
	case op == 0xF000:
		d.inst = instLoadILong
	case op&0xF0FF == 0xF001:
		d.inst = instSelectPlane
	case op == 0xF002:
		d.inst = instLoadAudio
	case op&0xF0FF == 0xF007:
		d.inst = instLoadXDT
	case op&0xF0FF == 0xF00A:
		d.inst = instLoadXK
	case op&0xF0FF == 0xF015:
		d.inst = instLoadDTX
	case op&0xF0FF == 0xF018:
		d.inst = instLoadSTX
	case op&0xF0FF == 0xF01E:
		d.inst = instAddIX
	case op&0xF0FF == 0xF029:
		d.inst = instLoadF
	case op&0xF0FF == 0xF030:
		d.inst = instLoadHF
	case op&0xF0FF == 0xF033:
		d.inst = instLoadB
	case op&0xF0FF == 0xF055:
		d.inst = instSaveRegs
	case op&0xF0FF == 0xF065:
		d.inst = instLoadRegs
	case op&0xF0FF == 0xF075:
		d.inst = instSaveFlags
	case op&0xF0FF == 0xF085:
		d.inst = instLoadFlags
	default:
		d.inst = instInvalid
	}

	return d
}
