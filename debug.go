package main

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// LogRegisters logs the full register file, used when stepping and on
// breakpoint hits.
func LogRegisters() {
	v := VM.V()

	var b strings.Builder
	for i, r := range v {
		fmt.Fprintf(&b, "V%X=%02X ", i, r)
	}

	logger.Info("Registers",
		log.String("v", strings.TrimSpace(b.String())),
		log.Uint16("i", VM.I()),
		log.Uint16("pc", VM.PC()),
		log.Int("sp", VM.SP()),
		log.Uint8("dt", VM.DT()),
		log.Uint8("st", VM.ST()),
	)
	logger.Info("Next", log.String("instruction", VM.NextOpcodeDescription()))
}
