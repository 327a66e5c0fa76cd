package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plane8/plane8/chip8"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	// VM is the CHIP-8 virtual machine being driven.
	VM *chip8.CPU

	// Window and Renderer are the SDL output surface.
	Window   *sdl.Window
	Renderer *sdl.Renderer

	logger *log.Logger

	// File is the path of the currently loaded ROM; empty runs the boot
	// program.
	File string

	// Paused stops the CPU clock; F6 single-steps while paused.
	Paused bool

	breakpoint chip8.Breakpoint
	speed      int
)

func init() {
	runtime.LockOSThread()
}

func main() {
	var (
		debug     = flag.Bool("debug", false, "enable debug logging")
		pause     = flag.Bool("pause", false, "start paused")
		bp        = flag.String("break", "", "breakpoint: pc:XXXX, i:XXXX or a 4-digit opcode pattern with * wildcards")
		loadStore = flag.Bool("quirk-loadstore", true, "FX55/FX65 leave I unchanged")
		shift     = flag.Bool("quirk-shift", true, "8XY6/8XYE shift VX instead of VY")
		jump      = flag.Bool("quirk-jump", false, "BNNN jumps to XNN + VX")
		vfOrder   = flag.Bool("quirk-vforder", false, "ALU result beats the flag when VF is the destination")
		bigDraw   = flag.Bool("quirk-draw", false, "DXY0 draws 16x16 sprites in low resolution")
		vertWrap  = flag.Bool("quirk-vwrap", true, "sprites wrap around the vertical screen edge")
	)
	flag.IntVar(&speed, "speed", 720, "CPU instructions per second")
	flag.Parse()

	logger = createLogger(*debug)
	rand.Seed(time.Now().UTC().UnixNano())

	Paused = *pause

	var err error
	if breakpoint, err = parseBreakpoint(*bp); err != nil {
		logger.Fatal("Invalid breakpoint", log.Err(err))
	}

	VM = chip8.New()
	VM.SetQuirks(chip8.Quirks{
		LoadStore:        *loadStore,
		Shift:            *shift,
		Jump:             *jump,
		VFOrder:          *vfOrder,
		Draw:             *bigDraw,
		VerticalWrapping: *vertWrap,
	})

	File = flag.Arg(0)
	Load()

	if err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		logger.Fatal("SDL init failed", log.Err(err))
	}
	defer sdl.Quit()

	if Window, Renderer, err = sdl.CreateWindowAndRenderer(1024, 512, sdl.WINDOW_SHOWN); err != nil {
		logger.Fatal("Window creation failed", log.Err(err))
	}
	defer Window.Destroy()

	Window.SetTitle("plane8")

	InitScreen()
	InitAudio()

	video := time.NewTicker(time.Second / 60)
	defer video.Stop()

	for ProcessEvents() {
		<-video.C
		Frame()
	}
}

// Frame advances the machine by one 60 Hz video frame and presents it.
func Frame() {
	if !Paused {
		for i := 0; i < speed/60; i++ {
			if VM.CheckBreakpoint(breakpoint) {
				Paused = true
				logger.Info("Breakpoint hit", log.String("at", VM.Disassemble(VM.PC())))
				LogRegisters()
				break
			}

			if err := VM.Tick(Keys); err != nil {
				logger.Error("Emulation fault, rebooting", log.Err(err))
				break
			}
		}

		VM.UpdateTimers()
	}

	QueueAudio()
	Refresh()
}

// Step executes a single instruction while paused and logs it.
func Step() {
	logger.Info(VM.Disassemble(VM.PC()))

	if err := VM.Tick(Keys); err != nil {
		logger.Error("Emulation fault, rebooting", log.Err(err))
	}
	LogRegisters()
}

// Load loads the current ROM file, or the boot program if there is none.
func Load() {
	if File == "" {
		VM.LoadBootROM()
		return
	}

	rom, err := os.ReadFile(File)
	if err != nil {
		logger.Error("Cannot read ROM", log.String("file", File), log.Err(err))
		File = ""
		VM.LoadBootROM()
		return
	}

	if err := VM.LoadROM(rom); err != nil {
		logger.Error("Cannot load ROM", log.String("file", File), log.Err(err))
		File = ""
		return
	}

	logger.Info("Loaded ROM", log.String("file", File), log.Int("size", len(rom)))
}

// parseBreakpoint interprets the -break flag.
func parseBreakpoint(s string) (chip8.Breakpoint, error) {
	if s == "" {
		return nil, nil
	}

	var addr uint16
	switch {
	case len(s) > 3 && s[:3] == "pc:":
		if _, err := fmt.Sscanf(s[3:], "%x", &addr); err != nil {
			return nil, err
		}
		return chip8.PCBreakpoint(addr), nil
	case len(s) > 2 && s[:2] == "i:":
		if _, err := fmt.Sscanf(s[2:], "%x", &addr); err != nil {
			return nil, err
		}
		return chip8.IBreakpoint(addr), nil
	case len(s) == 4:
		return chip8.OpcodeBreakpoint(s), nil
	}

	return nil, fmt.Errorf("unrecognized breakpoint %q", s)
}
