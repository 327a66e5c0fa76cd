package main

import (
	"os"

	"github.com/plane8/plane8/chip8"
	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	// Keys is the current keypad state passed to every Tick.
	Keys [16]bool

	// KeyMap lays the 4x4 CHIP-8 keypad over the left of a QWERTY keyboard.
	KeyMap = map[sdl.Scancode]int{
		sdl.SCANCODE_X: 0x0,
		sdl.SCANCODE_1: 0x1,
		sdl.SCANCODE_2: 0x2,
		sdl.SCANCODE_3: 0x3,
		sdl.SCANCODE_Q: 0x4,
		sdl.SCANCODE_W: 0x5,
		sdl.SCANCODE_E: 0x6,
		sdl.SCANCODE_A: 0x7,
		sdl.SCANCODE_S: 0x8,
		sdl.SCANCODE_D: 0x9,
		sdl.SCANCODE_Z: 0xA,
		sdl.SCANCODE_C: 0xB,
		sdl.SCANCODE_4: 0xC,
		sdl.SCANCODE_R: 0xD,
		sdl.SCANCODE_F: 0xE,
		sdl.SCANCODE_V: 0xF,
	}
)

// ProcessEvents drains the SDL event queue, updating the keypad state and
// handling the emulator control keys. It returns false once the user quits.
func ProcessEvents() bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if key, ok := KeyMap[ev.Keysym.Scancode]; ok {
				Keys[key] = ev.Type == sdl.KEYDOWN
				continue
			}

			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}

			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				return false
			case sdl.SCANCODE_BACKSPACE:
				logger.Info("Rebooting")
				Load()

				// holding control reboots paused
				Paused = ev.Keysym.Mod&sdl.KMOD_CTRL != 0
			case sdl.SCANCODE_F2:
				Load()
			case sdl.SCANCODE_F3:
				LoadDialog()
			case sdl.SCANCODE_F4:
				SaveState()
			case sdl.SCANCODE_F7:
				LoadState()
			case sdl.SCANCODE_F5, sdl.SCANCODE_SPACE:
				Paused = !Paused
			case sdl.SCANCODE_F6, sdl.SCANCODE_F10:
				if Paused {
					Step()
				}
			}
		}
	}

	return true
}

// LoadDialog asks for a ROM file and boots it.
func LoadDialog() {
	file, err := dialog.File().
		Filter("CHIP-8 ROMs", "ch8", "c8", "sc8", "xo8", "rom").
		Filter("All files", "*").
		Load()
	if err != nil {
		if err != dialog.ErrCancelled {
			logger.Error("ROM dialog failed", log.Err(err))
		}
		return
	}

	File = file
	Load()
}

// SaveState writes a snapshot of the machine to a file of the user's choice.
func SaveState() {
	data, err := VM.SaveState()
	if err != nil {
		logger.Error("Cannot snapshot machine", log.Err(err))
		return
	}

	file, err := dialog.File().Filter("Save states", "p8s").Save()
	if err != nil {
		if err != dialog.ErrCancelled {
			logger.Error("Save dialog failed", log.Err(err))
		}
		return
	}

	if err := os.WriteFile(file, data, 0o644); err != nil {
		logger.Error("Cannot write save state", log.String("file", file), log.Err(err))
		return
	}

	logger.Info("Saved state", log.String("file", file))
}

// LoadState replaces the running machine with a previously saved snapshot.
func LoadState() {
	file, err := dialog.File().Filter("Save states", "p8s").Load()
	if err != nil {
		if err != dialog.ErrCancelled {
			logger.Error("Load dialog failed", log.Err(err))
		}
		return
	}

	data, err := os.ReadFile(file)
	if err != nil {
		logger.Error("Cannot read save state", log.String("file", file), log.Err(err))
		return
	}

	vm, err := chip8.FromState(data)
	if err != nil {
		logger.Error("Cannot restore state", log.String("file", file), log.Err(err))
		return
	}

	VM = vm
	logger.Info("Restored state", log.String("file", file))
}
