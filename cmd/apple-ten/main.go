package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/apple-ten/audio"
	"github.com/lixenwraith/apple-ten/config"
	"github.com/lixenwraith/apple-ten/core"
	"github.com/lixenwraith/apple-ten/ledger"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg := config.LoadFromEnv()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	cfg.Validate()

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	applyColorMode(cfg.ColorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.RegisterTerminal(screen)
	// Normal exit terminal cleanup
	defer func() {
		core.RegisterTerminal(nil)
		screen.Fini()
	}()

	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	// Audio is optional, the game runs silent without a device
	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	a := newApp(cfg, screen, ledger.NewFileStore(cfg.RankingDir), sound)
	a.run()
}

// applyColorMode steers tcell's color detection before the screen is created
func applyColorMode(mode string) {
	switch mode {
	case "truecolor":
		os.Setenv("COLORTERM", "truecolor")
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
}
