package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/apple-ten/audio"
	"github.com/lixenwraith/apple-ten/board"
	"github.com/lixenwraith/apple-ten/config"
	"github.com/lixenwraith/apple-ten/constants"
	"github.com/lixenwraith/apple-ten/core"
	"github.com/lixenwraith/apple-ten/engine"
	"github.com/lixenwraith/apple-ten/input"
	"github.com/lixenwraith/apple-ten/ledger"
	"github.com/lixenwraith/apple-ten/render"
)

// soundPlayer is the part of audio.SoundManager the game drives
type soundPlayer interface {
	Play(audio.SoundType)
	SetMusicEnabled(bool)
	StartMusic()
	PauseMusic()
	StopMusic()
}

// app wires the session to the terminal, audio and ranking store
type app struct {
	screen     tcell.Screen
	session    *engine.Session
	countdown  *engine.Countdown
	renderer   *render.TerminalRenderer
	translator *input.Translator
	ledger     *ledger.Ledger
	sound      soundPlayer

	lightMode     bool
	musicOn       bool
	status        string
	highlightRank int
	pendingScore  int
	quit          bool
}

// newApp builds the game around an initialized screen
func newApp(cfg *config.Config, screen tcell.Screen, store ledger.Store, sound soundPlayer) *app {
	countdown := engine.NewCountdown(constants.CountdownInterval)
	session := engine.NewSession(engine.SessionConfig{
		TimeLimit: cfg.TimeLimit,
		Rand:      board.NewRand(cfg.Seed),
		Scheduler: countdown,
	})

	a := &app{
		screen:     screen,
		session:    session,
		countdown:  countdown,
		renderer:   render.NewTerminalRenderer(screen),
		translator: input.NewTranslator(),
		sound:      sound,
		lightMode:  cfg.LightMode,
		musicOn:    cfg.Music,
	}
	sound.SetMusicEnabled(cfg.Music)

	l, err := ledger.Open(store, engine.NewMonotonicTimeProvider())
	if err != nil {
		// Ledger still usable; rankings start empty
		log.Printf("ranking load failed: %v", err)
		a.status = "rankings unavailable, starting empty"
	}
	a.ledger = l

	session.Subscribe(a.onSessionEvent)
	return a
}

// onSessionEvent maps session notifications to sound, music and name entry
func (a *app) onSessionEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventStarted:
		a.highlightRank = 0
		a.status = ""
		a.sound.StartMusic()
	case engine.EventResumed:
		a.sound.StartMusic()
	case engine.EventPaused:
		a.sound.PauseMusic()
	case engine.EventMatched:
		a.sound.Play(audio.SoundClear)
	case engine.EventMismatch:
		a.sound.Play(audio.SoundFail)
	case engine.EventEnded:
		a.sound.StopMusic()
		if ev.Reason != engine.ReasonQuit {
			a.pendingScore = ev.Score
			a.translator.BeginNameEntry()
		}
	}
}

// handleEvent processes one terminal event
func (a *app) handleEvent(ev tcell.Event) {
	in := a.translator.Translate(ev)
	if input.Forward(in, a.session) {
		return
	}

	switch in.Type {
	case input.IntentQuit:
		a.session.End(engine.ReasonQuit)
		a.quit = true
	case input.IntentResize:
		a.screen.Sync()
	case input.IntentStart:
		a.session.Start()
	case input.IntentTogglePause:
		a.session.TogglePause()
	case input.IntentReset:
		a.session.Reset()
	case input.IntentHint:
		if _, ok := a.session.Hint(); !ok && a.session.Phase() == engine.PhaseRunning {
			a.status = "no hint available"
		}
	case input.IntentToggleLight:
		a.lightMode = !a.lightMode
	case input.IntentToggleMusic:
		a.musicOn = !a.musicOn
		a.sound.SetMusicEnabled(a.musicOn)
		if a.musicOn && a.session.Phase() == engine.PhaseRunning {
			a.sound.StartMusic()
		}
	case input.IntentNameSubmit:
		a.recordScore(in.Text)
	case input.IntentNameSkip:
		a.pendingScore = 0
	}
}

func (a *app) recordScore(name string) {
	a.highlightRank = a.ledger.Rank(a.pendingScore)
	_, err := a.ledger.Record(name, a.pendingScore)
	a.pendingScore = 0
	if err != nil {
		log.Printf("ranking save failed: %v", err)
		a.status = "ranking not saved"
	}
}

// draw renders the current frame
func (a *app) draw() {
	a.renderer.RenderFrame(a.session, render.Frame{
		Rankings:      a.ledger.TopN(constants.LedgerCapacity),
		HighlightRank: a.highlightRank,
		LightMode:     a.lightMode,
		MusicOn:       a.musicOn,
		NameEntry:     a.translator.Mode() == input.ModeNameEntry,
		NameInput:     a.translator.Name(),
		Status:        a.status,
	})
}

// run is the single event loop; every session operation happens on this goroutine
func (a *app) run() {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	a.draw()
	for !a.quit {
		select {
		case ev := <-events:
			a.handleEvent(ev)
			a.draw()
		case <-a.countdown.C():
			a.session.Tick()
		case <-frameTicker.C:
			a.draw()
		}
	}
	a.countdown.Disarm()
}
