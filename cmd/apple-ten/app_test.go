package main

import (
	"encoding/json"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/apple-ten/audio"
	"github.com/lixenwraith/apple-ten/board"
	"github.com/lixenwraith/apple-ten/config"
	"github.com/lixenwraith/apple-ten/constants"
	"github.com/lixenwraith/apple-ten/engine"
	"github.com/lixenwraith/apple-ten/input"
	"github.com/lixenwraith/apple-ten/ledger"
)

type fakeSound struct {
	played       []audio.SoundType
	musicEnabled bool
	musicPlaying bool
	starts       int
}

func (f *fakeSound) Play(s audio.SoundType)  { f.played = append(f.played, s) }
func (f *fakeSound) SetMusicEnabled(on bool) { f.musicEnabled = on; f.musicPlaying = f.musicPlaying && on }
func (f *fakeSound) StartMusic() {
	if f.musicEnabled {
		f.musicPlaying = true
		f.starts++
	}
}
func (f *fakeSound) PauseMusic() { f.musicPlaying = false }
func (f *fakeSound) StopMusic()  { f.musicPlaying = false }

func newTestApp(t *testing.T) (*app, *fakeSound, *ledger.MemoryStore) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(120, 40)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Seed = 42
	sound := &fakeSound{}
	store := ledger.NewMemoryStore()
	a := newApp(cfg, screen, store, sound)
	t.Cleanup(a.countdown.Disarm)
	return a, sound, store
}

func press(a *app, r rune) {
	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func dragCells(a *app, from, to board.Coord) {
	layout := a.session.Layout()
	x0, y0 := layout.CellOrigin(from)
	x1, y1 := layout.CellOrigin(to)
	a.handleEvent(tcell.NewEventMouse(x0, y0, tcell.Button1, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(x1, y1, tcell.Button1, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(x1, y1, tcell.ButtonNone, tcell.ModNone))
}

func TestAppStartAndPause(t *testing.T) {
	a, sound, _ := newTestApp(t)

	press(a, 's')
	if a.session.Phase() != engine.PhaseRunning {
		t.Fatalf("Expected running after s, got %s", a.session.Phase())
	}
	if !a.countdown.Armed() {
		t.Error("Expected countdown armed while running")
	}
	if !sound.musicPlaying {
		t.Error("Expected music to start with the session")
	}

	press(a, ' ')
	if a.session.Phase() != engine.PhasePaused {
		t.Fatalf("Expected paused after space, got %s", a.session.Phase())
	}
	if sound.musicPlaying {
		t.Error("Expected music paused with the session")
	}
	if a.countdown.Armed() {
		t.Error("Expected countdown disarmed while paused")
	}

	press(a, 'p')
	if a.session.Phase() != engine.PhaseRunning {
		t.Error("Expected resume on p")
	}
}

func TestAppMatchAndMismatchSounds(t *testing.T) {
	a, sound, _ := newTestApp(t)
	press(a, 's')

	// A single apple never sums to ten
	dragCells(a, board.Coord{Row: 0, Col: 0}, board.Coord{Row: 0, Col: 0})
	if len(sound.played) != 1 || sound.played[0] != audio.SoundFail {
		t.Fatalf("Expected fail sound, got %v", sound.played)
	}

	rect, ok := a.session.Hint()
	if !ok {
		t.Skip("Seeded board has no match")
	}
	dragCells(a, board.Coord{Row: rect.RowMin, Col: rect.ColMin}, board.Coord{Row: rect.RowMax, Col: rect.ColMax})

	if a.session.Score() != constants.ScorePerMatch {
		t.Errorf("Expected score %d after hinted match, got %d", constants.ScorePerMatch, a.session.Score())
	}
	if sound.played[len(sound.played)-1] != audio.SoundClear {
		t.Errorf("Expected clear sound, got %v", sound.played)
	}
}

func TestAppEscapeCancelsDrag(t *testing.T) {
	a, _, _ := newTestApp(t)
	press(a, 's')

	x, y := a.session.Layout().CellOrigin(board.Coord{Row: 0, Col: 0})
	a.handleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	if !a.session.Dragging() {
		t.Fatal("Expected drag after button press")
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if a.session.Dragging() {
		t.Error("Expected Esc to cancel the drag")
	}
	if a.session.Score() != 0 {
		t.Error("Cancel must not change score")
	}
}

func TestAppRecordsScoreAfterGameEnd(t *testing.T) {
	a, sound, store := newTestApp(t)
	press(a, 's')
	a.session.End(engine.ReasonTimeout)

	if sound.musicPlaying {
		t.Error("Expected music stopped at game end")
	}
	if a.translator.Mode() != input.ModeNameEntry {
		t.Fatal("Expected name entry after game end")
	}

	for _, r := range "kim" {
		press(a, r)
	}
	a.draw()
	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	top := a.ledger.TopN(constants.LedgerCapacity)
	if len(top) != 1 || top[0].Name != "kim" {
		t.Fatalf("Expected one record for kim, got %v", top)
	}
	if a.highlightRank != 1 {
		t.Errorf("Expected highlight on rank 1, got %d", a.highlightRank)
	}

	data, err := store.Get(constants.RankingKey)
	if err != nil {
		t.Fatalf("Expected persisted rankings: %v", err)
	}
	var saved []ledger.Entry
	if err := json.Unmarshal(data, &saved); err != nil || len(saved) != 1 {
		t.Errorf("Unexpected persisted data %s: %v", data, err)
	}
}

func TestAppSkipNameEntry(t *testing.T) {
	a, _, _ := newTestApp(t)
	press(a, 's')
	a.session.End(engine.ReasonNoMoves)

	press(a, 'x')
	a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	if a.ledger.Len() != 0 {
		t.Errorf("Expected no record after skip, got %d", a.ledger.Len())
	}
	if a.translator.Mode() != input.ModeGame {
		t.Error("Expected game mode after skip")
	}
}

func TestAppQuitDoesNotPromptName(t *testing.T) {
	a, _, _ := newTestApp(t)
	press(a, 's')
	press(a, 'q')

	if !a.quit {
		t.Error("Expected quit flag")
	}
	if a.session.LastReason() != engine.ReasonQuit {
		t.Errorf("Expected quit reason, got %s", a.session.LastReason())
	}
	if a.translator.Mode() == input.ModeNameEntry {
		t.Error("Quit must not prompt for a name")
	}
}

func TestAppToggles(t *testing.T) {
	a, sound, _ := newTestApp(t)
	light := a.lightMode

	press(a, 'l')
	if a.lightMode == light {
		t.Error("Expected light mode toggled")
	}

	press(a, 's')
	press(a, 'm')
	if a.musicOn || sound.musicPlaying {
		t.Error("Expected music off after toggle")
	}
	press(a, 'm')
	if !a.musicOn || !sound.musicPlaying {
		t.Error("Expected music back on while running")
	}
}

func TestAppResetOnlyWhileRunning(t *testing.T) {
	a, _, _ := newTestApp(t)

	press(a, 'r')
	if a.session.Phase() != engine.PhaseStopped {
		t.Error("Reset must not start a stopped session")
	}

	press(a, 's')
	for i := 0; i < 5; i++ {
		a.session.Tick()
	}
	press(a, 'r')
	if a.session.TimeRemaining() != a.session.TimeLimit() {
		t.Errorf("Expected time restored on reset, got %d", a.session.TimeRemaining())
	}
}
