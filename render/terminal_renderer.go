package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/apple-ten/board"
	"github.com/lixenwraith/apple-ten/constants"
	"github.com/lixenwraith/apple-ten/engine"
	"github.com/lixenwraith/apple-ten/ledger"
	"github.com/lixenwraith/apple-ten/selection"
	"github.com/mattn/go-runewidth"
)

// GameView is the session state read by the renderer
type GameView interface {
	Phase() engine.Phase
	Score() int
	TimeRemaining() int
	TimeLimit() int
	LastReason() engine.EndReason
	Board() engine.BoardView
	Layout() selection.Layout
	SelectionRect() (selection.Rect, bool)
	SelectionSum() (int, bool)
	HintRect() (selection.Rect, bool)
}

var _ GameView = (*engine.Session)(nil)

// Frame carries UI state owned outside the session
type Frame struct {
	Rankings      []ledger.Entry
	HighlightRank int // 1-based rank of the latest record, 0 for none
	LightMode     bool
	MusicOn       bool
	NameEntry     bool
	NameInput     string
	Status        string
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// MinSize returns the smallest terminal that fits the board, timer bar and text rows
func MinSize(layout selection.Layout) (int, int) {
	width := layout.OriginX + layout.Width() + constants.TimerBarGap + constants.TimerBarWidth + 1
	height := layout.OriginY + layout.Height() + 4
	return width, height
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(game GameView, f Frame) {
	theme := ThemeFor(f.LightMode)
	base := theme.Base()
	r.screen.SetStyle(base)
	r.screen.Clear()

	layout := game.Layout()
	width, height := r.screen.Size()
	minW, minH := MinSize(layout)
	if width < minW || height < minH {
		drawText(r.screen, 0, 0, fmt.Sprintf("Terminal too small: need %dx%d", minW, minH), base)
		r.screen.Show()
		return
	}

	r.drawHeader(f, theme, layout, width)
	r.drawBoard(game, theme, layout)

	timerX := layout.OriginX + layout.Width() + constants.TimerBarGap
	r.drawTimerBar(game, theme, layout, timerX)

	panelX := timerX + constants.TimerBarWidth + constants.RankPanelGap
	if panelX+constants.RankPanelWidth <= width {
		r.drawRankings(f, theme, panelX, layout.OriginY)
	}

	statusY := layout.OriginY + layout.Height() + 1
	r.drawStatusBar(game, theme, layout.OriginX, statusY)
	drawText(r.screen, layout.OriginX, statusY+1, constants.HelpText, base.Foreground(theme.Muted))
	if f.Status != "" {
		drawText(r.screen, layout.OriginX, statusY+2, f.Status, base.Foreground(theme.Accent))
	}

	if lines := overlayLines(game, f); len(lines) > 0 {
		r.drawOverlay(lines, theme, layout)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawHeader(f Frame, theme Theme, layout selection.Layout, width int) {
	base := theme.Base()
	titleStyle := base.Background(theme.Accent).Foreground(RgbAppleText).Bold(true)
	drawText(r.screen, layout.OriginX, 0, constants.TitleText, titleStyle)

	music := "off"
	if f.MusicOn {
		music = "on"
	}
	info := fmt.Sprintf("%s mode  music %s", theme.Name, music)
	x := width - len(info) - 1
	if x > layout.OriginX+len(constants.TitleText) {
		drawText(r.screen, x, 0, info, base.Foreground(theme.Muted))
	}
}

// drawBoard paints every cell: checkerboard ground, hint and selection tints, then the apple with its value
func (r *TerminalRenderer) drawBoard(game GameView, theme Theme, layout selection.Layout) {
	b := game.Board()
	base := theme.Base()

	selRect, selActive := game.SelectionRect()
	selColor := RgbSelection
	if sum, ok := game.SelectionSum(); ok && sum == constants.MatchTarget {
		selColor = RgbMatch
	}
	hintRect, hintActive := game.HintRect()

	appleW := max(1, layout.CellWidth-1)
	appleH := max(1, layout.CellHeight-1)

	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			coord := board.Coord{Row: row, Col: col}
			x, y := layout.CellOrigin(coord)

			ground := theme.BoardLight
			apple := RgbAppleRed
			if (row+col)%2 == 1 {
				ground = theme.BoardDark
				apple = RgbAppleRedDeep
			}
			switch {
			case selActive && selRect.Contains(coord):
				ground = Blend(ground, selColor, 0.7)
				apple = Blend(apple, selColor, 0.3)
			case hintActive && hintRect.Contains(coord):
				ground = Blend(ground, RgbHint, 0.7)
			}

			fillRect(r.screen, x, y, layout.CellWidth, layout.CellHeight, base.Background(ground))

			v := b.At(row, col)
			if v == board.Empty {
				continue
			}
			appleStyle := base.Background(apple).Foreground(RgbAppleText).Bold(true)
			fillRect(r.screen, x, y, appleW, appleH, appleStyle)
			r.screen.SetContent(x+appleW/2, y+appleH/2, rune('0'+v), nil, appleStyle)
		}
	}
}

// drawTimerBar draws a vertical bar the height of the board, draining from the top
func (r *TerminalRenderer) drawTimerBar(game GameView, theme Theme, layout selection.Layout, x int) {
	base := theme.Base()
	height := layout.Height()

	ratio := 0.0
	if limit := game.TimeLimit(); limit > 0 {
		ratio = float64(game.TimeRemaining()) / float64(limit)
	}
	filled := int(math.Round(ratio * float64(height)))

	track := base.Background(Blend(theme.Background, theme.Muted, 0.3))
	fill := base.Background(TimerColor(ratio))

	for i := 0; i < height; i++ {
		style := track
		if i >= height-filled {
			style = fill
		}
		for dx := 0; dx < constants.TimerBarWidth; dx++ {
			r.screen.SetContent(x+dx, layout.OriginY+i, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawStatusBar(game GameView, theme Theme, x, y int) {
	base := theme.Base()
	bold := base.Bold(true)

	x = drawText(r.screen, x, y, fmt.Sprintf("Score: %d", game.Score()), bold)
	x = drawText(r.screen, x+3, y, fmt.Sprintf("Time: %ds", game.TimeRemaining()),
		bold.Foreground(TimerColor(timeRatio(game))))

	if sum, ok := game.SelectionSum(); ok {
		color := RgbSelection
		if sum == constants.MatchTarget {
			color = RgbMatch
		}
		drawText(r.screen, x+3, y, fmt.Sprintf("Sum: %d", sum), bold.Foreground(color))
	}
}

func timeRatio(game GameView) float64 {
	if game.TimeLimit() <= 0 {
		return 0
	}
	return float64(game.TimeRemaining()) / float64(game.TimeLimit())
}

// drawRankings draws the ranking panel: rank, name and score per row
func (r *TerminalRenderer) drawRankings(f Frame, theme Theme, x, y int) {
	base := theme.Base()
	width := constants.RankPanelWidth
	height := constants.LedgerCapacity + 4
	inner := width - 2

	drawBox(r.screen, x, y, width, height, base.Foreground(theme.PanelBorder))
	drawCentered(r.screen, x+1, y+1, inner, "RANKING", base.Foreground(theme.Accent).Bold(true))

	if len(f.Rankings) == 0 {
		drawCentered(r.screen, x+1, y+3, inner, constants.NoRecordsText, base.Foreground(theme.Muted))
		return
	}

	nameWidth := inner - 4 - 7
	for i, e := range f.Rankings {
		if i >= constants.LedgerCapacity {
			break
		}
		style := base
		if i+1 == f.HighlightRank {
			style = base.Foreground(theme.Accent).Bold(true)
		}
		line := fmt.Sprintf("%2d. %s%7d", i+1, fitWidth(e.Name, nameWidth), e.Score)
		drawText(r.screen, x+1, y+3+i, line, style)
	}
}

// overlayLines returns the centered message for the current state, nil when play is unobstructed
func overlayLines(game GameView, f Frame) []string {
	if f.NameEntry {
		return []string{
			fmt.Sprintf("GAME OVER  Score %d", game.Score()),
			constants.NamePromptText,
			"> " + f.NameInput + "_",
		}
	}

	switch game.Phase() {
	case engine.PhasePaused:
		return []string{constants.PausedText, "Press space to resume"}
	case engine.PhaseStopped:
		switch game.LastReason() {
		case engine.ReasonNone:
			return []string{constants.StartPromptText}
		case engine.ReasonTimeout:
			return []string{"TIME UP", fmt.Sprintf("Score %d", game.Score()), constants.StartPromptText}
		case engine.ReasonNoMoves:
			return []string{"NO MOVES LEFT", fmt.Sprintf("Score %d", game.Score()), constants.StartPromptText}
		default:
			return []string{"GAME OVER", fmt.Sprintf("Score %d", game.Score()), constants.StartPromptText}
		}
	}
	return nil
}

func (r *TerminalRenderer) drawOverlay(lines []string, theme Theme, layout selection.Layout) {
	width := min(layout.Width(), 40)
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line)+6)
	}
	height := len(lines) + 4
	x := max(0, layout.OriginX+(layout.Width()-width)/2)
	y := max(0, layout.OriginY+(layout.Height()-height)/2)

	style := tcell.StyleDefault.Background(theme.OverlayBg).Foreground(theme.OverlayFg)
	fillRect(r.screen, x, y, width, height, style)
	drawBox(r.screen, x, y, width, height, style.Foreground(theme.Accent))

	for i, line := range lines {
		lineStyle := style
		if i == 0 {
			lineStyle = style.Bold(true)
		}
		drawCentered(r.screen, x+1, y+2+i, width-2, line, lineStyle)
	}
}
