package constants

// Board Layout (terminal cells)
const (
	// BoardOriginX is the left edge of the board
	BoardOriginX = 2

	// BoardOriginY is the top edge of the board, leaving room for the header
	BoardOriginY = 2

	// CellWidth is the number of terminal columns one apple occupies
	CellWidth = 4

	// CellHeight is the number of terminal rows one apple occupies
	CellHeight = 2
)

// Side Panels
const (
	// TimerBarGap is the distance between the board and the timer bar
	TimerBarGap = 2

	// TimerBarWidth is the width of the vertical timer bar
	TimerBarWidth = 2

	// RankPanelGap is the distance between the timer bar and the ranking panel
	RankPanelGap = 3

	// RankPanelWidth fits rank, a full-length name and a score column
	RankPanelWidth = 34
)

// Timer Bar Thresholds (fraction of time remaining)
const (
	TimerWarnRatio     = 0.5
	TimerCriticalRatio = 0.25
)

// Status Text
const (
	TitleText       = " APPLE TEN "
	StartPromptText = "Press S to start"
	PausedText      = "PAUSED"
	NoRecordsText   = "no records"
	NamePromptText  = "Enter name (Esc to skip):"
	HelpText        = "s start  space pause  r reset  h hint  l light  m music  q quit"
)
