package constants

import "time"

// Board Dimensions
const (
	// BoardRows is the number of apple rows on the board
	BoardRows = 10

	// BoardCols is the number of apple columns on the board
	BoardCols = 17

	// MinCellValue and MaxCellValue bound generated apple values
	MinCellValue = 1
	MaxCellValue = 9
)

// Scoring
const (
	// MatchTarget is the sum a selection must reach to clear
	MatchTarget = 10

	// ScorePerMatch is awarded for every cleared selection regardless of apple count
	ScorePerMatch = 10
)

// Session Timing
const (
	// DefaultTimeLimit is the session length in seconds
	DefaultTimeLimit = 120

	// CountdownInterval is the cadence of the session countdown
	CountdownInterval = 1 * time.Second

	// FrameUpdateInterval is the redraw interval for animations between events
	FrameUpdateInterval = 100 * time.Millisecond
)

// Ranking
const (
	// LedgerCapacity is the number of records kept in the ranking
	LedgerCapacity = 10

	// MaxNameLength is the maximum rune count of a recorded name
	MaxNameLength = 20

	// DefaultPlayerName replaces empty or whitespace-only names
	DefaultPlayerName = "Player"

	// RankingKey is the store key of the persisted ranking list
	RankingKey = "apple_rankings"
)
