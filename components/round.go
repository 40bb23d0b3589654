package components

import (
	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/schedule"
	"github.com/yohamta/donburi"
)

// BestScoreStore persists the single best score across sessions.
type BestScoreStore interface {
	LoadBestScore() int
	SaveBestScore(score int) error
}

// RoundData stores the state machine, score and game clock for the current
// round. This is a singleton component.
type RoundData struct {
	State      cfg.RoundStateID
	Score      int
	BestScore  int
	FinalScore int // score frozen when the round ends
	TimeLeft   int // seconds on the game clock
	Countdown  int // value currently shown by the pre-round countdown
	Pulse      float64

	ClockTimer     *schedule.Timer
	CountdownTimer *schedule.Timer

	Store BestScoreStore
}

var Round = donburi.NewComponentType[RoundData]()
