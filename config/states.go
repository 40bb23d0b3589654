package config

// RoundStateID identifies the phase of a round
type RoundStateID int

const (
	RoundIdle RoundStateID = iota
	RoundCountdown
	RoundPlaying
	RoundWinner
	RoundGameOver
)

func (s RoundStateID) String() string {
	switch s {
	case RoundIdle:
		return "idle"
	case RoundCountdown:
		return "countdown"
	case RoundPlaying:
		return "playing"
	case RoundWinner:
		return "winner"
	case RoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Ended reports whether the round is showing a result popup.
func (s RoundStateID) Ended() bool {
	return s == RoundWinner || s == RoundGameOver
}
