package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives    int
	MaxLives int
}

// Lose removes one life without going below zero and returns the remainder.
func (l *LivesData) Lose() int {
	if l.Lives > 0 {
		l.Lives--
	}
	return l.Lives
}

var Lives = donburi.NewComponentType[LivesData]()
