package components

import (
	"math/rand/v2"
	"time"

	"github.com/yohamta/donburi"
)

// SpawnerData tracks when each falling category last spawned.
type SpawnerData struct {
	LastEnemy       time.Duration
	LastCollectible time.Duration
	Rand            *rand.Rand
}

var Spawner = donburi.NewComponentType[SpawnerData]()
