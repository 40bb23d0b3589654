package systems

import (
	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFalling moves enemies and collectibles down by their speed and drops
// anything that has left the bottom of the playfield. It also advances the
// shared collectible glow pulse.
func UpdateFalling(e *ecs.ECS) {
	limit := cfg.Playfield.Height + cfg.Playfield.CullMargin

	var culled []*donburi.Entry
	move := func(entry *donburi.Entry) {
		falling := components.Falling.Get(entry)
		obj := components.Object.Get(entry)
		obj.Y += falling.Speed
		obj.Update()
		if obj.Y > limit {
			culled = append(culled, entry)
		}
	}
	tags.Enemy.Each(e.World, move)
	tags.Collectible.Each(e.World, move)

	for _, entry := range culled {
		destroyFalling(e, entry)
	}

	if round := GetRound(e); round != nil {
		round.Pulse += cfg.Collectible.PulseStep
	}
}
