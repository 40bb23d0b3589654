package systems

import (
	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClouds drifts the background clouds in every round state.
func UpdateClouds(e *ecs.ECS) {
	components.Cloud.Each(e.World, func(entry *donburi.Entry) {
		cloud := components.Cloud.Get(entry)
		cloud.X += cloud.Speed
		if cloud.X > cfg.Cloud.WrapX {
			cloud.X = cfg.Cloud.ResetX
		}
	})
}
