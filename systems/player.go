package systems

import (
	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer eases the player toward its target, keeps it on the
// playfield and runs the hit feedback timers.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := GetPlayer(e)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	x := gamemath.Approach(obj.X, player.TargetX, cfg.Player.FollowFactor)
	y := gamemath.Approach(obj.Y, player.TargetY, cfg.Player.FollowFactor)
	obj.X, obj.Y = gamemath.ClampInside(x, y, obj.W, obj.H, cfg.Playfield.Width, cfg.Playfield.Height)
	obj.Update()

	if player.Invincible {
		player.BlinkTimer++
	}
	if player.ShakeTimer > 0 {
		player.ShakeTimer--
	}
}
