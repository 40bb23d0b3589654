package systems

import (
	"time"

	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScheduler advances game time by one tick and fires due timers.
// Game time is derived from the frame count so it never drifts from the
// fixed tick rate.
func UpdateScheduler(e *ecs.ECS) {
	entry, ok := components.Scheduler.First(e.World)
	if !ok {
		return
	}
	data := components.Scheduler.Get(entry)
	if data.Scheduler == nil {
		return
	}
	data.Frames++
	data.AdvanceTo(time.Duration(data.Frames) * time.Second / time.Duration(cfg.C.TPS))
}
