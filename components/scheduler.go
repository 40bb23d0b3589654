package components

import (
	"github.com/automoto/skydodge/schedule"
	"github.com/yohamta/donburi"
)

// SchedulerData owns the world's timers and the frame count that drives them.
type SchedulerData struct {
	*schedule.Scheduler
	Frames int64
}

var Scheduler = donburi.NewComponentType[SchedulerData]()
