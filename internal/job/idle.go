package job

import "golang.org/x/exp/rand"

// Idle is the per-CPU placeholder workload. It still advances the clock by
// one unit so an idle CPU never stands still.
type Idle struct{}

func (Idle) Name() string { return NameIdle }

func (Idle) DoWork(*rand.Rand) uint64 { return 1 }
