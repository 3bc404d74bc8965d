package job

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Workload is the unit of work a task performs on every dispatch.
// DoWork returns the simulated clock time consumed by one invocation.
type Workload interface {
	Name() string
	DoWork(r *rand.Rand) uint64
}

// Names of the built-in workloads, as accepted by ByName.
const (
	NameIdle       = "idle"
	NameRandomUser = "randomuser"
	NameFixed      = "fixed"
)

// ByName builds a workload from its config name. quantum is only used by
// the fixed workload.
func ByName(name string, quantum uint64) (Workload, error) {
	switch name {
	case NameRandomUser, "":
		return NewRandomUser(), nil
	case NameFixed:
		if quantum == 0 {
			return nil, fmt.Errorf("fixed workload needs a quantum >= 1")
		}
		return Fixed{Quantum: quantum}, nil
	case NameIdle:
		return Idle{}, nil
	default:
		return nil, fmt.Errorf("unknown workload %q", name)
	}
}
