package job

import "golang.org/x/exp/rand"

// Fixed always consumes the same quantum. Handy for reproducible runs.
type Fixed struct {
	Quantum uint64
}

func (f Fixed) Name() string { return NameFixed }

func (f Fixed) DoWork(*rand.Rand) uint64 { return f.Quantum }
