package job

import "golang.org/x/exp/rand"

const (
	defaultMinWork = 1
	defaultMaxWork = 1000
)

// RandomUser consumes a uniformly distributed amount of work in [Min, Max).
type RandomUser struct {
	Min uint64
	Max uint64
}

// NewRandomUser returns the stock user workload drawing from [1, 1000).
func NewRandomUser() *RandomUser {
	return &RandomUser{Min: defaultMinWork, Max: defaultMaxWork}
}

func (w *RandomUser) Name() string { return NameRandomUser }

func (w *RandomUser) DoWork(r *rand.Rand) uint64 {
	// empty or inverted ranges collapse to Min
	if w.Max <= w.Min {
		return w.Min
	}
	return w.Min + r.Uint64n(w.Max-w.Min)
}
