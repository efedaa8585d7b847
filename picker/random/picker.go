package random

import (
	"math/rand"
	"time"
)

type Picker struct {
	rand *rand.Rand
}

// New returns a Picker seeded with seed, or with the current time when seed
// is zero.
func New(seed int64) *Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Picker{rand: rand.New(rand.NewSource(seed))}
}

func (picker *Picker) Pick(min, max int) int {
	return min + picker.rand.Intn(max-min+1)
}
