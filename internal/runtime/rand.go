package runtime

import (
	"math/rand"
	"time"
)

// Rand is the source of randomness for relief draws and boss-alert rolls.
// It is satisfied by *math/rand.Rand. Implementations need no internal
// locking: the kernel only invokes it while holding the store lock.
type Rand interface {
	Intn(n int) int
}

func newDefaultRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
