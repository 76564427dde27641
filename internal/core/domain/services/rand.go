package services

import "math/rand/v2"

// systemRand backs Rand with the top-level math/rand/v2 functions. Unlike a
// *rand.Rand instance, these are safe for concurrent use, so one value can be
// shared between request handlers and the lifecycle job.
type systemRand struct{}

func (systemRand) Float64() float64 { return rand.Float64() }

func (systemRand) IntN(n int) int { return rand.IntN(n) }

// SystemRand returns a Rand safe for concurrent use across goroutines.
func SystemRand() Rand {
	return systemRand{}
}
