package services_test

import (
	"sync"
	"testing"
	"time"

	"pizzeria/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestSystemRand(t *testing.T) {
	t.Run("should draw values within the documented ranges", func(t *testing.T) {
		rnd := services.SystemRand()

		for i := 0; i < 100; i++ {
			f := rnd.Float64()
			assert.GreaterOrEqual(t, f, 0.0)
			assert.Less(t, f, 1.0)

			n := rnd.IntN(3)
			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, 3)
		}
	})

	// Exercised with the race detector: one SystemRand is shared between
	// request handlers and the lifecycle job.
	t.Run("should be safe for concurrent use", func(t *testing.T) {
		rnd := services.SystemRand()
		now := time.Now()

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 500; j++ {
					rnd.Float64()
					services.EstimateCompletion(rnd, now, 4)
				}
			}()
		}
		wg.Wait()
	})
}
