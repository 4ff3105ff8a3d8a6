package status

import (
	"math"
	"sync/atomic"
)

// RateSmoothing is the weight of each new sample in Rate
const RateSmoothing = 0.1

// Rate is an exponentially smoothed float64 safe for concurrent readers
// Zero value is ready to use; a zero reading means no sample yet and the next sample seeds it
type Rate struct {
	bits atomic.Uint64
}

// Observe folds a sample into the smoothed value
func (r *Rate) Observe(sample float64) {
	for {
		old := r.bits.Load()
		next := sample
		if prev := math.Float64frombits(old); prev != 0 {
			next = prev + RateSmoothing*(sample-prev)
		}
		if r.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return
		}
	}
}

// Value loads the smoothed value
func (r *Rate) Value() float64 {
	return math.Float64frombits(r.bits.Load())
}
