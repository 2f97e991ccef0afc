package gacha

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDraw reports a RandomSource producing a value outside [0, 1).
// The engine treats this as an internal failure and aborts the batch.
var ErrInvalidDraw = errors.New("random source returned value outside [0,1)")

// uniform reads one draw from src and rejects out-of-range results, so a
// misbehaving injected source surfaces as an error instead of skewed rates.
func uniform(src RandomSource) (float64, error) {
	u := src.Float64()
	if math.IsNaN(u) || u < 0 || u >= 1 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDraw, u)
	}
	return u, nil
}
