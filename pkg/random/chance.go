package random

// Chance reports a Bernoulli trial: true with the supplied probability, using
// one uniform draw. Probabilities at or below 0 always report false and
// probabilities at or above 1 always report true; out-of-range inputs are
// clamped, never an error.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}
