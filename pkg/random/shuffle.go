package random

// Shuffle permutes s in place with the Fisher-Yates algorithm: for each
// suffix, the last position swaps with a uniformly chosen position within the
// suffix. Every permutation of s is equally likely, the pass performs exactly
// len(s)-1 swaps, and sequences of length 0 or 1 are left unchanged.
func Shuffle[T any](r *RNG, s []T) {
	for n := len(s) - 1; n > 0; n-- {
		k := r.intn(n + 1)
		s[k], s[n] = s[n], s[k]
	}
}

// Perm returns a uniformly random permutation of the integers [0, n).
// Non-positive n yields an empty permutation.
func Perm(r *RNG, n int) []int {
	if n <= 0 {
		return nil
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(r, p)
	return p
}
