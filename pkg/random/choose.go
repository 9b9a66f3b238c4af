package random

// One returns one element of items chosen uniformly, each with probability
// 1/len(items). It fails with ErrEmptyInput when items is empty or nil.
func One[T any](r *RNG, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	return items[r.intn(len(items))], nil
}

// Weighted returns one element of items with probability proportional to
// weight(item) / total weight. The weight function is evaluated fresh on each
// pass, never cached; callers with expensive weights should memoize.
//
// It fails with ErrEmptyInput when items is empty and with
// ErrNonPositiveWeight when the total weight is zero or negative. When
// floating-point rounding lets the accumulation scan run off the end without
// crossing the drawn threshold, the last element is returned
// deterministically; that fallback is part of the contract, not an error.
func Weighted[T any](r *RNG, items []T, weight func(T) float64) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyInput
	}

	total := 0.0
	for _, item := range items {
		total += weight(item)
	}
	if total <= 0 {
		return zero, ErrNonPositiveWeight
	}

	target := r.Float64() * total
	acc := 0.0
	for _, item := range items {
		acc += weight(item)
		if acc > target {
			return item, nil
		}
	}
	return items[len(items)-1], nil
}

// Filtered returns one element chosen uniformly among the elements that keep
// admits. It fails with ErrNoMatch when no element passes, including when
// items itself is empty; that distinguishes a filtered-out sequence from the
// ErrEmptyInput of a direct selection.
func Filtered[T any](r *RNG, items []T, keep func(T) bool) (T, error) {
	matched := filter(items, keep)
	if len(matched) == 0 {
		var zero T
		return zero, ErrNoMatch
	}
	return matched[r.intn(len(matched))], nil
}

// FilteredWeighted applies keep first and then performs a weighted selection
// over the admitted elements only; weight is never evaluated for rejected
// elements. Errors follow Filtered for an empty match set and Weighted for a
// non-positive total weight.
func FilteredWeighted[T any](r *RNG, items []T, keep func(T) bool, weight func(T) float64) (T, error) {
	matched := filter(items, keep)
	if len(matched) == 0 {
		var zero T
		return zero, ErrNoMatch
	}
	return Weighted(r, matched, weight)
}

// FilteredOK is the non-failing form of Filtered: it reports ok=false instead
// of ErrNoMatch when nothing passes. The comma-ok result keeps "no match"
// distinguishable from a matched zero value.
func FilteredOK[T any](r *RNG, items []T, keep func(T) bool) (T, bool) {
	v, err := Filtered(r, items, keep)
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// Subset returns count distinct positions of items (drawn without
// replacement) as a uniformly random subset in uniformly random order, using
// a partial Fisher-Yates pass over a copy of the input. It fails with
// ErrNegativeCount when count < 0. When count >= len(items) the whole input
// is returned in random order.
func Subset[T any](r *RNG, items []T, count int) ([]T, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	if count > len(items) {
		count = len(items)
	}

	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < count; i++ {
		j := i + r.intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count], nil
}

func filter[T any](items []T, keep func(T) bool) []T {
	var matched []T
	for _, item := range items {
		if keep(item) {
			matched = append(matched, item)
		}
	}
	return matched
}
