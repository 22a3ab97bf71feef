package smss

import "sort"

// BruteForce enumerates all n! permutations of ops and returns the one
// minimizing Lmax, breaking ties by the lexicographically smallest
// sequence of global operation indices (spec §4.3 tie-breaking rule).
//
// Permutations are generated in ascending-index lexicographic order, so
// the first permutation achieving the minimum Lmax is kept and later ties
// are discarded — this makes the tie-break fall out of the enumeration
// order rather than needing a separate comparison pass.
//
// Returns ErrTooManyOperations if len(ops) > limit.
//
// Complexity: O(n! * n), intended only for small n (limit is typically
// DefaultBruteForceLimit or less).
func BruteForce(ops []Operation, limit int) (Result, error) {
	n := len(ops)
	if n > limit {
		return Result{}, ErrTooManyOperations
	}
	if n == 0 {
		return Result{Order: nil, Lmax: 0}, nil
	}

	sorted := make([]Operation, n)
	copy(sorted, ops)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	indexOf := make(map[int]int, n)
	for i, o := range ops {
		indexOf[o.Index] = i
	}

	used := make([]bool, n)
	current := make([]int, 0, n)
	best := Result{Lmax: -1}

	var recurse func()
	recurse = func() {
		if len(current) == n {
			lmax := simulate(ops, current, indexOf)
			if best.Lmax < 0 || lmax < best.Lmax {
				best.Lmax = lmax
				best.Order = append([]int(nil), current...)
			}
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			current = append(current, sorted[i].Index)
			recurse()
			current = current[:len(current)-1]
			used[i] = false
		}
	}
	recurse()

	return best, nil
}
