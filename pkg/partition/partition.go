// Package partition splits an ordered collection into contiguous
// near-equal groups.
//
// The rule: with len items and n groups, every group gets len/n items and
// the first len%n groups get one extra. Groups are contiguous slices of
// the input in original order, so concatenating them reconstructs the
// input exactly and no group differs from another by more than one item.
//
// The scheduler uses this twice: to spread a week's verses across the 7
// days, and (with a fixed block variant, see pkg/schedule) across the 4
// weeks of a cycle.
package partition

// SplitN splits items into n contiguous groups in original order. The
// first len(items)%n groups receive one extra item. When len(items) < n
// the trailing groups are empty, never missing.
//
// n must be positive; the call sites pass fixed cycle constants. n <= 0
// returns nil.
func SplitN[T any](items []T, n int) [][]T {
	if n <= 0 {
		return nil
	}
	base := len(items) / n
	rem := len(items) % n

	groups := make([][]T, n)
	start := 0
	for i := range groups {
		size := base
		if i < rem {
			size++
		}
		end := start + size
		groups[i] = items[start:end:end]
		start = end
	}
	return groups
}
