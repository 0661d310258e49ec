package kmeans

// ValidSeeds reports whether value is a valid seed list for a dataset of the given size.
//
// A valid seed list is an []int whose elements are indices in [0, size) with no
// index appearing twice. Any other container kind (arrays, []int64, ...) is rejected.
// size must be positive.
func ValidSeeds(value any, size int) bool {
	if size <= 0 {
		return false
	}

	seeds, ok := value.([]int)
	if !ok {
		return false
	}

	seen := make(map[int]struct{}, len(seeds))
	for _, s := range seeds {
		if s < 0 || s >= size {
			return false
		}
		if _, dup := seen[s]; dup {
			return false
		}
		seen[s] = struct{}{}
	}

	return true
}
