package pose

// Classify reports whether the sample matches the pose: every finger's
// angle must lie within its configured range, inclusive on both ends.
// Invalid samples never match. Pure function, no side effects.
func Classify(def Definition, sample Sample) bool {
	if !sample.Valid {
		return false
	}
	for f, r := range def.Ranges {
		if !r.Contains(sample.Angles[f]) {
			return false
		}
	}
	return true
}
