package common

import "math"

// CosineSimilarity calculates the cosine similarity between two vectors.
// The boolean is false when either vector is empty, the dimensions differ,
// or either vector has zero magnitude; callers must treat that as "no
// similarity" rather than an error.
func CosineSimilarity(a, b []float64) (float64, bool) {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, false
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// MaxSimilarity returns the highest cosine similarity between the candidate
// and any vector in refs. Reference vectors that cannot be compared (zero
// norm, dimension mismatch) are skipped. The boolean is false when no
// reference produced a comparable score.
func MaxSimilarity(candidate []float64, refs [][]float64) (float64, bool) {
	best := math.Inf(-1)
	found := false
	for _, ref := range refs {
		sim, ok := CosineSimilarity(candidate, ref)
		if !ok {
			continue
		}
		if sim > best {
			best = sim
		}
		found = true
	}
	if !found {
		return 0, false
	}
	return best, true
}
