package domain

import "context"

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// IsZero returns true when the vector is empty or has zero magnitude, which
// means the text could not be meaningfully embedded.
func (e EmbeddingVector) IsZero() bool {
	for _, v := range e.Vector {
		if v != 0 {
			return false
		}
	}
	return true
}

// SemanticEncoder defines embedding behavior in domain terms. Embeddings are
// deterministic for fixed model weights and are never persisted.
type SemanticEncoder interface {
	// VectorizeGoal generates a semantic vector for a candidate goal
	// statement.
	VectorizeGoal(ctx context.Context, model, goalText string) (EmbeddingVector, error)
	// VectorizePhrase generates a semantic vector for one reference corpus
	// phrase.
	VectorizePhrase(ctx context.Context, model, phrase string) (EmbeddingVector, error)
}
