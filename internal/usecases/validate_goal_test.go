package usecases

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/financialpeak/goalcoach/internal/domain"
	domain_mocks "github.com/financialpeak/goalcoach/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var financialPhraseSet = func() map[string]bool {
	set := make(map[string]bool, len(domain.FinancialGoalPhrases))
	for _, phrase := range domain.FinancialGoalPhrases {
		set[phrase] = true
	}
	return set
}()

// clusterVector maps phrases onto two well-separated clusters so the
// classifier has clean training data: financial phrases near one axis,
// everything else near the other. The jitter keeps samples distinct.
func clusterVector(phrase string) []float64 {
	jitter := 0.01 * float64(len(phrase)%7)
	if financialPhraseSet[phrase] {
		return []float64{2 + jitter, jitter, 0.2, 0}
	}
	return []float64{jitter, 2 + jitter, 0, 0.2}
}

// newTrainedValidator warms a validator up against an encoder that embeds
// every phrase with clusterVector.
func newTrainedValidator(t *testing.T) (*ValidateGoalImpl, *domain_mocks.MockSemanticEncoder) {
	encoder := domain_mocks.NewMockSemanticEncoder(t)
	encoder.EXPECT().VectorizePhrase(mock.Anything, "embeddinggemma", mock.Anything).RunAndReturn(
		func(_ context.Context, _ string, phrase string) (domain.EmbeddingVector, error) {
			return domain.EmbeddingVector{Vector: clusterVector(phrase), TotalTokens: 8}, nil
		},
	)

	v := NewValidateGoalImpl(encoder, "embeddinggemma", log.New(io.Discard, "", 0))
	require.NoError(t, v.Warmup(context.Background()))
	require.True(t, v.Trained())
	return v, encoder
}

func TestValidateGoalImpl_Execute_MinWords(t *testing.T) {
	// No encoder expectations: goals below the word minimum must be rejected
	// before anything is embedded.
	encoder := domain_mocks.NewMockSemanticEncoder(t)
	v := NewValidateGoalImpl(encoder, "embeddinggemma", log.New(io.Discard, "", 0))

	for name, goalText := range map[string]string{
		"empty":      "",
		"one-word":   "save",
		"two-words":  "save money",
		"whitespace": "   \t  ",
	} {
		t.Run(name, func(t *testing.T) {
			result, err := v.Execute(context.Background(), goalText)
			assert.NoError(t, err)
			assert.False(t, result.IsValid)
			assert.Zero(t, result.Confidence)
			assert.Equal(t, domain.GoalValidationMode_Rejected, result.Mode)
			assert.Equal(t, []string{suggestionMinWords}, result.Suggestions)
		})
	}
}

func TestValidateGoalImpl_Execute_Classifier(t *testing.T) {
	tests := map[string]struct {
		goalText string
		valid    bool
	}{
		"corpus-goal-is-valid": {
			goalText: "I want to save $5000 for an emergency fund within 6 months",
			valid:    true,
		},
		"unrelated-goal-is-invalid": {
			goalText: "I want to learn how to play piano",
			valid:    false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v, encoder := newTrainedValidator(t)
			encoder.EXPECT().VectorizeGoal(mock.Anything, "embeddinggemma", tt.goalText).Return(
				domain.EmbeddingVector{Vector: clusterVector(tt.goalText), TotalTokens: 12}, nil,
			)

			result, err := v.Execute(context.Background(), tt.goalText)
			assert.NoError(t, err)
			assert.Equal(t, domain.GoalValidationMode_Classifier, result.Mode)
			assert.Equal(t, tt.valid, result.IsValid)
			if tt.valid {
				assert.Greater(t, result.Confidence, ValidConfidenceThreshold)
				assert.Empty(t, result.Suggestions)
			} else {
				assert.Less(t, result.Confidence, ValidConfidenceThreshold)
				assert.NotEmpty(t, result.Suggestions)
			}
		})
	}
}

func TestValidateGoalImpl_Execute_EmbeddingFailures(t *testing.T) {
	goalText := "save more money every month"

	tests := map[string]struct {
		embedding domain.EmbeddingVector
		embedErr  error
	}{
		"encoder-error": {
			embedErr: assert.AnError,
		},
		"zero-vector": {
			embedding: domain.EmbeddingVector{Vector: []float64{0, 0, 0, 0}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v, encoder := newTrainedValidator(t)
			encoder.EXPECT().VectorizeGoal(mock.Anything, "embeddinggemma", goalText).
				Return(tt.embedding, tt.embedErr)

			result, err := v.Execute(context.Background(), goalText)
			assert.NoError(t, err)
			assert.False(t, result.IsValid)
			assert.Equal(t, domain.GoalValidationMode_Rejected, result.Mode)
			assert.Equal(t, []string{suggestionUnprocessed}, result.Suggestions)
		})
	}
}

func TestValidateGoalImpl_Execute_SimilarityFallback(t *testing.T) {
	goalText := "build up my investment portfolio"

	tests := map[string]struct {
		vector        []float64
		expectedValid bool
		expectedSugg  []string
		minConfidence float64
	}{
		"close-to-financial-corpus": {
			vector:        []float64{0.9, 0.1},
			expectedValid: true,
			minConfidence: ValidConfidenceThreshold,
		},
		"close-to-unrelated-corpus": {
			vector:        []float64{0.1, 0.9},
			expectedValid: false,
			expectedSugg:  []string{suggestionUnrelated},
		},
		"between-the-corpora": {
			vector:        []float64{0.6, 0.8},
			expectedValid: false,
			expectedSugg:  []string{suggestionMoreSpecific},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			encoder := domain_mocks.NewMockSemanticEncoder(t)
			encoder.EXPECT().VectorizeGoal(mock.Anything, "embeddinggemma", goalText).Return(
				domain.EmbeddingVector{Vector: tt.vector, TotalTokens: 10}, nil,
			)

			// An untrained validator with reference embeddings scores by
			// cosine similarity against the corpora.
			v := NewValidateGoalImpl(encoder, "embeddinggemma", log.New(io.Discard, "", 0))
			v.financialRefs = [][]float64{{1, 0}}
			v.unrelatedRefs = [][]float64{{0, 1}}
			require.False(t, v.Trained())

			result, err := v.Execute(context.Background(), goalText)
			assert.NoError(t, err)
			assert.Equal(t, domain.GoalValidationMode_Similarity, result.Mode)
			assert.Equal(t, tt.expectedValid, result.IsValid)
			assert.Equal(t, tt.expectedSugg, result.Suggestions)
			if tt.minConfidence > 0 {
				assert.Greater(t, result.Confidence, tt.minConfidence)
			}
		})
	}
}

func TestValidateGoalImpl_Execute_NoReferenceEmbeddings(t *testing.T) {
	goalText := "build up my investment portfolio"

	encoder := domain_mocks.NewMockSemanticEncoder(t)
	encoder.EXPECT().VectorizeGoal(mock.Anything, "embeddinggemma", goalText).Return(
		domain.EmbeddingVector{Vector: []float64{0.5, 0.5}, TotalTokens: 10}, nil,
	)

	v := NewValidateGoalImpl(encoder, "embeddinggemma", log.New(io.Discard, "", 0))

	result, err := v.Execute(context.Background(), goalText)
	assert.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.Equal(t, domain.GoalValidationMode_Rejected, result.Mode)
	assert.Equal(t, []string{suggestionUnprocessed}, result.Suggestions)
}

func TestValidateGoalImpl_Warmup(t *testing.T) {
	t.Run("embed-error-aborts-warmup", func(t *testing.T) {
		encoder := domain_mocks.NewMockSemanticEncoder(t)
		encoder.EXPECT().VectorizePhrase(mock.Anything, "embeddinggemma", mock.Anything).
			Return(domain.EmbeddingVector{}, assert.AnError)

		v := NewValidateGoalImpl(encoder, "embeddinggemma", log.New(io.Discard, "", 0))
		err := v.Warmup(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, v.Trained())
	})

	t.Run("zero-embeddings-are-skipped", func(t *testing.T) {
		encoder := domain_mocks.NewMockSemanticEncoder(t)
		encoder.EXPECT().VectorizePhrase(mock.Anything, "embeddinggemma", mock.Anything).RunAndReturn(
			func(_ context.Context, _ string, phrase string) (domain.EmbeddingVector, error) {
				if phrase == domain.FinancialGoalPhrases[0] {
					return domain.EmbeddingVector{Vector: []float64{0, 0, 0, 0}}, nil
				}
				return domain.EmbeddingVector{Vector: clusterVector(phrase), TotalTokens: 8}, nil
			},
		)

		v := NewValidateGoalImpl(encoder, "embeddinggemma", log.New(io.Discard, "", 0))
		require.NoError(t, v.Warmup(context.Background()))
		assert.True(t, v.Trained())
		assert.Len(t, v.financialRefs, len(domain.FinancialGoalPhrases)-1)
		assert.Len(t, v.unrelatedRefs, len(domain.UnrelatedPhrases))
	})
}

func TestInitValidateGoal_Initialize(t *testing.T) {
	encoder := domain_mocks.NewMockSemanticEncoder(t)
	encoder.EXPECT().VectorizePhrase(mock.Anything, "embeddinggemma", mock.Anything).RunAndReturn(
		func(_ context.Context, _ string, phrase string) (domain.EmbeddingVector, error) {
			return domain.EmbeddingVector{Vector: clusterVector(phrase), TotalTokens: 8}, nil
		},
	)

	ivg := InitValidateGoal{
		Encoder: encoder,
		Logger:  log.New(io.Discard, "", 0),
		Model:   "embeddinggemma",
	}

	ctx, err := ivg.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registeredVg, err := depend.Resolve[ValidateGoal]()
	assert.NoError(t, err)
	assert.NotNil(t, registeredVg)
}
