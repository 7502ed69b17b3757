package usecases

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/financialpeak/goalcoach/internal/classifier"
	"github.com/financialpeak/goalcoach/internal/common"
	"github.com/financialpeak/goalcoach/internal/domain"
	"github.com/financialpeak/goalcoach/internal/telemetry"
)

// Empirical thresholds carried over from the original validator. They are
// named here rather than inlined so tuning stays in one place.
const (
	// ValidConfidenceThreshold is the probability above which a goal is
	// accepted, on both the classifier and the similarity path.
	ValidConfidenceThreshold = 0.5
	// ClassifierUnrelatedThreshold marks scores below which the classifier
	// considers a goal unrelated to finance rather than merely vague.
	ClassifierUnrelatedThreshold = 0.2
	// SimilarityUnrelatedThreshold is the equivalent cutoff for the cosine
	// similarity fallback.
	SimilarityUnrelatedThreshold = 0.3
)

const (
	suggestionMinWords     = "A goal must be at least 3 words. Describe what you want to achieve financially."
	suggestionUnrelated    = "Your goal seems unrelated to financial matters. Consider focusing on savings, investments, budgeting, or debt management."
	suggestionMoreSpecific = "Your goal has some financial aspects but could be more specific. Try incorporating terms like 'save', 'invest', or 'budget'."
	suggestionUnprocessed  = "Your goal could not be processed. Try rephrasing it using concrete financial terms."
)

// ValidateGoal is the use case interface for validating a goal statement.
type ValidateGoal interface {
	Execute(ctx context.Context, goalText string) (domain.GoalValidation, error)
}

// ValidateGoalImpl owns the trained classifier parameters and the reference
// embeddings. Both are written once during Warmup and are read-only
// afterward, so one instance serves concurrent requests.
type ValidateGoalImpl struct {
	encoder domain.SemanticEncoder
	model   string
	logger  *log.Logger

	net           *classifier.Network
	financialRefs [][]float64
	unrelatedRefs [][]float64
}

// NewValidateGoalImpl creates an untrained validator. Call Warmup before
// serving requests; until then every goal is scored by the similarity
// fallback, which itself needs Warmup to have embedded the corpus.
func NewValidateGoalImpl(encoder domain.SemanticEncoder, model string, logger *log.Logger) *ValidateGoalImpl {
	return &ValidateGoalImpl{
		encoder: encoder,
		model:   model,
		logger:  logger,
	}
}

// Warmup embeds the reference corpus and trains the classifier. It is a
// blocking, CPU-bound pass that must finish before validation requests are
// served. A training failure is not fatal: the validator keeps the reference
// embeddings and degrades to similarity scoring.
func (v *ValidateGoalImpl) Warmup(ctx context.Context) error {
	var err error
	v.financialRefs, err = v.embedPhrases(ctx, domain.FinancialGoalPhrases)
	if err != nil {
		return fmt.Errorf("failed to embed financial reference corpus: %w", err)
	}
	v.unrelatedRefs, err = v.embedPhrases(ctx, domain.UnrelatedPhrases)
	if err != nil {
		return fmt.Errorf("failed to embed unrelated reference corpus: %w", err)
	}

	samples := make([][]float64, 0, len(v.financialRefs)+len(v.unrelatedRefs))
	labels := make([]float64, 0, cap(samples))
	for _, ref := range v.financialRefs {
		samples = append(samples, ref)
		labels = append(labels, 1)
	}
	for _, ref := range v.unrelatedRefs {
		samples = append(samples, ref)
		labels = append(labels, 0)
	}

	net, err := classifier.Train(samples, labels, classifier.DefaultConfig())
	if err != nil {
		v.logger.Printf("ValidateGoal: classifier training failed, falling back to similarity scoring: %v", err)
		return nil
	}
	v.net = net
	return nil
}

// Trained reports whether the classifier network is available.
func (v *ValidateGoalImpl) Trained() bool {
	return v.net != nil
}

// Execute validates one goal statement. It always returns a structured
// result for any input; errors are reserved for conditions no path can
// recover from, which currently do not exist.
func (v *ValidateGoalImpl) Execute(ctx context.Context, goalText string) (domain.GoalValidation, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	// Precondition: runs before any model is consulted.
	if domain.GoalWordCount(goalText) < domain.MinGoalWords {
		return v.record(spanCtx, domain.GoalValidation{
			Suggestions: []string{suggestionMinWords},
			Mode:        domain.GoalValidationMode_Rejected,
		}), nil
	}

	emb, err := v.encoder.VectorizeGoal(spanCtx, v.model, goalText)
	if err != nil {
		// No embedding means neither the classifier nor the similarity
		// fallback can score anything; degrade to a rejection.
		v.logger.Printf("ValidateGoal: embedding failed, rejecting goal: %v", err)
		telemetry.RecordErrorAndStatus(span, err)
		return v.record(spanCtx, domain.GoalValidation{
			Suggestions: []string{suggestionUnprocessed},
			Mode:        domain.GoalValidationMode_Rejected,
		}), nil
	}
	RecordLLMTokensEmbedding(spanCtx, emb.TotalTokens)

	if emb.IsZero() {
		return v.record(spanCtx, domain.GoalValidation{
			Suggestions: []string{suggestionUnprocessed},
			Mode:        domain.GoalValidationMode_Rejected,
		}), nil
	}

	if v.net != nil {
		if result, ok := v.classify(emb.Vector); ok {
			return v.record(spanCtx, result), nil
		}
	}
	return v.record(spanCtx, v.scoreBySimilarity(emb.Vector)), nil
}

// classify scores the embedding with the trained network. The boolean is
// false when the network cannot score this vector (dimension drift between
// the corpus embeddings and the request embedding).
func (v *ValidateGoalImpl) classify(vec []float64) (domain.GoalValidation, bool) {
	p, err := v.net.Predict(vec)
	if err != nil {
		v.logger.Printf("ValidateGoal: classifier unavailable for this input: %v", err)
		return domain.GoalValidation{}, false
	}

	result := domain.GoalValidation{
		IsValid:    p > ValidConfidenceThreshold,
		Confidence: p,
		Mode:       domain.GoalValidationMode_Classifier,
	}
	if !result.IsValid {
		if p < ClassifierUnrelatedThreshold {
			result.Suggestions = []string{suggestionUnrelated}
		} else {
			result.Suggestions = []string{suggestionMoreSpecific}
		}
	}
	return result, true
}

// scoreBySimilarity is the fallback path: nearest-neighbor cosine similarity
// against both reference sets. It never fails; inputs nothing can be
// compared against degrade to a rejection.
func (v *ValidateGoalImpl) scoreBySimilarity(vec []float64) domain.GoalValidation {
	maxFinancial, okF := common.MaxSimilarity(vec, v.financialRefs)
	maxUnrelated, okU := common.MaxSimilarity(vec, v.unrelatedRefs)
	if !okF && !okU {
		return domain.GoalValidation{
			Suggestions: []string{suggestionUnprocessed},
			Mode:        domain.GoalValidationMode_Rejected,
		}
	}

	confidence := maxFinancial
	if confidence < 0 {
		confidence = 0
	}

	result := domain.GoalValidation{
		IsValid:    okF && maxFinancial > maxUnrelated,
		Confidence: confidence,
		Mode:       domain.GoalValidationMode_Similarity,
	}
	if !result.IsValid {
		if maxFinancial < SimilarityUnrelatedThreshold {
			result.Suggestions = []string{suggestionUnrelated}
		} else {
			result.Suggestions = []string{suggestionMoreSpecific}
		}
	}
	return result
}

// embedPhrases vectorizes one reference set, skipping phrases that embed to
// a zero vector.
func (v *ValidateGoalImpl) embedPhrases(ctx context.Context, phrases []string) ([][]float64, error) {
	refs := make([][]float64, 0, len(phrases))
	for _, phrase := range phrases {
		emb, err := v.encoder.VectorizePhrase(ctx, v.model, phrase)
		if err != nil {
			return nil, fmt.Errorf("failed to embed %q: %w", phrase, err)
		}
		RecordLLMTokensEmbedding(ctx, emb.TotalTokens)
		if emb.IsZero() {
			v.logger.Printf("ValidateGoal: skipping reference phrase with zero embedding: %q", phrase)
			continue
		}
		refs = append(refs, emb.Vector)
	}
	return refs, nil
}

func (v *ValidateGoalImpl) record(ctx context.Context, result domain.GoalValidation) domain.GoalValidation {
	RecordGoalValidation(ctx, result.IsValid, string(result.Mode))
	return result
}

// InitValidateGoal initializes the ValidateGoal use case. Training runs here
// so the one-time pass completes before any request is served; a warmup
// failure leaves the validator registered in its degraded mode instead of
// failing boot.
type InitValidateGoal struct {
	Encoder domain.SemanticEncoder `resolve:""`
	Logger  *log.Logger            `resolve:""`
	Model   string                 `config:"LLM_EMBEDDING_MODEL" default:"embeddinggemma"`
}

// Initialize trains and registers the ValidateGoal use case implementation.
func (ivg InitValidateGoal) Initialize(ctx context.Context) (context.Context, error) {
	validator := NewValidateGoalImpl(ivg.Encoder, ivg.Model, ivg.Logger)
	if err := validator.Warmup(ctx); err != nil {
		ivg.Logger.Printf("ValidateGoal: warmup failed, serving degraded validations: %v", err)
	}
	depend.Register[ValidateGoal](validator)
	return ctx, nil
}
