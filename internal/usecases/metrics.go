package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter = otel.Meter("usecases")

	LLMTokensUsed   metric.Int64Counter
	GoalValidations metric.Int64Counter
	TaskGenerations metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (chat + embeddings)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	GoalValidations, err = meter.Int64Counter(
		"goal_validations_total",
		metric.WithDescription("Goal validation outcomes"),
	)
	if err != nil {
		panic(err)
	}

	TaskGenerations, err = meter.Int64Counter(
		"task_generations_total",
		metric.WithDescription("Task generation outcomes by source"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordLLMTokensEmbedding records the number of tokens used in an embedding operation.
func RecordLLMTokensEmbedding(ctx context.Context, totalTokens int) {
	LLMTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("token_type", "embedding"),
	))
}

// RecordGoalValidation records one goal validation outcome.
func RecordGoalValidation(ctx context.Context, valid bool, mode string) {
	GoalValidations.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("valid", valid),
		attribute.String("mode", mode),
	))
}

// RecordTaskGeneration records which path answered a task generation request.
func RecordTaskGeneration(ctx context.Context, source string) {
	TaskGenerations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source),
	))
}
