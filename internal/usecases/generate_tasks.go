package usecases

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/financialpeak/goalcoach/internal/common"
	"github.com/financialpeak/goalcoach/internal/domain"
	"github.com/financialpeak/goalcoach/internal/telemetry"
	"github.com/google/uuid"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

// Fixed impact estimates for the deterministic fallback tasks.
const (
	fallbackTrackingImpact = 25.00
	fallbackPlanningImpact = 50.00
)

// GenerateTasks is the use case interface for producing daily tasks from a
// validated goal and a spending profile.
type GenerateTasks interface {
	Execute(ctx context.Context, goal string, profile domain.SpendingProfile) (domain.TaskGenerationResult, error)
}

// GenerateTasksImpl is the implementation of the GenerateTasks use case.
type GenerateTasksImpl struct {
	llmClient domain.LLMClient
	model     string
	logger    *log.Logger
}

// NewGenerateTasksImpl creates a new instance of GenerateTasksImpl.
func NewGenerateTasksImpl(c domain.LLMClient, model string, logger *log.Logger) GenerateTasksImpl {
	return GenerateTasksImpl{
		llmClient: c,
		model:     model,
		logger:    logger,
	}
}

// Execute generates 1-3 daily tasks. Unreachable or unconfigured model means
// the deterministic templates answer instead; a reply that cannot be parsed
// yields an empty result with a diagnostic summary. The method never fails
// the request for model-side reasons.
func (gt GenerateTasksImpl) Execute(ctx context.Context, goal string, profile domain.SpendingProfile) (domain.TaskGenerationResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if !gt.llmClient.Configured() {
		gt.logger.Printf("GenerateTasks: no model configured, using fallback tasks")
		return gt.fallbackResult(spanCtx, goal, profile), nil
	}

	messages, err := buildTaskPromptMessages(goal, profile)
	if err != nil {
		return domain.TaskGenerationResult{}, fmt.Errorf("failed to build task prompt: %w", err)
	}

	resp, err := gt.llmClient.Chat(spanCtx, domain.LLMChatRequest{
		Model:       gt.model,
		Messages:    messages,
		Temperature: common.Ptr(0.7),
		MaxTokens:   common.Ptr(1000),
	})
	if err != nil {
		gt.logServiceError(err)
		return gt.fallbackResult(spanCtx, goal, profile), nil
	}
	RecordLLMTokensUsed(spanCtx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	result, err := gt.parseReply(resp.Content)
	if err != nil {
		// A reply we cannot parse is a service-side defect, not
		// unavailability; surface it instead of falling back.
		gt.logger.Printf("GenerateTasks: malformed model reply: %v", err)
		telemetry.RecordErrorAndStatus(span, err)
		RecordTaskGeneration(spanCtx, string(domain.TaskGenerationSource_Malformed))
		return domain.TaskGenerationResult{
			Tasks:           []domain.DailyTask{},
			AnalysisSummary: fmt.Sprintf("The model reply could not be parsed: %v", err),
			Source:          domain.TaskGenerationSource_Malformed,
		}, nil
	}

	RecordTaskGeneration(spanCtx, string(domain.TaskGenerationSource_Model))
	return result, nil
}

// logServiceError distinguishes quota exhaustion from other service errors
// in logging only; both routes fall back identically.
func (gt GenerateTasksImpl) logServiceError(err error) {
	var svcErr *domain.ExternalServiceErr
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		gt.logger.Printf("GenerateTasks: model not configured, using fallback tasks")
	case errors.As(err, &svcErr) && svcErr.Quota:
		gt.logger.Printf("GenerateTasks: model quota/rate limit reached, using fallback tasks: %v", err)
	default:
		gt.logger.Printf("GenerateTasks: model call failed, using fallback tasks: %v", err)
	}
}

// modelTask mirrors the JSON schema the prompt instructs the model to emit.
type modelTask struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	EstimatedImpact float64  `json:"estimated_impact"`
	Difficulty      string   `json:"difficulty"`
	Category        string   `json:"category"`
	ActionableSteps []string `json:"actionable_steps"`
}

type modelReply struct {
	Tasks           []modelTask `json:"tasks"`
	AnalysisSummary string      `json:"analysis_summary"`
}

// parseReply decodes the model output and converts it into domain tasks,
// assigning each a fresh identifier.
func (gt GenerateTasksImpl) parseReply(content string) (domain.TaskGenerationResult, error) {
	var reply modelReply
	decoder := json.NewDecoder(strings.NewReader(content))
	if err := decoder.Decode(&reply); err != nil {
		return domain.TaskGenerationResult{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if len(reply.Tasks) == 0 {
		return domain.TaskGenerationResult{}, errors.New("reply contains no tasks")
	}

	result := domain.TaskGenerationResult{
		Tasks:           make([]domain.DailyTask, 0, len(reply.Tasks)),
		AnalysisSummary: reply.AnalysisSummary,
		Source:          domain.TaskGenerationSource_Model,
	}
	for _, t := range reply.Tasks {
		task := domain.DailyTask{
			ID:              uuid.New(),
			Title:           t.Title,
			Description:     t.Description,
			EstimatedImpact: t.EstimatedImpact,
			Difficulty:      domain.TaskDifficulty(t.Difficulty),
			Category:        domain.TaskCategory(t.Category),
			ActionableSteps: t.ActionableSteps,
		}
		result.Tasks = append(result.Tasks, task)
		result.TotalPotentialImpact += task.EstimatedImpact
	}
	return result, nil
}

//go:embed prompts/daily_tasks.yml
var taskPrompt embed.FS

// taskContext is the structured portion of the prompt context; it is
// marshalled to TOON for compact LLM input.
type taskContext struct {
	Goal                 string                   `json:"goal"`
	TotalMonthlySpending float64                  `json:"total_monthly_spending"`
	TopCategories        []string                 `json:"top_categories"`
	AverageTransaction   float64                  `json:"average_transaction"`
	SavingsOpportunities []taskContextOpportunity `json:"savings_opportunities"`
}

type taskContextOpportunity struct {
	Category         string  `json:"category"`
	CurrentSpending  float64 `json:"current_spending"`
	PotentialSavings float64 `json:"potential_savings"`
}

// buildTaskPromptMessages constructs the LLM messages for task generation.
func buildTaskPromptMessages(goal string, profile domain.SpendingProfile) ([]domain.LLMChatMessage, error) {
	contextBlock, err := marshalTaskContext(goal, profile)
	if err != nil {
		return nil, err
	}

	file, err := taskPrompt.Open("prompts/daily_tasks.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open task prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode task prompt: %w", err)
	}

	for i, msg := range messages {
		if strings.Contains(msg.Content, "%s") {
			msg.Content = fmt.Sprintf(msg.Content, contextBlock)
			messages[i] = msg
		}
	}
	return messages, nil
}

// marshalTaskContext converts the goal and profile into a TOON string for
// LLM input.
func marshalTaskContext(goal string, profile domain.SpendingProfile) (string, error) {
	tc := taskContext{
		Goal:                 goal,
		TotalMonthlySpending: profile.TotalMonthlySpending,
		TopCategories:        profile.TopCategories,
		AverageTransaction:   profile.AverageTransaction,
		SavingsOpportunities: make([]taskContextOpportunity, 0, len(profile.SavingsOpportunities)),
	}
	for _, opp := range profile.SavingsOpportunities {
		tc.SavingsOpportunities = append(tc.SavingsOpportunities, taskContextOpportunity{
			Category:         opp.Category,
			CurrentSpending:  opp.CurrentSpending,
			PotentialSavings: opp.PotentialSavings,
		})
	}

	contextTOON, err := toon.MarshalString(tc, toon.WithLengthMarkers(true))
	if err != nil {
		return "", fmt.Errorf("failed to marshal task context: %w", err)
	}
	return contextTOON, nil
}

// fallbackResult produces up to three deterministic tasks from templates.
func (gt GenerateTasksImpl) fallbackResult(ctx context.Context, goal string, profile domain.SpendingProfile) domain.TaskGenerationResult {
	topCategory := profile.TopCategory("general spending")

	tasks := []domain.DailyTask{
		{
			ID:    uuid.New(),
			Title: "Track Your Daily Spending",
			Description: fmt.Sprintf(
				"Write down every purchase you make today, focusing on the %s category. Use a notebook or phone app to record amounts and reasons for each purchase.",
				topCategory,
			),
			EstimatedImpact: fallbackTrackingImpact,
			Difficulty:      domain.TaskDifficulty_Easy,
			Category:        domain.TaskCategory_Spending,
			ActionableSteps: []string{
				"Start a spending log when you wake up",
				"Record each purchase with amount and category",
				fmt.Sprintf("Pay special attention to %s expenses", topCategory),
				"Review your log before bed",
			},
		},
	}

	if opp, ok := profile.TopOpportunity(); ok {
		tasks = append(tasks, domain.DailyTask{
			ID:    uuid.New(),
			Title: fmt.Sprintf("Reduce %s Spending", opp.Category),
			Description: fmt.Sprintf(
				"You're currently spending $%.2f/month on %s. Today, find one way to cut this expense.",
				opp.CurrentSpending, opp.Category,
			),
			EstimatedImpact: opp.PotentialSavings,
			Difficulty:      domain.TaskDifficulty_Medium,
			Category:        domain.TaskCategory_Saving,
			ActionableSteps: []string{
				fmt.Sprintf("Review your %s expenses from last week", opp.Category),
				"Identify the most expensive or unnecessary item",
				"Find a cheaper alternative or eliminate it for today",
				"Calculate how much you'll save monthly if you stick to this change",
			},
		})
	}

	tasks = append(tasks, domain.DailyTask{
		ID:    uuid.New(),
		Title: "Create Action Plan for Your Goal",
		Description: fmt.Sprintf(
			"Break down your goal '%s' into smaller weekly targets and identify what you need to change starting today.",
			goal,
		),
		EstimatedImpact: fallbackPlanningImpact,
		Difficulty:      domain.TaskDifficulty_Medium,
		Category:        domain.TaskCategory_Planning,
		ActionableSteps: []string{
			"Write down your specific financial goal",
			"Calculate how much you need to save or reduce spending monthly",
			"Identify 3 changes you can make this week",
			"Set up a weekly check-in reminder on your phone",
		},
	})

	var totalImpact float64
	for _, task := range tasks {
		totalImpact += task.EstimatedImpact
	}

	RecordTaskGeneration(ctx, string(domain.TaskGenerationSource_Fallback))
	return domain.TaskGenerationResult{
		Tasks:                tasks,
		TotalPotentialImpact: totalImpact,
		AnalysisSummary: fmt.Sprintf(
			"Generated %d personalized tasks based on your goal '%s' and spending analysis. Focus on %s expenses which show the most opportunity for improvement.",
			len(tasks), goal, topCategory,
		),
		Source: domain.TaskGenerationSource_Fallback,
	}
}

// InitGenerateTasks initializes the GenerateTasks use case.
type InitGenerateTasks struct {
	LLMClient domain.LLMClient `resolve:""`
	Logger    *log.Logger      `resolve:""`
	Model     string           `config:"LLM_TASK_MODEL" default:"gpt-4o-mini"`
}

// Initialize registers the GenerateTasks use case implementation.
func (igt InitGenerateTasks) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GenerateTasks](NewGenerateTasksImpl(igt.LLMClient, igt.Model, igt.Logger))
	return ctx, nil
}
