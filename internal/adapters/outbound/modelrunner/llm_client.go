package modelrunner

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/financialpeak/goalcoach/internal/domain"
	"github.com/financialpeak/goalcoach/internal/telemetry"
)

// LLMClient adapts APIClient to domain.LLMClient and domain.SemanticEncoder.
// An unconfigured endpoint is represented by the adapter itself: calls return
// domain.ErrNotConfigured instead of hitting the network.
type LLMClient struct {
	client     APIClient
	configured bool
}

// NewLLMClientAdapter creates a new adapter.
func NewLLMClientAdapter(client APIClient, configured bool) LLMClient {
	return LLMClient{client: client, configured: configured}
}

// Configured implements domain.LLMClient.
func (a LLMClient) Configured() bool {
	return a.configured
}

// Chat implements domain.LLMClient.
func (a LLMClient) Chat(ctx context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if !a.configured {
		return domain.LLMChatResponse{}, domain.ErrNotConfigured
	}

	adapterReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]ChatMessage, len(req.Messages)),
	}
	for i, msg := range req.Messages {
		adapterReq.Messages[i] = ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	resp, err := a.client.Chat(spanCtx, adapterReq)
	if err != nil {
		err = classifyServiceError(err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LLMChatResponse{}, err
	}

	if len(resp.Choices) == 0 {
		err := domain.NewExternalServiceErr("no choices in response", false)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LLMChatResponse{}, err
	}

	out := domain.LLMChatResponse{
		Content: resp.Choices[0].Message.Content,
	}
	if resp.Usage != nil {
		out.Usage = domain.LLMUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// VectorizeGoal implements domain.SemanticEncoder.
func (a LLMClient) VectorizeGoal(ctx context.Context, model, goalText string) (domain.EmbeddingVector, error) {
	return a.embed(ctx, model, prompterFor(model).GoalPrompt(goalText))
}

// VectorizePhrase implements domain.SemanticEncoder.
func (a LLMClient) VectorizePhrase(ctx context.Context, model, phrase string) (domain.EmbeddingVector, error) {
	return a.embed(ctx, model, prompterFor(model).PhrasePrompt(phrase))
}

func (a LLMClient) embed(ctx context.Context, model, input string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if !a.configured {
		return domain.EmbeddingVector{}, domain.ErrNotConfigured
	}

	resp, err := a.client.Embeddings(spanCtx, EmbeddingsRequest{
		Model: model,
		Input: input,
	})
	if err != nil {
		err = classifyServiceError(err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}

	if len(resp.Data) == 0 {
		err := domain.NewExternalServiceErr("no embedding in response", false)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}

	return domain.EmbeddingVector{
		Vector:      resp.Data[0].Embedding,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

// classifyServiceError converts transport errors into domain errors, marking
// quota/rate-limit replies so callers can log them apart.
func classifyServiceError(err error) error {
	var se *statusError
	if errors.As(err, &se) {
		quota := se.status == http.StatusTooManyRequests ||
			strings.Contains(se.body, "insufficient_quota") ||
			strings.Contains(strings.ToLower(se.body), "quota")
		return domain.NewExternalServiceErr(se.Error(), quota)
	}
	return domain.NewExternalServiceErr(err.Error(), false)
}

// InitLLMClient initializes the model-server client and registers it as both
// the chat client and the semantic encoder. A host of "-" disables the
// client; the task generator then answers with its deterministic fallback
// and the goal validator serves rejections.
type InitLLMClient struct {
	HttpClient *http.Client `resolve:""`
	LLMHost    string       `config:"LLM_MODEL_HOST" default:"-"`
	APIKey     string       `config:"LLM_API_KEY" default:""`
}

// Initialize registers the LLMClient.
func (i InitLLMClient) Initialize(ctx context.Context) (context.Context, error) {
	configured := i.LLMHost != "" && i.LLMHost != "-"
	adapter := NewLLMClientAdapter(NewAPIClient(i.LLMHost, i.APIKey, i.HttpClient), configured)
	depend.Register[domain.LLMClient](adapter)
	depend.Register[domain.SemanticEncoder](adapter)
	return ctx, nil
}
