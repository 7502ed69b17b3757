package modelrunner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/financialpeak/goalcoach/internal/common"
	"github.com/financialpeak/goalcoach/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLLMClientAdapter_Chat(t *testing.T) {
	tests := map[string]struct {
		response     string
		statusCode   int
		req          domain.LLMChatRequest
		expectErr    bool
		expectedResp domain.LLMChatResponse
		validateReq  func(*testing.T, *ChatRequest)
	}{
		"success": {
			response:   `{"choices":[{"message":{"role":"assistant","content":"Hello!"}}],"usage": {"completion_tokens": 10,"prompt_tokens": 10,"total_tokens": 20}}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model: "test-model",
				Messages: []domain.LLMChatMessage{
					{Role: "user", Content: "hi"},
				},
			},
			expectedResp: domain.LLMChatResponse{
				Content: "Hello!",
				Usage:   domain.LLMUsage{PromptTokens: 10, CompletionTokens: 10, TotalTokens: 20},
			},
		},
		"with-params": {
			response:   `{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model:       "test-model",
				Temperature: common.Ptr(0.7),
				MaxTokens:   common.Ptr(1000),
				Messages: []domain.LLMChatMessage{
					{Role: "system", Content: "sys"},
					{Role: "user", Content: "hi"},
				},
			},
			expectedResp: domain.LLMChatResponse{Content: "ok"},
			validateReq: func(t *testing.T, req *ChatRequest) {
				assert.Equal(t, "test-model", req.Model)
				assert.NotNil(t, req.Temperature)
				assert.InDelta(t, 0.7, *req.Temperature, 1e-6)
				assert.NotNil(t, req.MaxTokens)
				assert.Equal(t, 1000, *req.MaxTokens)
				assert.Len(t, req.Messages, 2)
				assert.Equal(t, "system", req.Messages[0].Role)
			},
		},
		"no-choices": {
			response:   `{"choices":[]}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model: "test-model",
				Messages: []domain.LLMChatMessage{
					{Role: "user", Content: "hi"},
				},
			},
			expectErr: true,
		},
		"server-error": {
			response:   `Internal Server Error`,
			statusCode: http.StatusInternalServerError,
			req: domain.LLMChatRequest{
				Model: "test-model",
				Messages: []domain.LLMChatMessage{
					{Role: "user", Content: "hi"},
				},
			},
			expectErr: true,
		},
		"invalid-json": {
			response:   `{invalid json}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model: "test-model",
				Messages: []domain.LLMChatMessage{
					{Role: "user", Content: "hi"},
				},
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var capturedReq *ChatRequest

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				if tt.validateReq != nil {
					var req ChatRequest
					json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
					capturedReq = &req
				}

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			client := NewAPIClient(server.URL, "", server.Client())
			adapter := NewLLMClientAdapter(client, true)

			resp, err := adapter.Chat(context.Background(), tt.req)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedResp, resp)

			if tt.validateReq != nil && capturedReq != nil {
				tt.validateReq(t, capturedReq)
			}
		})
	}
}

func TestLLMClientAdapter_Chat_ValidationErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "", server.Client())
	adapter := NewLLMClientAdapter(client, true)

	tests := map[string]struct {
		req domain.LLMChatRequest
	}{
		"no-model":    {req: domain.LLMChatRequest{Messages: []domain.LLMChatMessage{{Role: "user", Content: "hi"}}}},
		"no-messages": {req: domain.LLMChatRequest{Model: "test"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := adapter.Chat(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestLLMClientAdapter_Unconfigured(t *testing.T) {
	// No server: an unconfigured adapter must not attempt any call.
	adapter := NewLLMClientAdapter(NewAPIClient("-", "", nil), false)
	assert.False(t, adapter.Configured())

	_, err := adapter.Chat(context.Background(), domain.LLMChatRequest{
		Model:    "test-model",
		Messages: []domain.LLMChatMessage{{Role: "user", Content: "hi"}},
	})
	assert.ErrorIs(t, err, domain.ErrNotConfigured)

	_, err = adapter.VectorizeGoal(context.Background(), "embeddinggemma", "save more money")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)

	_, err = adapter.VectorizePhrase(context.Background(), "embeddinggemma", "save more money")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestLLMClientAdapter_QuotaClassification(t *testing.T) {
	tests := map[string]struct {
		statusCode  int
		body        string
		expectQuota bool
	}{
		"rate-limited":          {statusCode: http.StatusTooManyRequests, body: "slow down", expectQuota: true},
		"quota-exceeded-body":   {statusCode: http.StatusForbidden, body: `{"error":{"code":"insufficient_quota"}}`, expectQuota: true},
		"quota-word-in-body":    {statusCode: http.StatusPaymentRequired, body: "monthly QUOTA exceeded", expectQuota: true},
		"plain-server-error":    {statusCode: http.StatusInternalServerError, body: "boom", expectQuota: false},
		"unauthorized-no-quota": {statusCode: http.StatusUnauthorized, body: "bad key", expectQuota: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body)) //nolint:errcheck
			}))
			defer server.Close()

			client := NewAPIClient(server.URL, "", server.Client())
			adapter := NewLLMClientAdapter(client, true)

			_, err := adapter.Chat(context.Background(), domain.LLMChatRequest{
				Model:    "test-model",
				Messages: []domain.LLMChatMessage{{Role: "user", Content: "hi"}},
			})

			var svcErr *domain.ExternalServiceErr
			assert.True(t, errors.As(err, &svcErr))
			assert.Equal(t, tt.expectQuota, svcErr.Quota)
		})
	}
}

func TestLLMClientAdapter_Vectorize(t *testing.T) {
	tests := map[string]struct {
		response    string
		statusCode  int
		model       string
		input       string
		expectErr   bool
		expectedVec []float64
	}{
		"success": {
			response: `{
                "model": "embeddinggemma",
                "object": "list",
                "usage": { "prompt_tokens": 6, "total_tokens": 6 },
                "data": [
                    {
                        "embedding": [1.1, 2.2, 3.3],
                        "index": 0,
                        "object": "embedding"
                    }
                ]
            }`,
			statusCode:  http.StatusOK,
			model:       "embeddinggemma",
			input:       "I want to save money",
			expectedVec: []float64{1.1, 2.2, 3.3},
		},
		"no-embedding-data": {
			response: `{
                "model": "embeddinggemma",
                "object": "list",
                "usage": { "prompt_tokens": 6, "total_tokens": 6 },
                "data": []
            }`,
			statusCode: http.StatusOK,
			model:      "embeddinggemma",
			input:      "I want to save money",
			expectErr:  true,
		},
		"server-error": {
			response:   `Internal Server Error`,
			statusCode: http.StatusInternalServerError,
			model:      "embeddinggemma",
			input:      "I want to save money",
			expectErr:  true,
		},
		"invalid-json": {
			response:   `{invalid json}`,
			statusCode: http.StatusOK,
			model:      "embeddinggemma",
			input:      "I want to save money",
			expectErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var capturedReq EmbeddingsRequest

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/embeddings", r.URL.Path)
				json.NewDecoder(r.Body).Decode(&capturedReq) //nolint:errcheck

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			client := NewAPIClient(server.URL, "", server.Client())
			adapter := NewLLMClientAdapter(client, true)

			vec, err := adapter.VectorizeGoal(context.Background(), tt.model, tt.input)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedVec, vec.Vector)
			assert.Equal(t, 6, vec.TotalTokens)
			assert.Equal(t, "task: classification | query: I want to save money", capturedReq.Input)
		})
	}
}

func TestLLMClientAdapter_VectorizePhrase_Prompt(t *testing.T) {
	var capturedReq EmbeddingsRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&capturedReq) //nolint:errcheck
		w.Write([]byte(`{"data":[{"embedding":[0.5],"index":0}],"usage":{"total_tokens":3}}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "", server.Client())
	adapter := NewLLMClientAdapter(client, true)

	_, err := adapter.VectorizePhrase(context.Background(), "embeddinggemma", "pay off my student loans")
	assert.NoError(t, err)
	assert.Equal(t, "title: none | text: pay off my student loans", capturedReq.Input)

	// Models without a prompt convention get the raw text.
	_, err = adapter.VectorizePhrase(context.Background(), "text-embedding-3-small", "pay off my student loans")
	assert.NoError(t, err)
	assert.Equal(t, "pay off my student loans", capturedReq.Input)
}

func TestInitLLMClient_Initialize(t *testing.T) {
	i := InitLLMClient{HttpClient: http.DefaultClient, LLMHost: "-"}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	c, err := depend.Resolve[domain.LLMClient]()
	assert.NotNil(t, c)
	assert.NoError(t, err)
	assert.False(t, c.Configured())

	e, err := depend.Resolve[domain.SemanticEncoder]()
	assert.NotNil(t, e)
	assert.NoError(t, err)
}
