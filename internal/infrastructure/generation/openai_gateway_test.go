package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/draftly/backend/internal/domain/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *OpenAIGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewOpenAIGateway(Config{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	}, zap.NewNop())
}

func chatCompletionResponse(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

func TestGenerate_Success(t *testing.T) {
	var captured map[string]any
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(chatCompletionResponse("# Proposal for Acme Corp\n\nContent.")))
	})

	result, err := gateway.Generate(context.Background(), document.GenerationRequest{
		Type:   document.TypeProposal,
		Prompt: "Create a proposal for Acme Corp",
	})

	require.NoError(t, err)
	assert.Equal(t, "# Proposal for Acme Corp\n\nContent.", result.Content)
	assert.False(t, result.Degraded())

	assert.Equal(t, "gpt-4o", captured["model"])
	assert.InDelta(t, 0.3, captured["temperature"].(float64), 1e-9)
	assert.EqualValues(t, 2500, captured["max_tokens"])

	messages := captured["messages"].([]any)
	require.Len(t, messages, 2)
	system := messages[0].(map[string]any)
	assert.Equal(t, "system", system["role"])
	assert.Contains(t, system["content"], "expert business document writer")
	assert.Contains(t, system["content"], "For proposals:")
}

func TestGenerate_QuotaExhaustedFallsBack(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "insufficient_quota",
				"message": "You exceeded your current quota, please check your plan and billing details.",
			},
		})
	})

	result, err := gateway.Generate(context.Background(), document.GenerationRequest{
		Type:   document.TypeProposal,
		Prompt: "Create a proposal for Acme Corp",
		Fallback: document.FallbackPayload{
			"clientName": "Acme Corp",
			"price":      "$5,000.00",
		},
	})

	require.NoError(t, err)
	assert.True(t, result.Degraded())
	assert.Equal(t, QuotaWarning, result.Warning)
	assert.Contains(t, result.Content, "# Proposal for Acme Corp")
	assert.Contains(t, result.Content, "Estimated Cost: $5,000.00")
}

func TestGenerate_ServerErrorIsGenerationError(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "server_error",
				"message": "The server had an error",
			},
		})
	})

	result, err := gateway.Generate(context.Background(), document.GenerationRequest{
		Type:   document.TypeEmail,
		Prompt: "Create an onboarding email",
	})

	assert.Nil(t, result)
	var genErr *document.GenerationError
	assert.ErrorAs(t, err, &genErr)
}

func TestGenerate_SingleRequestPerCall(t *testing.T) {
	var calls int
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "server_error",
				"message": "The server had an error",
			},
		})
	})

	_, err := gateway.Generate(context.Background(), document.GenerationRequest{
		Type:   document.TypeProposal,
		Prompt: "Create a proposal",
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestGenerate_EmptyContentIsGenerationError(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatCompletionResponse("   "))
	})

	_, err := gateway.Generate(context.Background(), document.GenerationRequest{
		Type:   document.TypeInvoice,
		Prompt: "Create an invoice",
	})

	var genErr *document.GenerationError
	assert.ErrorAs(t, err, &genErr)
}

func TestSystemMessageFor(t *testing.T) {
	assert.Contains(t, systemMessageFor(document.TypeEmail), "For emails:")
	assert.Contains(t, systemMessageFor(document.TypeInvoice), "For invoices:")
	assert.Equal(t, baseSystemMessage, systemMessageFor(document.Type("brochure")))
}
