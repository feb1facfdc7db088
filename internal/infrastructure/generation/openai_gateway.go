package generation

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/draftly/backend/internal/domain/document"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

const (
	defaultModel       = openai.ChatModelGPT4o
	defaultTemperature = 0.3
	defaultMaxTokens   = 2500
)

// baseSystemMessage sets the writing persona shared by all document types
const baseSystemMessage = "You are an expert business document writer with 20 years of experience. Create professional, persuasive, and concise documents in markdown format that are clear, compelling, and actionable. Focus only on delivering substantial, valuable content without any filler text, generic placeholders, or text like '[Your Name]' or '[Insert text here]'. Every sentence should provide specific value. If information for a section is missing, keep it minimal rather than creating generic content."

var systemMessageSuffix = map[document.Type]string{
	document.TypeProposal: " For proposals: Focus on demonstrating a clear understanding of client needs, articulating specific value propositions, and providing concrete next steps. Avoid generic claims and focus on quantifiable benefits where possible. Be direct and concise while maintaining professionalism. Never create placeholder text - if information is missing, omit that section entirely.",
	document.TypeEmail:    " For emails: Be direct, warm and specific with your communication. Each paragraph should contain only essential information. Avoid pleasantries that don't add value. Get to the point quickly while maintaining a professional tone. Never include placeholder text - if a signature field is empty, use a simple closing instead.",
	document.TypeInvoice:  " For invoices: Create clear, structured documents with precise language about services rendered and payment terms. Eliminate any unnecessary text or explanations. Never include placeholder text - ensure all fields are filled with actual data or minimal appropriate content.",
}

// Config holds configuration for the OpenAI gateway
type Config struct {
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int64
	Timeout     time.Duration
	BaseURL     string       // Optional (tests)
	HTTPClient  *http.Client // Optional (tests)
}

// OpenAIGateway generates document content through the OpenAI chat API.
// Quota exhaustion degrades to fallback synthesis instead of failing.
type OpenAIGateway struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int64
	logger      *zap.Logger
}

// NewOpenAIGateway creates a gateway from config
func NewOpenAIGateway(cfg Config, logger *zap.Logger) *OpenAIGateway {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
		// One remote call per generation; failures surface or degrade, never retry
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIGateway{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      logger,
	}
}

// Generate produces markdown content for the request. On quota exhaustion it
// returns fallback-synthesized content with a warning instead of an error.
func (g *OpenAIGateway) Generate(ctx context.Context, req document.GenerationRequest) (*document.GenerationResult, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemMessageFor(req.Type)),
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(g.temperature),
		MaxTokens:   openai.Int(g.maxTokens),
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		if isQuotaError(err) {
			g.logger.Warn("model quota exhausted, synthesizing fallback content",
				zap.String("document_type", string(req.Type)),
				zap.Error(err))
			return &document.GenerationResult{
				Content: Synthesize(req.Type, req.Fallback),
				Warning: QuotaWarning,
			}, nil
		}
		return nil, &document.GenerationError{Message: "model request failed", Err: err}
	}

	if len(resp.Choices) == 0 {
		return nil, &document.GenerationError{Message: "model returned no choices"}
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return nil, &document.GenerationError{Message: "model returned empty content"}
	}

	return &document.GenerationResult{Content: content}, nil
}

func systemMessageFor(docType document.Type) string {
	return baseSystemMessage + systemMessageSuffix[docType]
}

func isQuotaError(err error) bool {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Type == "insufficient_quota" {
		return true
	}
	return apiErr.StatusCode == http.StatusTooManyRequests &&
		strings.Contains(apiErr.Message, "exceeded your current quota")
}

var _ document.Generator = (*OpenAIGateway)(nil)
