package document

import (
	"context"
	"fmt"
)

// FallbackPayload carries the structured form fields verbatim so a literal
// document can be synthesized when the model is unavailable
type FallbackPayload map[string]string

// GenerationRequest is the input to the generation gateway
type GenerationRequest struct {
	Type     Type
	Prompt   string
	Fallback FallbackPayload
}

// GenerationResult is the gateway output. Warning is non-empty when the
// content was synthesized from the fallback payload instead of the model.
type GenerationResult struct {
	Content string
	Warning string
}

// Degraded reports whether the result came from the fallback path
func (r *GenerationResult) Degraded() bool {
	return r.Warning != ""
}

// GenerationError indicates the remote model call failed for a reason other
// than quota exhaustion. Nothing may be persisted when it is returned.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Generator is the port to the content generation backend
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error)
}
