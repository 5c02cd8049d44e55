package interfaces

import (
	"context"
	"encoding/json"
)

// VisionRequest is a vision analysis call: up to a handful of image
// references plus the instruction prompt. The client is expected to ask the
// model for JSON output.
type VisionRequest struct {
	ImageRefs []string
	Prompt    string
	MaxTokens int
}

// IVisionClient abstracts the external vision model. Implementations return
// the model's raw JSON payload; interpreting and validating it is the
// caller's job.
type IVisionClient interface {
	AnalyzeImages(ctx context.Context, req VisionRequest) (json.RawMessage, error)
}
