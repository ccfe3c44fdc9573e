package service

import "context"

// TextGenerator produces text from a prompt using a generative model.
type TextGenerator interface {
	// GenerateText returns the model's answer to prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
