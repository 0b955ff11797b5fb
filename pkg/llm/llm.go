// Package llm defines the port to generative text models.
package llm

import "context"

// TextModel is a minimal abstraction over a generative text endpoint.
// It intentionally hides concrete providers to preserve dependency direction.
type TextModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
