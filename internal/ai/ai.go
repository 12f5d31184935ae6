// Package ai exposes the external text-generation capability behind a
// single interface. Fallback policy belongs to callers: the classifier
// absorbs failures, the chat endpoint surfaces them.
package ai

import "context"

// Client sends one single-turn prompt and returns the model's text reply.
type Client interface {
	Send(ctx context.Context, prompt, system string) (string, error)
}
