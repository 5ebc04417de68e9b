// Package runctx carries per-run ambient state: the user-entered text a
// format-constraint evaluator needs, threaded through an explicit handle
// created on run start rather than through global mutable state.
package runctx

import (
	"context"

	"github.com/google/uuid"
)

type key int

const handleKey key = 0

// Handle is the explicit per-run channel for ambient evaluation state.
type Handle struct {
	RunID       uuid.UUID
	EnteredText map[string]string // field scope -> user-entered text
}

// NewHandle creates a fresh per-run handle, stamping a RunID for log
// correlation.
func NewHandle() *Handle {
	return &Handle{RunID: uuid.New(), EnteredText: make(map[string]string)}
}

// WithHandle attaches h to ctx.
func WithHandle(ctx context.Context, h *Handle) context.Context {
	return context.WithValue(ctx, handleKey, h)
}

// FromContext retrieves the Handle attached to ctx, if any.
func FromContext(ctx context.Context) (*Handle, bool) {
	h, ok := ctx.Value(handleKey).(*Handle)
	return h, ok
}

// EnteredText returns the entered text for scope from ctx's handle, or ""
// if no handle is attached or the scope has no entry.
func EnteredText(ctx context.Context, scope string) string {
	h, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return h.EnteredText[scope]
}
