package domain

import "context"

// ChatCompleter produces a single completion for a prompt. It backs the
// demo /joke route only; the registry core does not depend on it.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
