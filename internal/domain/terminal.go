package domain

import (
	"context"
	"errors"
)

// TokenReader prompts the operator and captures one whitespace-delimited
// token of input.
type TokenReader interface {
	ReadToken(ctx context.Context, prompt string) (string, error)
	IsInteractive() bool
}

// ErrNoInput is returned by a TokenReader when input ends before any token.
var ErrNoInput = errors.New("no input token")
