package services

import (
	"context"
	"crypto/rand"
	"fmt"

	"canteen/internal/core/domain/model/order"
)

// PublicIDChecker is the slice of the order repository the allocator
// needs: an existence check for a candidate token among retained orders.
type PublicIDChecker interface {
	ExistsWithPublicID(ctx context.Context, publicID string) (bool, error)
}

// PublicIDAllocator is a domain service that allocates the short
// human-facing order tokens.
//
// Key responsibilities:
//   - Drawing 4-character candidates from the public token alphabet
//   - Verifying each candidate against the store before handing it out
//   - Retrying on collision until a free token is found
//
// The token space (36^4) is large relative to the number of retained
// orders, so collisions are rare and the retry loop is short in
// practice. A store failure is not retried: the allocator never returns
// a token whose uniqueness it could not check.
type PublicIDAllocator struct {
	checker PublicIDChecker
}

// NewPublicIDAllocator creates an allocator backed by the given
// existence checker.
func NewPublicIDAllocator(checker PublicIDChecker) PublicIDAllocator {
	return PublicIDAllocator{checker: checker}
}

// Allocate returns a public token that was free at the moment of the
// store check. Retries only on collision; a store error aborts
// immediately so the caller can surface it as a transient failure.
func (a PublicIDAllocator) Allocate(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("public ID allocation cancelled: %w", err)
		}

		candidate, err := randomPublicID()
		if err != nil {
			return "", fmt.Errorf("failed to generate public ID candidate: %w", err)
		}

		exists, err := a.checker.ExistsWithPublicID(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check public ID uniqueness: %w", err)
		}

		if !exists {
			return candidate, nil
		}
	}
}

// randomPublicID draws one candidate token from the alphabet using
// crypto/rand. Modulo bias over a 36-character alphabet is negligible
// for token allocation.
func randomPublicID() (string, error) {
	buf := make([]byte, order.PublicIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	token := make([]byte, order.PublicIDLength)
	for i, b := range buf {
		token[i] = order.PublicIDCharset[int(b)%len(order.PublicIDCharset)]
	}

	return string(token), nil
}
