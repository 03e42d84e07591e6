package session

import "context"

//go:generate mockgen -typed=false -destination=mocks/mock_store.go -package=mocks diceroller/internal/session Store

// Store keeps one value per session id.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, bool, error)
	Put(ctx context.Context, id string, v T) error
	// Update replaces the value for id with fn's result, atomically with
	// respect to other calls on the same store. fn receives the zero value
	// and found=false when id is unknown. When fn returns an error nothing
	// is stored.
	Update(ctx context.Context, id string, fn func(v T, found bool) (T, error)) (T, error)
	NewID() string
}
