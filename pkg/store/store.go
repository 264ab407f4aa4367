// Package store persists resolved scenes.
//
// A Store archives the output of resolution passes keyed by pass ID, so
// the HTTP API can serve previously resolved scenes. Two backends are
// provided: an in-memory store for tests and single-process use, and a
// MongoDB store for deployments.
package store

import (
	"context"
	"errors"

	"github.com/mengfei0517/robocasa/pkg/scene"
)

// ErrNotFound is returned when no scene exists for the requested pass ID.
var ErrNotFound = errors.New("scene not found")

// Store is the interface all scene archives implement.
type Store interface {
	// Put archives a resolved scene under its pass ID, replacing any
	// previous scene with the same ID.
	Put(ctx context.Context, s *scene.Scene) error

	// Get returns the scene with the given pass ID, or ErrNotFound.
	Get(ctx context.Context, passID string) (*scene.Scene, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
