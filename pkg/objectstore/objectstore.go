// Package objectstore is the opaque binary-object collaborator. The core
// only ever holds the returned url+id pair; it never interprets either.
package objectstore

import "context"

// Object is the opaque reference returned by a successful store.
type Object struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}

// Store persists binary objects and deletes them by id.
type Store interface {
	Store(ctx context.Context, data []byte, contentType string) (*Object, error)
	Delete(ctx context.Context, id string) error
}
