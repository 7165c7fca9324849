package objectstore

import (
	"context"
	"errors"
)

// ErrDisabled is returned when no object store backend is configured.
var ErrDisabled = errors.New("objectstore: no backend configured")

// Disabled is the Store used when no bucket is configured. Every call fails
// with ErrDisabled.
type Disabled struct{}

func (Disabled) Store(ctx context.Context, data []byte, contentType string) (*Object, error) {
	return nil, ErrDisabled
}

func (Disabled) Delete(ctx context.Context, id string) error {
	return ErrDisabled
}
