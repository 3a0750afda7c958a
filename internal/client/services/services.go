// Package services contains one thin service per backend resource. Each
// service is pure request/response mapping over the shared HTTP pipeline
// and holds no state of its own.
package services

import (
	"context"
	"net/url"
)

// Backend is the slice of the HTTP pipeline the services need. The real
// implementation is *api.Client; tests can provide a stub.
type Backend interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Patch(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string) error
}
