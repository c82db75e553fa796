// Package identity is the client for the external identity provider holding
// login accounts. Account ids are distinct from profile document ids; the
// users collection links the two through its accountId attribute.
package identity

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("account not found")

type Account struct {
	ID     string
	Email  string
	Name   string
	Active bool
}

type Provider interface {
	Get(ctx context.Context, id string) (*Account, error)
	List(ctx context.Context, search string) ([]Account, error)
	UpdateStatus(ctx context.Context, id string, active bool) error
	UpdatePassword(ctx context.Context, id, password string) error
	Delete(ctx context.Context, id string) error
}
