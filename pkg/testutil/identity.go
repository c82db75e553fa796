package testutil

import (
	"context"

	"github.com/samplefinder/backend/pkg/identity"
)

// StatusCall records one UpdateStatus invocation including reverts.
type StatusCall struct {
	ID     string
	Active bool
}

// MockIdentityProvider serves accounts from memory. Any func field overrides
// the default behavior for that method.
type MockIdentityProvider struct {
	GetFunc            func(ctx context.Context, id string) (*identity.Account, error)
	ListFunc           func(ctx context.Context, search string) ([]identity.Account, error)
	UpdateStatusFunc   func(ctx context.Context, id string, active bool) error
	UpdatePasswordFunc func(ctx context.Context, id, password string) error
	DeleteFunc         func(ctx context.Context, id string) error

	Accounts    map[string]*identity.Account
	StatusCalls []StatusCall
}

func NewMockIdentityProvider() *MockIdentityProvider {
	return &MockIdentityProvider{Accounts: make(map[string]*identity.Account)}
}

func (p *MockIdentityProvider) Get(ctx context.Context, id string) (*identity.Account, error) {
	if p.GetFunc != nil {
		return p.GetFunc(ctx, id)
	}

	account, ok := p.Accounts[id]
	if !ok {
		return nil, identity.ErrNotFound
	}

	clone := *account
	return &clone, nil
}

func (p *MockIdentityProvider) List(ctx context.Context, search string) ([]identity.Account, error) {
	if p.ListFunc != nil {
		return p.ListFunc(ctx, search)
	}

	var accounts []identity.Account
	for _, account := range p.Accounts {
		accounts = append(accounts, *account)
	}

	return accounts, nil
}

func (p *MockIdentityProvider) UpdateStatus(ctx context.Context, id string, active bool) error {
	p.StatusCalls = append(p.StatusCalls, StatusCall{ID: id, Active: active})
	if p.UpdateStatusFunc != nil {
		return p.UpdateStatusFunc(ctx, id, active)
	}

	account, ok := p.Accounts[id]
	if !ok {
		return identity.ErrNotFound
	}

	account.Active = active
	return nil
}

func (p *MockIdentityProvider) UpdatePassword(ctx context.Context, id, password string) error {
	if p.UpdatePasswordFunc != nil {
		return p.UpdatePasswordFunc(ctx, id, password)
	}

	if _, ok := p.Accounts[id]; !ok {
		return identity.ErrNotFound
	}

	return nil
}

func (p *MockIdentityProvider) Delete(ctx context.Context, id string) error {
	if p.DeleteFunc != nil {
		return p.DeleteFunc(ctx, id)
	}

	if _, ok := p.Accounts[id]; !ok {
		return identity.ErrNotFound
	}

	delete(p.Accounts, id)
	return nil
}
