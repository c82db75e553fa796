// Package docstore is the client for the managed document store backing the
// mobile API. The store is an external collaborator: it offers generic CRUD
// over named collections plus a composable filter/sort/limit/offset query
// language, and nothing else. No transactions, no joins, no geospatial
// operators. Anything smarter happens application-side.
package docstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("document not found")

// Document is a single record in a collection. Data holds the raw attribute
// map as the store returned it; typed decoding happens at the repository
// boundary.
type Document struct {
	ID   string
	Data map[string]any
}

type Store interface {
	CreateDocument(ctx context.Context, collection, id string, data map[string]any) (*Document, error)
	GetDocument(ctx context.Context, collection, id string) (*Document, error)
	ListDocuments(ctx context.Context, collection string, queries ...Query) ([]Document, error)
	UpdateDocument(ctx context.Context, collection, id string, data map[string]any) (*Document, error)
	DeleteDocument(ctx context.Context, collection, id string) error
}
