package repository

import (
	"context"

	"github.com/samplefinder/backend/internal/entity"
	"github.com/samplefinder/backend/pkg/docstore"
)

type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Client, error)
}

type clientRepository struct {
	store      docstore.Store
	collection string
}

func NewClientRepository(store docstore.Store, collection string) ClientRepository {
	return &clientRepository{store: store, collection: collection}
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	doc, err := r.store.GetDocument(ctx, r.collection, id)
	if err != nil {
		return nil, err
	}

	client := &entity.Client{}
	if err := decodeDocument(doc, client); err != nil {
		return nil, err
	}

	client.ID = doc.ID
	return client, nil
}
