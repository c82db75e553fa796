package repository

import (
	"context"

	"github.com/samplefinder/backend/internal/entity"
	"github.com/samplefinder/backend/pkg/docstore"
)

type ReviewRepository interface {
	GetByEventIDs(ctx context.Context, eventIDs []string, chunkSize, limit int) ([]entity.Review, error)
	GetByUserIDs(ctx context.Context, userIDs []string, chunkSize, limit int) ([]entity.Review, error)
}

type reviewRepository struct {
	store      docstore.Store
	collection string
}

func NewReviewRepository(store docstore.Store, collection string) ReviewRepository {
	return &reviewRepository{store: store, collection: collection}
}

func (r *reviewRepository) GetByEventIDs(
	ctx context.Context, eventIDs []string, chunkSize, limit int,
) ([]entity.Review, error) {
	return r.getByAttribute(ctx, "event", eventIDs, chunkSize, limit)
}

func (r *reviewRepository) GetByUserIDs(
	ctx context.Context, userIDs []string, chunkSize, limit int,
) ([]entity.Review, error) {
	return r.getByAttribute(ctx, "user", userIDs, chunkSize, limit)
}

func (r *reviewRepository) getByAttribute(
	ctx context.Context, attribute string, ids []string, chunkSize, limit int,
) ([]entity.Review, error) {
	var reviews []entity.Review
	for _, group := range chunk(ids, chunkSize) {
		docs, err := r.store.ListDocuments(ctx, r.collection,
			docstore.Equal(attribute, toAny(group)...),
			docstore.Limit(limit),
		)
		if err != nil {
			return nil, err
		}

		for i := range docs {
			review := entity.Review{}
			if err := decodeDocument(&docs[i], &review); err != nil {
				return nil, err
			}

			review.ID = docs[i].ID
			reviews = append(reviews, review)
		}
	}

	return reviews, nil
}
