package repository

import (
	"context"

	"github.com/samplefinder/backend/internal/entity"
	"github.com/samplefinder/backend/pkg/docstore"
)

type UserProfileRepository interface {
	GetByID(ctx context.Context, id string) (*entity.UserProfile, error)
	GetPage(ctx context.Context, offset, limit int) ([]entity.UserProfile, error)
	UpdatePoints(ctx context.Context, id string, points int64) error
	SetBlocked(ctx context.Context, id string, blocked bool) error
}

type userProfileRepository struct {
	store      docstore.Store
	collection string
}

func NewUserProfileRepository(store docstore.Store, collection string) UserProfileRepository {
	return &userProfileRepository{store: store, collection: collection}
}

func (r *userProfileRepository) GetByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	doc, err := r.store.GetDocument(ctx, r.collection, id)
	if err != nil {
		return nil, err
	}

	return r.decode(doc)
}

// GetPage walks the collection with explicit offsets. The store's default
// listing is capped, so report totals are only trustworthy when every page is
// visited.
func (r *userProfileRepository) GetPage(
	ctx context.Context, offset, limit int,
) ([]entity.UserProfile, error) {
	docs, err := r.store.ListDocuments(ctx, r.collection,
		docstore.Limit(limit),
		docstore.Offset(offset),
	)
	if err != nil {
		return nil, err
	}

	profiles := make([]entity.UserProfile, 0, len(docs))
	for i := range docs {
		profile, err := r.decode(&docs[i])
		if err != nil {
			return nil, err
		}

		profiles = append(profiles, *profile)
	}

	return profiles, nil
}

func (r *userProfileRepository) UpdatePoints(ctx context.Context, id string, points int64) error {
	_, err := r.store.UpdateDocument(ctx, r.collection, id, map[string]any{"points": points})
	return err
}

func (r *userProfileRepository) SetBlocked(ctx context.Context, id string, blocked bool) error {
	_, err := r.store.UpdateDocument(ctx, r.collection, id, map[string]any{"blocked": blocked})
	return err
}

func (r *userProfileRepository) decode(doc *docstore.Document) (*entity.UserProfile, error) {
	profile := &entity.UserProfile{}
	if err := decodeDocument(doc, profile); err != nil {
		return nil, err
	}

	profile.ID = doc.ID
	return profile, nil
}
