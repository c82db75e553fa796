package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/samplefinder/backend/internal/entity"
	"github.com/samplefinder/backend/pkg/docstore"
)

type TriviaResponseRepository interface {
	Create(ctx context.Context, response *entity.TriviaResponse) error
	GetByUserID(ctx context.Context, userID string, limit int) ([]entity.TriviaResponse, error)
	GetByUserAndTrivia(ctx context.Context, userID, triviaID string) (*entity.TriviaResponse, error)
}

type triviaResponseRepository struct {
	store      docstore.Store
	collection string
}

func NewTriviaResponseRepository(store docstore.Store, collection string) TriviaResponseRepository {
	return &triviaResponseRepository{store: store, collection: collection}
}

func (r *triviaResponseRepository) Create(ctx context.Context, response *entity.TriviaResponse) error {
	if response.ID == "" {
		response.ID = uuid.NewString()
	}

	_, err := r.store.CreateDocument(ctx, r.collection, response.ID, map[string]any{
		"trivia":      response.TriviaID,
		"user":        response.UserID,
		"answer":      response.Answer,
		"answerIndex": response.AnswerIndex,
	})

	return err
}

func (r *triviaResponseRepository) GetByUserID(
	ctx context.Context, userID string, limit int,
) ([]entity.TriviaResponse, error) {
	docs, err := r.store.ListDocuments(ctx, r.collection,
		docstore.Equal("user", userID),
		docstore.Limit(limit),
	)
	if err != nil {
		return nil, err
	}

	responses := make([]entity.TriviaResponse, 0, len(docs))
	for i := range docs {
		response := entity.TriviaResponse{}
		if err := decodeDocument(&docs[i], &response); err != nil {
			return nil, err
		}

		response.ID = docs[i].ID
		responses = append(responses, response)
	}

	return responses, nil
}

// GetByUserAndTrivia returns docstore.ErrNotFound when the pair has no
// response yet. This existence check is the only duplicate guard; the store
// enforces no uniqueness constraint.
func (r *triviaResponseRepository) GetByUserAndTrivia(
	ctx context.Context, userID, triviaID string,
) (*entity.TriviaResponse, error) {
	docs, err := r.store.ListDocuments(ctx, r.collection,
		docstore.Equal("user", userID),
		docstore.Equal("trivia", triviaID),
		docstore.Limit(1),
	)
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, docstore.ErrNotFound
	}

	response := &entity.TriviaResponse{}
	if err := decodeDocument(&docs[0], response); err != nil {
		return nil, err
	}

	response.ID = docs[0].ID
	return response, nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, docstore.ErrNotFound)
}
