package repository

import (
	"context"
	"time"

	"github.com/samplefinder/backend/internal/entity"
	"github.com/samplefinder/backend/pkg/docstore"
)

type TriviaQuestionRepository interface {
	GetByID(ctx context.Context, id string) (*entity.TriviaQuestion, error)
	GetActive(ctx context.Context, now time.Time, limit int) ([]entity.TriviaQuestion, error)
	UpdateSkips(ctx context.Context, id string, skippedUsers []string, skips *int) error
}

type triviaQuestionRepository struct {
	store      docstore.Store
	collection string
}

func NewTriviaQuestionRepository(store docstore.Store, collection string) TriviaQuestionRepository {
	return &triviaQuestionRepository{store: store, collection: collection}
}

func (r *triviaQuestionRepository) GetByID(
	ctx context.Context, id string,
) (*entity.TriviaQuestion, error) {
	doc, err := r.store.GetDocument(ctx, r.collection, id)
	if err != nil {
		return nil, err
	}

	return r.decode(doc)
}

func (r *triviaQuestionRepository) GetActive(
	ctx context.Context, now time.Time, limit int,
) ([]entity.TriviaQuestion, error) {
	nowValue := now.Format(time.RFC3339)
	docs, err := r.store.ListDocuments(ctx, r.collection,
		docstore.LessThanEqual("startDate", nowValue),
		docstore.GreaterThanEqual("endDate", nowValue),
		docstore.Limit(limit),
	)
	if err != nil {
		return nil, err
	}

	questions := make([]entity.TriviaQuestion, 0, len(docs))
	for i := range docs {
		question, err := r.decode(&docs[i])
		if err != nil {
			return nil, err
		}

		questions = append(questions, *question)
	}

	return questions, nil
}

// UpdateSkips persists the skip set and, when the document carries the
// counter, the counter in a single update.
func (r *triviaQuestionRepository) UpdateSkips(
	ctx context.Context, id string, skippedUsers []string, skips *int,
) error {
	data := map[string]any{"skippedUsers": skippedUsers}
	if skips != nil {
		data["skips"] = *skips
	}

	_, err := r.store.UpdateDocument(ctx, r.collection, id, data)
	return err
}

func (r *triviaQuestionRepository) decode(doc *docstore.Document) (*entity.TriviaQuestion, error) {
	question := &entity.TriviaQuestion{}
	if err := decodeDocument(doc, question); err != nil {
		return nil, err
	}

	question.ID = doc.ID
	return question, nil
}
