package repository

import (
	"context"
	"time"

	"github.com/samplefinder/backend/internal/entity"
	"github.com/samplefinder/backend/pkg/docstore"
)

type EventRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	GetUpcoming(ctx context.Context, now time.Time, limit int) ([]entity.Event, error)
	GetByClientIDs(ctx context.Context, clientIDs []string, chunkSize, limit int) ([]entity.Event, error)
}

type eventRepository struct {
	store      docstore.Store
	collection string
}

func NewEventRepository(store docstore.Store, collection string) EventRepository {
	return &eventRepository{store: store, collection: collection}
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	doc, err := r.store.GetDocument(ctx, r.collection, id)
	if err != nil {
		return nil, err
	}

	return r.decode(doc)
}

// GetUpcoming returns visible events from today's local midnight onward,
// ordered ascending by date. Distance cannot be pushed down to the store, so
// this pre-filter is the only narrowing the query language can do.
func (r *eventRepository) GetUpcoming(
	ctx context.Context, now time.Time, limit int,
) ([]entity.Event, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	docs, err := r.store.ListDocuments(ctx, r.collection,
		docstore.Equal("archived", false),
		docstore.Equal("hidden", false),
		docstore.GreaterThanEqual("date", midnight.Format(time.RFC3339)),
		docstore.OrderAsc("date"),
		docstore.Limit(limit),
	)
	if err != nil {
		return nil, err
	}

	return r.decodeAll(docs)
}

func (r *eventRepository) GetByClientIDs(
	ctx context.Context, clientIDs []string, chunkSize, limit int,
) ([]entity.Event, error) {
	var events []entity.Event
	for _, group := range chunk(clientIDs, chunkSize) {
		docs, err := r.store.ListDocuments(ctx, r.collection,
			docstore.Equal("client", toAny(group)...),
			docstore.Limit(limit),
		)
		if err != nil {
			return nil, err
		}

		decoded, err := r.decodeAll(docs)
		if err != nil {
			return nil, err
		}

		events = append(events, decoded...)
	}

	return events, nil
}

func (r *eventRepository) decode(doc *docstore.Document) (*entity.Event, error) {
	event := &entity.Event{}
	if err := decodeDocument(doc, event); err != nil {
		return nil, err
	}

	event.ID = doc.ID
	return event, nil
}

func (r *eventRepository) decodeAll(docs []docstore.Document) ([]entity.Event, error) {
	events := make([]entity.Event, 0, len(docs))
	for i := range docs {
		event, err := r.decode(&docs[i])
		if err != nil {
			return nil, err
		}

		events = append(events, *event)
	}

	return events, nil
}
