package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/samplefinder/backend/pkg/docstore"
)

// ListCall records one listing so tests can assert on issued queries, for
// example that no filter ever carries more values than the configured cap.
type ListCall struct {
	Collection string
	Queries    []docstore.Query
}

// MockStore is an in-memory docstore.Store. It evaluates the same query
// language the real store does, preserving insertion order unless a query
// orders explicitly. Domains list collections from concurrent goroutines, so
// every method takes the mutex.
type MockStore struct {
	mu          sync.Mutex
	collections map[string]*collection

	// FailUpdates and FailCreates inject an error per collection.
	FailUpdates map[string]error
	FailCreates map[string]error

	ListCalls []ListCall
}

type collection struct {
	order []string
	docs  map[string]map[string]any
}

func NewMockStore() *MockStore {
	return &MockStore{
		collections: make(map[string]*collection),
		FailUpdates: make(map[string]error),
		FailCreates: make(map[string]error),
	}
}

// Seed inserts without the failure hooks, for fixtures.
func (s *MockStore) Seed(name, id string, data map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.collection(name)
	if _, ok := col.docs[id]; !ok {
		col.order = append(col.order, id)
	}
	col.docs[id] = cloneData(data)
}

func (s *MockStore) CreateDocument(
	ctx context.Context, name, id string, data map[string]any,
) (*docstore.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.FailCreates[name]; err != nil {
		return nil, err
	}

	col := s.collection(name)
	if _, ok := col.docs[id]; ok {
		return nil, fmt.Errorf("document %s already exists in %s", id, name)
	}

	col.order = append(col.order, id)
	col.docs[id] = cloneData(data)
	return &docstore.Document{ID: id, Data: cloneData(data)}, nil
}

func (s *MockStore) GetDocument(ctx context.Context, name, id string) (*docstore.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.collection(name)
	data, ok := col.docs[id]
	if !ok {
		return nil, docstore.ErrNotFound
	}

	return &docstore.Document{ID: id, Data: cloneData(data)}, nil
}

func (s *MockStore) ListDocuments(
	ctx context.Context, name string, queries ...docstore.Query,
) ([]docstore.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ListCalls = append(s.ListCalls, ListCall{Collection: name, Queries: queries})

	col := s.collection(name)

	var result []docstore.Document
	for _, id := range col.order {
		if matches(col.docs[id], queries) {
			result = append(result, docstore.Document{ID: id, Data: cloneData(col.docs[id])})
		}
	}

	result = applyOrder(result, queries)
	return applyWindow(result, queries), nil
}

func (s *MockStore) UpdateDocument(
	ctx context.Context, name, id string, data map[string]any,
) (*docstore.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.FailUpdates[name]; err != nil {
		return nil, err
	}

	col := s.collection(name)
	existing, ok := col.docs[id]
	if !ok {
		return nil, docstore.ErrNotFound
	}

	for key, value := range data {
		existing[key] = value
	}

	return &docstore.Document{ID: id, Data: cloneData(existing)}, nil
}

func (s *MockStore) DeleteDocument(ctx context.Context, name, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.collection(name)
	if _, ok := col.docs[id]; !ok {
		return docstore.ErrNotFound
	}

	delete(col.docs, id)
	for i, existing := range col.order {
		if existing == id {
			col.order = append(col.order[:i], col.order[i+1:]...)
			break
		}
	}

	return nil
}

// collection is only called with the mutex held.
func (s *MockStore) collection(name string) *collection {
	col, ok := s.collections[name]
	if !ok {
		col = &collection{docs: make(map[string]map[string]any)}
		s.collections[name] = col
	}

	return col
}

func matches(doc map[string]any, queries []docstore.Query) bool {
	for _, q := range queries {
		switch q.Method {
		case docstore.MethodEqual:
			if !anyEqual(doc[q.Attribute], q.Values) {
				return false
			}
		case docstore.MethodNotEqual:
			if anyEqual(doc[q.Attribute], q.Values) {
				return false
			}
		case docstore.MethodGreaterThanEqual:
			if len(q.Values) != 1 || compare(doc[q.Attribute], q.Values[0]) < 0 {
				return false
			}
		case docstore.MethodLessThanEqual:
			if len(q.Values) != 1 || compare(doc[q.Attribute], q.Values[0]) > 0 {
				return false
			}
		case docstore.MethodContains:
			list, ok := doc[q.Attribute].([]any)
			if !ok {
				return false
			}
			found := false
			for _, item := range list {
				if anyEqual(item, q.Values) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}

	return true
}

func anyEqual(value any, candidates []any) bool {
	for _, candidate := range candidates {
		if compare(value, candidate) == 0 {
			return true
		}
	}

	return false
}

// compare orders two loosely typed attribute values: numbers numerically,
// strings lexically, bools with false < true. Incomparable pairs order as
// not-equal.
func compare(a, b any) int {
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
		return -1
	}

	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			switch {
			case as < bs:
				return -1
			case as > bs:
				return 1
			default:
				return 0
			}
		}
		return -1
	}

	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ab == bb:
				return 0
			case !ab:
				return -1
			default:
				return 1
			}
		}
	}

	return -1
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}

	return 0, false
}

func applyOrder(docs []docstore.Document, queries []docstore.Query) []docstore.Document {
	for _, q := range queries {
		if q.Method != docstore.MethodOrderAsc && q.Method != docstore.MethodOrderDesc {
			continue
		}

		attribute := q.Attribute
		desc := q.Method == docstore.MethodOrderDesc
		sort.SliceStable(docs, func(i, j int) bool {
			c := compare(docs[i].Data[attribute], docs[j].Data[attribute])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}

	return docs
}

func applyWindow(docs []docstore.Document, queries []docstore.Query) []docstore.Document {
	offset, limit := 0, len(docs)
	for _, q := range queries {
		if len(q.Values) != 1 {
			continue
		}

		if n, ok := toFloat(q.Values[0]); ok {
			switch q.Method {
			case docstore.MethodOffset:
				offset = int(n)
			case docstore.MethodLimit:
				limit = int(n)
			}
		}
	}

	if offset >= len(docs) {
		return nil
	}

	docs = docs[offset:]
	if limit < len(docs) {
		docs = docs[:limit]
	}

	return docs
}

func cloneData(data map[string]any) map[string]any {
	clone := make(map[string]any, len(data))
	for key, value := range data {
		clone[key] = value
	}

	return clone
}
