package docstore

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/puzpuzpuz/xsync"
	"github.com/samplefinder/backend/config"
	"github.com/samplefinder/backend/pkg/api"
	"github.com/samplefinder/backend/pkg/xcontext"
)

type httpStore struct {
	endpoint   string
	projectID  string
	apiKey     string
	databaseID string

	apiGenerator api.Generator

	// Per-collection backoff deadlines recorded after a 429 from the store.
	backoff *xsync.MapOf[string, time.Time]
}

func NewHTTPStore(cfg config.DocStoreConfigs) *httpStore {
	return &httpStore{
		endpoint:     cfg.Endpoint,
		projectID:    cfg.ProjectID,
		apiKey:       cfg.APIKey,
		databaseID:   cfg.DatabaseID,
		apiGenerator: api.NewGenerator(),
		backoff:      xsync.NewMapOf[time.Time](),
	}
}

func (s *httpStore) CreateDocument(
	ctx context.Context, collection, id string, data map[string]any,
) (*Document, error) {
	resp, err := s.client(collection, "").
		Body(api.JSON{"documentId": id, "data": data}).
		POST(ctx, s.auth()...)
	if err != nil {
		return nil, err
	}

	return s.document(ctx, collection, resp)
}

func (s *httpStore) GetDocument(ctx context.Context, collection, id string) (*Document, error) {
	resp, err := s.client(collection, "/%s", id).GET(ctx, s.auth()...)
	if err != nil {
		return nil, err
	}

	return s.document(ctx, collection, resp)
}

func (s *httpStore) ListDocuments(
	ctx context.Context, collection string, queries ...Query,
) ([]Document, error) {
	if err := s.checkBackoff(collection); err != nil {
		return nil, err
	}

	params := api.Parameter{}
	for i, q := range queries {
		params[fmt.Sprintf("queries[%d]", i)] = q.Encode()
	}

	resp, err := s.client(collection, "").Query(params).GET(ctx, s.auth()...)
	if err != nil {
		return nil, err
	}

	if err := s.checkStatus(collection, resp); err != nil {
		return nil, err
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, fmt.Errorf("invalid listing response for %s", collection)
	}

	rawDocuments, err := body.GetArray("documents")
	if err != nil {
		return nil, err
	}

	documents := make([]Document, 0, len(rawDocuments))
	for _, raw := range rawDocuments {
		doc, err := fromJSON(raw)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot parse a document of %s: %v", collection, err)
			continue
		}

		documents = append(documents, *doc)
	}

	return documents, nil
}

func (s *httpStore) UpdateDocument(
	ctx context.Context, collection, id string, data map[string]any,
) (*Document, error) {
	resp, err := s.client(collection, "/%s", id).
		Body(api.JSON{"data": data}).
		PATCH(ctx, s.auth()...)
	if err != nil {
		return nil, err
	}

	return s.document(ctx, collection, resp)
}

func (s *httpStore) DeleteDocument(ctx context.Context, collection, id string) error {
	resp, err := s.client(collection, "/%s", id).DELETE(ctx, s.auth()...)
	if err != nil {
		return err
	}

	return s.checkStatus(collection, resp)
}

func (s *httpStore) client(collection, path string, args ...any) api.Client {
	full := fmt.Sprintf("/v1/databases/%s/collections/%s/documents", s.databaseID, collection)
	if path != "" {
		full += fmt.Sprintf(path, args...)
	}

	return s.apiGenerator.New(s.endpoint, "%s", full)
}

func (s *httpStore) auth() []api.Opt {
	return []api.Opt{
		api.Key("X-Project", s.projectID),
		api.Key("X-API-Key", s.apiKey),
	}
}

func (s *httpStore) document(ctx context.Context, collection string, resp *api.Response) (*Document, error) {
	if err := s.checkStatus(collection, resp); err != nil {
		return nil, err
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, fmt.Errorf("invalid document response for %s", collection)
	}

	return fromJSON(body)
}

func (s *httpStore) checkStatus(collection string, resp *api.Response) error {
	switch {
	case resp.Code == http.StatusNotFound:
		return ErrNotFound
	case resp.Code == http.StatusTooManyRequests:
		retryAfter := 1 * time.Second
		if v, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
			retryAfter = time.Duration(v) * time.Second
		}
		s.backoff.Store(collection, time.Now().Add(retryAfter))
		return fmt.Errorf("store rate limited collection %s", collection)
	case resp.Code >= 400:
		return fmt.Errorf("store returned status %d for %s", resp.Code, collection)
	}

	return nil
}

func (s *httpStore) checkBackoff(collection string) error {
	deadline, ok := s.backoff.Load(collection)
	if ok && time.Now().Before(deadline) {
		return fmt.Errorf("store rate limited collection %s", collection)
	}

	return nil
}

func fromJSON(body api.JSON) (*Document, error) {
	id, err := body.GetString("$id")
	if err != nil {
		return nil, err
	}

	data := make(map[string]any, len(body))
	for key, value := range body {
		if len(key) > 0 && key[0] == '$' {
			continue
		}
		data[key] = value
	}

	return &Document{ID: id, Data: data}, nil
}
