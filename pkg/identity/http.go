package identity

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samplefinder/backend/config"
	"github.com/samplefinder/backend/pkg/api"
)

type httpProvider struct {
	endpoint  string
	projectID string
	apiKey    string

	apiGenerator api.Generator
}

func NewHTTPProvider(cfg config.IdentityConfigs) *httpProvider {
	return &httpProvider{
		endpoint:     cfg.Endpoint,
		projectID:    cfg.ProjectID,
		apiKey:       cfg.APIKey,
		apiGenerator: api.NewGenerator(),
	}
}

func (p *httpProvider) Get(ctx context.Context, id string) (*Account, error) {
	resp, err := p.apiGenerator.New(p.endpoint, "/v1/users/%s", id).GET(ctx, p.auth()...)
	if err != nil {
		return nil, err
	}

	return p.account(resp)
}

func (p *httpProvider) List(ctx context.Context, search string) ([]Account, error) {
	client := p.apiGenerator.New(p.endpoint, "/v1/users")
	if search != "" {
		client = client.Query(api.Parameter{"search": search})
	}

	resp, err := client.GET(ctx, p.auth()...)
	if err != nil {
		return nil, err
	}

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, fmt.Errorf("invalid account listing response")
	}

	rawAccounts, err := body.GetArray("users")
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, 0, len(rawAccounts))
	for _, raw := range rawAccounts {
		account, err := fromJSON(raw)
		if err != nil {
			continue
		}
		accounts = append(accounts, *account)
	}

	return accounts, nil
}

func (p *httpProvider) UpdateStatus(ctx context.Context, id string, active bool) error {
	resp, err := p.apiGenerator.New(p.endpoint, "/v1/users/%s/status", id).
		Body(api.JSON{"status": active}).
		PATCH(ctx, p.auth()...)
	if err != nil {
		return err
	}

	return checkStatus(resp)
}

func (p *httpProvider) UpdatePassword(ctx context.Context, id, password string) error {
	resp, err := p.apiGenerator.New(p.endpoint, "/v1/users/%s/password", id).
		Body(api.JSON{"password": password}).
		PATCH(ctx, p.auth()...)
	if err != nil {
		return err
	}

	return checkStatus(resp)
}

func (p *httpProvider) Delete(ctx context.Context, id string) error {
	resp, err := p.apiGenerator.New(p.endpoint, "/v1/users/%s", id).DELETE(ctx, p.auth()...)
	if err != nil {
		return err
	}

	return checkStatus(resp)
}

func (p *httpProvider) auth() []api.Opt {
	return []api.Opt{
		api.Key("X-Project", p.projectID),
		api.Key("X-API-Key", p.apiKey),
	}
}

func (p *httpProvider) account(resp *api.Response) (*Account, error) {
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, fmt.Errorf("invalid account response")
	}

	return fromJSON(body)
}

func checkStatus(resp *api.Response) error {
	switch {
	case resp.Code == http.StatusNotFound:
		return ErrNotFound
	case resp.Code >= 400:
		return fmt.Errorf("identity provider returned status %d", resp.Code)
	}

	return nil
}

func fromJSON(body api.JSON) (*Account, error) {
	id, err := body.GetString("$id")
	if err != nil {
		return nil, err
	}

	email, _ := body.GetString("email")
	name, _ := body.GetString("name")
	active, _ := body.GetBool("status")

	return &Account{ID: id, Email: email, Name: name, Active: active}, nil
}
