package testutil

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// MockRedisClient keeps values in a plain map and ignores ttl. Func fields
// override individual methods when a test needs a failure.
type MockRedisClient struct {
	ExistFunc  func(ctx context.Context, key string) (bool, error)
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string) error
	DelFunc    func(ctx context.Context, key string) error
	SetObjFunc func(ctx context.Context, key string, obj any, ttl time.Duration) error
	GetObjFunc func(ctx context.Context, key string, v any) error

	Values map[string]string
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{Values: make(map[string]string)}
}

func (c *MockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	if c.ExistFunc != nil {
		return c.ExistFunc(ctx, key)
	}

	_, ok := c.Values[key]
	return ok, nil
}

func (c *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	if c.GetFunc != nil {
		return c.GetFunc(ctx, key)
	}

	value, ok := c.Values[key]
	if !ok {
		return "", redis.Nil
	}

	return value, nil
}

func (c *MockRedisClient) Set(ctx context.Context, key, value string) error {
	if c.SetFunc != nil {
		return c.SetFunc(ctx, key, value)
	}

	c.Values[key] = value
	return nil
}

func (c *MockRedisClient) Del(ctx context.Context, key string) error {
	if c.DelFunc != nil {
		return c.DelFunc(ctx, key)
	}

	delete(c.Values, key)
	return nil
}

func (c *MockRedisClient) SetObj(ctx context.Context, key string, obj any, ttl time.Duration) error {
	if c.SetObjFunc != nil {
		return c.SetObjFunc(ctx, key, obj, ttl)
	}

	b, err := json.Marshal(obj)
	if err != nil {
		return err
	}

	c.Values[key] = string(b)
	return nil
}

func (c *MockRedisClient) GetObj(ctx context.Context, key string, v any) error {
	if c.GetObjFunc != nil {
		return c.GetObjFunc(ctx, key, v)
	}

	s, ok := c.Values[key]
	if !ok {
		return redis.Nil
	}

	return json.Unmarshal([]byte(s), v)
}
