package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

type Parameter map[string]string

func (p Parameter) Encode() string {
	var parameters []string
	for key, value := range p {
		parameters = append(parameters, url.QueryEscape(key)+"="+url.QueryEscape(value))
	}
	sort.Strings(parameters)
	return strings.Join(parameters, "&")
}

type JSON map[string]any

type Array []JSON

func (j JSON) ToReader() (io.Reader, string, error) {
	b, err := json.Marshal(j)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewBuffer(b), "application/json", nil
}

func (j JSON) Get(key string) (any, error) {
	value, ok := j[key]
	if !ok {
		return nil, fmt.Errorf("not found field %s", key)
	}

	return value, nil
}

func (j JSON) GetJSON(key string) (JSON, error) {
	value, err := j.Get(key)
	if err != nil {
		return nil, err
	}

	if value == nil {
		return nil, nil
	}

	if m, ok := value.(map[string]any); ok {
		return JSON(m), nil
	}

	return nil, fmt.Errorf("invalid type of field %s (%T)", key, value)
}

func (j JSON) GetArray(key string) (Array, error) {
	value, err := j.Get(key)
	if err != nil {
		return nil, err
	}

	raw, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("invalid type of field %s (%T)", key, value)
	}

	result := make(Array, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid type of element %d in field %s (%T)", i, key, item)
		}
		result = append(result, JSON(m))
	}

	return result, nil
}

func (j JSON) GetString(key string) (string, error) {
	value, err := j.Get(key)
	if err != nil {
		return "", err
	}

	if s, ok := value.(string); ok {
		return s, nil
	}

	return "", fmt.Errorf("invalid type of field %s (%T)", key, value)
}

func (j JSON) GetInt(key string) (int, error) {
	value, err := j.Get(key)
	if err != nil {
		return 0, err
	}

	switch t := value.(type) {
	case int:
		return t, nil
	case float64:
		if t == float64(int(t)) {
			return int(t), nil
		}
		return 0, fmt.Errorf("invalid type of field %s (actually float64)", key)
	}

	return 0, fmt.Errorf("invalid type of field %s (%T)", key, value)
}

func (j JSON) GetBool(key string) (bool, error) {
	value, err := j.Get(key)
	if err != nil {
		return false, err
	}

	if value == nil {
		return false, nil
	}

	if b, ok := value.(bool); ok {
		return b, nil
	}

	return false, fmt.Errorf("invalid type of field %s (%T)", key, value)
}

type Response struct {
	Code    int
	Header  http.Header
	Body    any
	RawBody []byte
}

func bytesToJSON(b []byte) (JSON, error) {
	result := JSON{}
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func bytesToArray(b []byte) (Array, error) {
	result := Array{}
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, err
	}

	return result, nil
}
