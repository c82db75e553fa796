package repository

import (
	"github.com/mitchellh/mapstructure"
	"github.com/samplefinder/backend/pkg/docstore"
)

// decodeDocument fills out from the raw attribute map. WeaklyTypedInput keeps
// JSON float64 numbers assignable to integer fields.
func decodeDocument(doc *docstore.Document, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(doc.Data)
}

// chunk splits ids into groups of at most size values, the most the store
// accepts in a single filter.
func chunk(ids []string, size int) [][]string {
	if size <= 0 {
		return [][]string{ids}
	}

	var groups [][]string
	for len(ids) > size {
		groups = append(groups, ids[:size])
		ids = ids[size:]
	}

	if len(ids) > 0 {
		groups = append(groups, ids)
	}

	return groups
}

func toAny(values []string) []any {
	result := make([]any, len(values))
	for i, v := range values {
		result[i] = v
	}

	return result
}
