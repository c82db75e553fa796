package entity

import "encoding/json"

// Location is the canonical coordinate representation. Store documents carry
// coordinates in two historical shapes; both are normalized to (lat, lon)
// here and nowhere else.
type Location struct {
	Lat float64
	Lon float64
}

// DecodeLocation accepts the two shapes found in event documents: a flat
// two-element pair interpreted as (lat, lon), or an object with a nested
// two-element "coordinates" pair. Anything else is unresolvable.
func DecodeLocation(raw any) (Location, bool) {
	switch v := raw.(type) {
	case []any:
		return pairToLocation(v)
	case []float64:
		if len(v) == 2 {
			return Location{Lat: v[0], Lon: v[1]}, true
		}
	case map[string]any:
		if coords, ok := v["coordinates"]; ok {
			return DecodeLocation(coords)
		}
	}

	return Location{}, false
}

func pairToLocation(pair []any) (Location, bool) {
	if len(pair) != 2 {
		return Location{}, false
	}

	lat, ok1 := toFloat(pair[0])
	lon, ok2 := toFloat(pair[1])
	if !ok1 || !ok2 {
		return Location{}, false
	}

	return Location{Lat: lat, Lon: lon}, true
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
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	}

	return 0, false
}

// DecodeStringList accepts a raw sequence or a JSON-encoded string of ids and
// returns an empty slice on any decode failure. Some writers persisted list
// fields as JSON strings; the fallback keeps both readable.
func DecodeStringList(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	case string:
		var result []string
		if err := json.Unmarshal([]byte(v), &result); err != nil {
			return []string{}
		}
		return result
	}

	return []string{}
}

// ClientRef is the normalized form of a client relationship, which documents
// store either as a bare id or as an already embedded client object.
type ClientRef struct {
	ID       string
	Embedded *Client
}

func (r ClientRef) Empty() bool {
	return r.ID == "" && r.Embedded == nil
}

func DecodeClientRef(raw any) ClientRef {
	switch v := raw.(type) {
	case string:
		return ClientRef{ID: v}
	case map[string]any:
		client := &Client{}
		if id, ok := v["$id"].(string); ok {
			client.ID = id
		} else if id, ok := v["id"].(string); ok {
			client.ID = id
		}
		if name, ok := v["name"].(string); ok {
			client.Name = name
		}
		if logo, ok := v["logo"].(string); ok {
			client.Logo = logo
		}

		if client.ID == "" && client.Name == "" {
			return ClientRef{}
		}

		return ClientRef{ID: client.ID, Embedded: client}
	}

	return ClientRef{}
}
