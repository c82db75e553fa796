package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func Test_DecodeLocation(t *testing.T) {
	t.Run("flat pair", func(t *testing.T) {
		location, ok := DecodeLocation([]any{40.7580, -73.9855})
		require.True(t, ok)
		require.Equal(t, Location{Lat: 40.7580, Lon: -73.9855}, location)
	})

	t.Run("nested coordinates object", func(t *testing.T) {
		location, ok := DecodeLocation(map[string]any{
			"coordinates": []any{40.7580, -73.9855},
		})
		require.True(t, ok)
		require.Equal(t, Location{Lat: 40.7580, Lon: -73.9855}, location)
	})

	t.Run("integer coordinates decode", func(t *testing.T) {
		location, ok := DecodeLocation([]any{40, -74})
		require.True(t, ok)
		require.Equal(t, Location{Lat: 40, Lon: -74}, location)
	})

	t.Run("wrong arity is unresolvable", func(t *testing.T) {
		_, ok := DecodeLocation([]any{40.7580})
		require.False(t, ok)
	})

	t.Run("non-numeric pair is unresolvable", func(t *testing.T) {
		_, ok := DecodeLocation([]any{"40.7580", "-73.9855"})
		require.False(t, ok)
	})

	t.Run("missing value is unresolvable", func(t *testing.T) {
		_, ok := DecodeLocation(nil)
		require.False(t, ok)
	})

	t.Run("object without coordinates is unresolvable", func(t *testing.T) {
		_, ok := DecodeLocation(map[string]any{"lat": 40.7580, "lon": -73.9855})
		require.False(t, ok)
	})
}

func Test_DecodeStringList(t *testing.T) {
	t.Run("raw sequence", func(t *testing.T) {
		require.Equal(t, []string{"a", "b"}, DecodeStringList([]any{"a", "b"}))
	})

	t.Run("json encoded string", func(t *testing.T) {
		require.Equal(t, []string{"a", "b"}, DecodeStringList(`["a","b"]`))
	})

	t.Run("malformed string falls back to empty", func(t *testing.T) {
		require.Empty(t, DecodeStringList(`["a",`))
	})

	t.Run("unexpected type falls back to empty", func(t *testing.T) {
		require.Empty(t, DecodeStringList(42))
		require.Empty(t, DecodeStringList(nil))
	})
}

func Test_DecodeClientRef(t *testing.T) {
	t.Run("bare id", func(t *testing.T) {
		ref := DecodeClientRef("client1")
		require.Equal(t, "client1", ref.ID)
		require.Nil(t, ref.Embedded)
		require.False(t, ref.Empty())
	})

	t.Run("embedded object", func(t *testing.T) {
		ref := DecodeClientRef(map[string]any{
			"$id":  "client1",
			"name": "First Street Coffee",
			"logo": "https://cdn.example.com/first-street.png",
		})
		require.Equal(t, "client1", ref.ID)
		require.NotNil(t, ref.Embedded)
		require.Equal(t, "First Street Coffee", ref.Embedded.Name)
	})

	t.Run("nil is empty", func(t *testing.T) {
		require.True(t, DecodeClientRef(nil).Empty())
	})

	t.Run("empty object is empty", func(t *testing.T) {
		require.True(t, DecodeClientRef(map[string]any{}).Empty())
	})
}

func Test_ActiveAt(t *testing.T) {
	question := TriviaQuestion{
		StartDate: "2026-01-01T00:00:00Z",
		EndDate:   "2026-12-31T23:59:59Z",
	}

	t.Run("inside the window", func(t *testing.T) {
		require.True(t, question.ActiveAt(mustParse(t, "2026-06-01T12:00:00Z")))
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		require.True(t, question.ActiveAt(mustParse(t, "2026-01-01T00:00:00Z")))
		require.True(t, question.ActiveAt(mustParse(t, "2026-12-31T23:59:59Z")))
	})

	t.Run("outside the window", func(t *testing.T) {
		require.False(t, question.ActiveAt(mustParse(t, "2025-12-31T23:59:59Z")))
		require.False(t, question.ActiveAt(mustParse(t, "2027-01-01T00:00:00Z")))
	})

	t.Run("unparseable window is never active", func(t *testing.T) {
		broken := TriviaQuestion{StartDate: "June 1st", EndDate: "2026-12-31T23:59:59Z"}
		require.False(t, broken.ActiveAt(mustParse(t, "2026-06-01T12:00:00Z")))
	})
}
