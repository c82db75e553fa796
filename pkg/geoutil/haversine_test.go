package geoutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Haversine(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		require.Zero(t, Haversine(40.7580, -73.9855, 40.7580, -73.9855))
	})

	t.Run("symmetric", func(t *testing.T) {
		forward := Haversine(40.7589, -73.9851, 40.7128, -74.0060)
		backward := Haversine(40.7128, -74.0060, 40.7589, -73.9851)
		require.InDelta(t, forward, backward, 1e-9)
	})

	t.Run("known distance across Manhattan", func(t *testing.T) {
		// Times Square to City Hall, roughly 5.4km.
		distance := Haversine(40.7589, -73.9851, 40.7128, -74.0060)
		require.InDelta(t, 5400, distance, 300)
	})
}
