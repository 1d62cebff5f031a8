package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func stopAt(t *testing.T, lat, lon float64) services.Stop {
	t.Helper()
	return services.Stop{OrderID: kernel.NewUUID(), Location: point(t, lat, lon)}
}

func groupedIDs(plan services.RoutePlan) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(plan.Grouped))
	for _, s := range plan.Grouped {
		ids = append(ids, s.OrderID)
	}
	return ids
}

func TestRoutePlanner_Plan(t *testing.T) {
	planner := services.NewRoutePlanner()
	origin := point(t, 0, 0)

	t.Run("no stops yields empty plan", func(t *testing.T) {
		plan, err := planner.Plan(origin, nil)

		require.NoError(t, err)
		assert.Empty(t, plan.Grouped)
		assert.Empty(t, plan.Distant)
		assert.Zero(t, plan.TotalKm)
	})

	t.Run("single stop is always grouped", func(t *testing.T) {
		far := stopAt(t, 10, 10)

		plan, err := planner.Plan(origin, []services.Stop{far})

		require.NoError(t, err)
		require.Len(t, plan.Grouped, 1)
		assert.Empty(t, plan.Distant)
		assert.True(t, plan.Grouped[0].OrderID.IsEqual(far.OrderID))
		assert.InDelta(t, plan.Grouped[0].LegKm, plan.TotalKm, 0.001)
	})

	t.Run("close stops grouped, far outlier distant", func(t *testing.T) {
		near1 := stopAt(t, 0, 0.001)
		near2 := stopAt(t, 0, 0.002)
		far := stopAt(t, 5, 5)

		plan, err := planner.Plan(origin, []services.Stop{far, near2, near1})

		require.NoError(t, err)
		require.Len(t, plan.Grouped, 2)
		require.Len(t, plan.Distant, 1)

		// nearest-neighbor from the origin visits near1 first
		assert.True(t, plan.Grouped[0].OrderID.IsEqual(near1.OrderID))
		assert.True(t, plan.Grouped[1].OrderID.IsEqual(near2.OrderID))
		assert.True(t, plan.Distant[0].OrderID.IsEqual(far.OrderID))
		assert.Greater(t, plan.TotalKm, 0.0)
	})

	t.Run("clustering is transitive regardless of input order", func(t *testing.T) {
		// a-b and b-c are within radius, a-c is not; all three must share a cluster
		a := stopAt(t, 0, 0)
		b := stopAt(t, 0, 0.025) // ~2.8 km from a
		c := stopAt(t, 0, 0.050) // ~2.8 km from b, ~5.6 km from a

		for _, stops := range [][]services.Stop{
			{a, b, c},
			{c, a, b},
			{b, c, a},
		} {
			plan, err := planner.Plan(origin, stops)

			require.NoError(t, err)
			assert.Len(t, plan.Grouped, 3)
			assert.Empty(t, plan.Distant)
		}
	})

	t.Run("singleton near another cluster stays grouped", func(t *testing.T) {
		near1 := stopAt(t, 0, 0.001)
		near2 := stopAt(t, 0, 0.002)
		// ~5.6 km away: its own cluster, but under the 8 km distant threshold
		loner := stopAt(t, 0, 0.050)

		plan, err := planner.Plan(origin, []services.Stop{near1, near2, loner})

		require.NoError(t, err)
		assert.Len(t, plan.Grouped, 3)
		assert.Empty(t, plan.Distant)
	})

	t.Run("clusters visited in order of centroid distance", func(t *testing.T) {
		farA := stopAt(t, 1.0, 0)
		farB := stopAt(t, 1.0, 0.01)
		nearA := stopAt(t, 0.1, 0)
		nearB := stopAt(t, 0.1, 0.01)

		plan, err := planner.Plan(origin, []services.Stop{farA, farB, nearA, nearB})

		require.NoError(t, err)
		require.Len(t, plan.Grouped, 4)

		// Chaining resumes from nearB, which sits on the same meridian
		// offset as farB, so the far cluster is entered through farB.
		ids := groupedIDs(plan)
		assert.True(t, ids[0].IsEqual(nearA.OrderID))
		assert.True(t, ids[1].IsEqual(nearB.OrderID))
		assert.True(t, ids[2].IsEqual(farB.OrderID))
		assert.True(t, ids[3].IsEqual(farA.OrderID))
	})

	t.Run("distant stops sorted by distance from origin", func(t *testing.T) {
		veryFar := stopAt(t, 10, 10)
		far := stopAt(t, 5, 5)

		plan, err := planner.Plan(origin, []services.Stop{veryFar, far})

		require.NoError(t, err)
		require.Len(t, plan.Distant, 2)
		assert.True(t, plan.Distant[0].OrderID.IsEqual(far.OrderID))
		assert.True(t, plan.Distant[1].OrderID.IsEqual(veryFar.OrderID))
	})

	t.Run("total equals sum of legs", func(t *testing.T) {
		stops := []services.Stop{
			stopAt(t, 0, 0.001),
			stopAt(t, 0, 0.002),
			stopAt(t, 0.001, 0.001),
		}

		plan, err := planner.Plan(origin, stops)

		require.NoError(t, err)
		sum := 0.0
		for _, leg := range plan.Grouped {
			sum += leg.LegKm
		}
		assert.InDelta(t, sum, plan.TotalKm, 0.0001)
	})

	t.Run("unconstructed origin is rejected", func(t *testing.T) {
		var zero kernel.GeoPoint
		_, err := planner.Plan(zero, nil)

		require.Error(t, err)
	})
}

func TestNewCustomRoutePlanner(t *testing.T) {
	t.Run("custom radius changes grouping", func(t *testing.T) {
		// ~11 km apart: separate under defaults, one cluster with a 15 km radius
		planner, err := services.NewCustomRoutePlanner(15, 50)
		require.NoError(t, err)

		origin := point(t, 0, 0)
		a := stopAt(t, 0, 0)
		b := stopAt(t, 0.1, 0)

		plan, err := planner.Plan(origin, []services.Stop{a, b})

		require.NoError(t, err)
		assert.Len(t, plan.Grouped, 2)
		assert.Empty(t, plan.Distant)
	})

	t.Run("non-positive parameters are rejected", func(t *testing.T) {
		_, err := services.NewCustomRoutePlanner(0, 8)
		require.Error(t, err)

		_, err = services.NewCustomRoutePlanner(3, -1)
		require.Error(t, err)
	})
}

func TestRoutePlanner_NavigationURL(t *testing.T) {
	planner := services.NewRoutePlanner()
	origin := point(t, 0, 0)

	t.Run("empty plan yields empty url", func(t *testing.T) {
		assert.Empty(t, planner.NavigationURL(services.RoutePlan{}))
	})

	t.Run("waypoints follow the grouped order", func(t *testing.T) {
		plan, err := planner.Plan(origin, []services.Stop{
			stopAt(t, 0, 0.001),
			stopAt(t, 0, 0.002),
		})
		require.NoError(t, err)

		url := planner.NavigationURL(plan)

		assert.Equal(t, "https://yandex.ru/maps/?rtext=~0.000000,0.001000~0.000000,0.002000&rtt=auto", url)
	})
}
