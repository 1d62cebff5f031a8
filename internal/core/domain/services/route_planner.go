package services

import (
	"fmt"
	"sort"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Default clustering parameters, in kilometers.
const (
	DefaultClusterRadiusKm    = 3.0
	DefaultDistantThresholdKm = 8.0
)

// Stop is a candidate delivery point for route planning.
type Stop struct {
	OrderID  kernel.UUID
	Location kernel.GeoPoint
}

// RouteStop is a stop placed on the grouped route. LegKm is the incremental
// distance from the previous position (the origin for the first stop).
type RouteStop struct {
	Stop
	LegKm float64
}

// RoutePlan is the result of a planning call. Grouped holds the stops the
// courier should visit in order; Distant holds far outliers to be delivered
// individually, sorted by distance from the origin. TotalKm covers the
// grouped route only.
type RoutePlan struct {
	Grouped []RouteStop
	Distant []Stop
	TotalKm float64
}

// RoutePlanner is a domain service that turns a courier position and a set of
// candidate stops into a visiting order.
//
// The algorithm:
//  1. Stops within clusterRadiusKm of each other are merged into clusters
//     (union-find over the pairwise haversine graph, so closeness is
//     transitive).
//  2. A singleton cluster whose nearest neighbor in any other cluster is at
//     least distantThresholdKm away is set aside as distant, so one remote
//     destination never forces the courier to zig-zag across the whole
//     service area.
//  3. Remaining clusters are visited in order of origin-to-centroid distance;
//     within a cluster the order is nearest-neighbor from the current
//     position, which chains across cluster boundaries.
//
// Exact TSP is deliberately out: for the single-digit stop counts of one
// shift, nearest-neighbor is deterministic and good enough.
//
// The planner holds no state and is safe for concurrent use.
type RoutePlanner struct {
	clusterRadiusKm    float64
	distantThresholdKm float64
}

// NewRoutePlanner creates a planner with the default clustering parameters.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{
		clusterRadiusKm:    DefaultClusterRadiusKm,
		distantThresholdKm: DefaultDistantThresholdKm,
	}
}

// NewCustomRoutePlanner creates a planner with explicit clustering parameters.
func NewCustomRoutePlanner(clusterRadiusKm, distantThresholdKm float64) (RoutePlanner, error) {
	if clusterRadiusKm <= 0 {
		return RoutePlanner{}, errs.NewValueIsOutOfRangeError("clusterRadiusKm", clusterRadiusKm, 0, "+inf")
	}
	if distantThresholdKm <= 0 {
		return RoutePlanner{}, errs.NewValueIsOutOfRangeError("distantThresholdKm", distantThresholdKm, 0, "+inf")
	}
	return RoutePlanner{
		clusterRadiusKm:    clusterRadiusKm,
		distantThresholdKm: distantThresholdKm,
	}, nil
}

// Plan computes a route plan for the given origin and stops.
//
// With no stops the plan is empty. A single stop is always grouped, never
// distant (there is nothing to compare it against).
func (p RoutePlanner) Plan(origin kernel.GeoPoint, stops []Stop) (RoutePlan, error) {
	if err := origin.Validate(); err != nil {
		return RoutePlan{}, err
	}
	for _, s := range stops {
		if err := s.Location.Validate(); err != nil {
			return RoutePlan{}, err
		}
	}

	if len(stops) == 0 {
		return RoutePlan{}, nil
	}

	clusters := p.buildClusters(stops)

	// A sole cluster has nothing to be distant from, so it is always grouped.
	var grouped [][]Stop
	var distant []Stop
	for i, cluster := range clusters {
		if len(clusters) > 1 && len(cluster) == 1 &&
			p.minDistToOtherClusters(cluster[0], clusters, i) >= p.distantThresholdKm {
			distant = append(distant, cluster[0])
			continue
		}
		grouped = append(grouped, cluster)
	}

	sortByCentroidDistance(origin, grouped)

	plan := RoutePlan{}
	position := origin
	for _, cluster := range grouped {
		legs, segmentKm := nearestNeighborOrder(position, cluster)
		plan.Grouped = append(plan.Grouped, legs...)
		plan.TotalKm += segmentKm
		position = legs[len(legs)-1].Location
	}

	sort.Slice(distant, func(i, j int) bool {
		return dist(origin, distant[i].Location) < dist(origin, distant[j].Location)
	})
	plan.Distant = distant

	return plan, nil
}

// NavigationURL builds a Yandex Maps deep link for the grouped route. The
// leading "~" makes the navigator start from the device's own location.
// Returns an empty string for a plan with no grouped stops.
func (p RoutePlanner) NavigationURL(plan RoutePlan) string {
	if len(plan.Grouped) == 0 {
		return ""
	}
	waypoints := make([]string, 0, len(plan.Grouped))
	for _, s := range plan.Grouped {
		waypoints = append(waypoints, fmt.Sprintf("%f,%f", s.Location.Lat(), s.Location.Lon()))
	}
	return fmt.Sprintf("https://yandex.ru/maps/?rtext=~%s&rtt=auto", strings.Join(waypoints, "~"))
}

// buildClusters partitions stops into clusters via union-find: two stops end
// up together when a chain of pairwise distances <= clusterRadiusKm connects
// them. Clusters preserve the relative input order of their members.
func (p RoutePlanner) buildClusters(stops []Stop) [][]Stop {
	parent := make([]int, len(stops))
	for i := range parent {
		parent[i] = i
	}

	var find func(x int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(x, y int) {
		px, py := find(x), find(y)
		if px != py {
			parent[px] = py
		}
	}

	for i := range stops {
		for j := i + 1; j < len(stops); j++ {
			if dist(stops[i].Location, stops[j].Location) <= p.clusterRadiusKm {
				union(i, j)
			}
		}
	}

	byRoot := make(map[int][]Stop)
	roots := make([]int, 0)
	for i, s := range stops {
		root := find(i)
		if _, ok := byRoot[root]; !ok {
			roots = append(roots, root)
		}
		byRoot[root] = append(byRoot[root], s)
	}

	clusters := make([][]Stop, 0, len(roots))
	for _, root := range roots {
		clusters = append(clusters, byRoot[root])
	}
	return clusters
}

// minDistToOtherClusters returns the minimum distance from the stop to any
// member of any cluster other than the one at selfIdx.
func (p RoutePlanner) minDistToOtherClusters(s Stop, clusters [][]Stop, selfIdx int) float64 {
	minKm := maxDistanceKm
	for i, cluster := range clusters {
		if i == selfIdx {
			continue
		}
		for _, other := range cluster {
			if d := dist(s.Location, other.Location); d < minKm {
				minKm = d
			}
		}
	}
	return minKm
}

func sortByCentroidDistance(origin kernel.GeoPoint, clusters [][]Stop) {
	sort.SliceStable(clusters, func(i, j int) bool {
		return dist(origin, centroid(clusters[i])) < dist(origin, centroid(clusters[j]))
	})
}

// nearestNeighborOrder visits cluster stops by repeatedly picking the closest
// unvisited one, starting from position and advancing with each pick.
func nearestNeighborOrder(position kernel.GeoPoint, cluster []Stop) ([]RouteStop, float64) {
	unvisited := make([]Stop, len(cluster))
	copy(unvisited, cluster)

	legs := make([]RouteStop, 0, len(cluster))
	totalKm := 0.0
	for len(unvisited) > 0 {
		nearest := 0
		nearestKm := dist(position, unvisited[0].Location)
		for i := 1; i < len(unvisited); i++ {
			if d := dist(position, unvisited[i].Location); d < nearestKm {
				nearest = i
				nearestKm = d
			}
		}

		picked := unvisited[nearest]
		legs = append(legs, RouteStop{Stop: picked, LegKm: nearestKm})
		totalKm += nearestKm
		position = picked.Location
		unvisited = append(unvisited[:nearest], unvisited[nearest+1:]...)
	}
	return legs, totalKm
}

func centroid(cluster []Stop) kernel.GeoPoint {
	latSum, lonSum := 0.0, 0.0
	for _, s := range cluster {
		latSum += s.Location.Lat()
		lonSum += s.Location.Lon()
	}
	n := float64(len(cluster))
	p, _ := kernel.NewGeoPoint(latSum/n, lonSum/n)
	return p
}

// maxDistanceKm exceeds any possible great-circle distance on Earth.
const maxDistanceKm = 40100.0

// dist is DistanceKm for points already validated by Plan.
func dist(a, b kernel.GeoPoint) float64 {
	d, _ := a.DistanceKm(b)
	return d
}
