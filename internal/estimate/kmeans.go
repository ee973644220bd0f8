package estimate

import (
	"math"
	"math/rand"

	"github.com/huehome/huecore/internal/colour"
)

// labPoint is a pixel in L*a*b* space.
type labPoint struct {
	L, A, B float64
}

func pointFromLab(c colour.LabColor) labPoint {
	return labPoint{L: c.L, A: c.A, B: c.B}
}

// distance calculates the Euclidean distance between two points.
func (p labPoint) distance(other labPoint) float64 {
	dl := p.L - other.L
	da := p.A - other.A
	db := p.B - other.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// clustering holds the result of a k-means run.
type clustering struct {
	centroids  []labPoint
	counts     []int
	iterations int
}

// dominant returns the index of the most populated cluster. Ties go to the lowest index.
func (c clustering) dominant() int {
	best := 0
	for i := 1; i < len(c.counts); i++ {
		if c.counts[i] > c.counts[best] {
			best = i
		}
	}
	return best
}

// kmeans clusters points into k groups with Lloyd's algorithm and k-means++ seeding.
// All randomness is drawn from rng, so equal inputs and seeds give equal results.
func kmeans(points []labPoint, k, maxIterations int, convergence float64, rng *rand.Rand) clustering {
	centroids := initializeCentroidsKMeansPlusPlus(points, k, rng)
	assignments := make([]int, len(points))

	iterations := 0
	for iter := 0; iter < maxIterations; iter++ {
		iterations = iter + 1

		// Assign each point to nearest centroid
		changed := 0
		for i, point := range points {
			nearest := findNearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if iter > 0 && changed == 0 {
			break
		}

		newCentroids := recalculateCentroids(points, assignments, k, rng)

		maxMovement := 0.0
		for i := range centroids {
			maxMovement = math.Max(maxMovement, centroids[i].distance(newCentroids[i]))
		}
		centroids = newCentroids

		if maxMovement < convergence {
			// Final assignment against the settled centroids.
			for i, point := range points {
				assignments[i] = findNearestCentroid(point, centroids)
			}
			break
		}
	}

	counts := make([]int, k)
	for _, assignment := range assignments {
		counts[assignment]++
	}

	return clustering{centroids: centroids, counts: counts, iterations: iterations}
}

// initializeCentroidsKMeansPlusPlus picks starting centroids, each new one chosen with
// probability proportional to its squared distance from the nearest existing centroid.
func initializeCentroidsKMeansPlusPlus(points []labPoint, k int, rng *rand.Rand) []labPoint {
	if len(points) == 0 || k == 0 {
		return []labPoint{}
	}

	centroids := make([]labPoint, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		totalDistance := 0.0
		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				minDist = math.Min(minDist, point.distance(centroid))
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		// Every point coincides with a centroid: nudge a copy of the last one so the
		// cluster exists but attracts nothing.
		if totalDistance == 0 {
			last := centroids[len(centroids)-1]
			centroids = append(centroids, labPoint{L: last.L + 0.1, A: last.A + 0.1, B: last.B + 0.1})
			continue
		}

		target := rng.Float64() * totalDistance
		cumulative := 0.0
		chosen := len(points) - 1
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}

	return centroids
}

// findNearestCentroid finds the index of the nearest centroid to a point.
// Equidistant centroids resolve to the lower index.
func findNearestCentroid(point labPoint, centroids []labPoint) int {
	minDist := math.MaxFloat64
	nearest := 0

	for i, centroid := range centroids {
		dist := point.distance(centroid)
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}

// recalculateCentroids moves each centroid to the mean of its assigned points.
// Empty clusters are reseeded from a random point.
func recalculateCentroids(points []labPoint, assignments []int, k int, rng *rand.Rand) []labPoint {
	sums := make([]labPoint, k)
	counts := make([]int, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].L += point.L
		sums[cluster].A += point.A
		sums[cluster].B += point.B
		counts[cluster]++
	}

	centroids := make([]labPoint, k)
	for i := range k {
		if counts[i] > 0 {
			n := float64(counts[i])
			centroids[i] = labPoint{L: sums[i].L / n, A: sums[i].A / n, B: sums[i].B / n}
		} else {
			centroids[i] = points[rng.Intn(len(points))]
		}
	}

	return centroids
}
