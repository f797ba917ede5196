package corridor

// unvisited marks a segment the clustering pass has not reached yet. It
// never appears in the returned labels.
const unvisited = -2

// DBSCAN runs the weighted density-based clustering pass over the
// segments. It returns one label per segment (cluster id starting at 0,
// or Noise) and the finalized clusters in label order.
//
// Density of a segment is the sum of weights of its neighborhood,
// including its own weight. A segment whose density meets MinDensity is
// core and seeds or extends a cluster; segments reachable from a core
// segment join the cluster even when they are not core themselves
// (border segments). Segments are visited in input order and labels are
// assigned in cluster creation order, so the assignment is reproducible
// for identical input and parameters.
func DBSCAN(segments []Segment, p Params) ([]int, []Cluster, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	n := len(segments)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = unvisited
	}

	index := NewNeighborIndex(segments, p)
	nextID := 0

	for i := 0; i < n; i++ {
		if labels[i] != unvisited {
			continue
		}

		neighbors := index.Neighbors(i)
		if index.Density(neighbors) < p.MinDensity {
			labels[i] = Noise
			continue
		}

		expandCluster(index, labels, i, neighbors, nextID, p)
		nextID++
	}

	return labels, buildClusters(segments, labels, nextID), nil
}

// expandCluster grows cluster id from a core seed using an explicit
// worklist. Noise segments reached during expansion become border
// members but are not expanded further; only core segments extend the
// frontier.
func expandCluster(index *NeighborIndex, labels []int, seed int, frontier []int, id int, p Params) {
	labels[seed] = id

	for j := 0; j < len(frontier); j++ {
		k := frontier[j]

		if labels[k] == Noise {
			labels[k] = id // border segment
		}
		if labels[k] != unvisited {
			continue
		}

		labels[k] = id
		neighbors := index.Neighbors(k)
		if index.Density(neighbors) >= p.MinDensity {
			frontier = append(frontier, neighbors...)
		}
	}
}

// buildClusters collects member indexes and aggregate weights per label.
func buildClusters(segments []Segment, labels []int, count int) []Cluster {
	clusters := make([]Cluster, count)
	for id := range clusters {
		clusters[id].ID = id
	}
	for i, label := range labels {
		if label < 0 {
			continue
		}
		clusters[label].Members = append(clusters[label].Members, i)
		clusters[label].Weight += segments[i].Weight
	}
	return clusters
}
