package corridor

import (
	"container/heap"
	"fmt"
)

// clusterQueue orders clusters by descending aggregate weight, breaking
// ties on the lower cluster id so extraction order is a deterministic
// total order.
type clusterQueue []Cluster

func (q clusterQueue) Len() int { return len(q) }

func (q clusterQueue) Less(i, j int) bool {
	if q[i].Weight != q[j].Weight {
		return q[i].Weight > q[j].Weight
	}
	return q[i].ID < q[j].ID
}

func (q clusterQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *clusterQueue) Push(x any) { *q = append(*q, x.(Cluster)) }

func (q *clusterQueue) Pop() any {
	old := *q
	n := len(old)
	c := old[n-1]
	*q = old[:n-1]
	return c
}

// ExtractCorridors drains the clusters through a priority queue keyed on
// aggregate weight and emits one corridor per cluster, assigning corridor
// ids 0, 1, 2, ... in pop order. It also produces the per-segment
// assignment records; noise segments get corridor id -1 but still appear
// in the record.
func ExtractCorridors(segments []Segment, labels []int, clusters []Cluster) ([]Corridor, []Assignment, error) {
	q := make(clusterQueue, len(clusters))
	copy(q, clusters)
	heap.Init(&q)

	corridorOf := make([]int, len(clusters))
	corridors := make([]Corridor, 0, len(clusters))
	for q.Len() > 0 {
		cl := heap.Pop(&q).(Cluster)
		rep, err := RepresentativeLine(segments, cl)
		if err != nil {
			return nil, nil, fmt.Errorf("corridor extraction: %w", err)
		}
		id := len(corridors)
		corridorOf[cl.ID] = id
		corridors = append(corridors, Corridor{
			ID:             id,
			ClusterID:      cl.ID,
			Weight:         cl.Weight,
			MemberCount:    len(cl.Members),
			Representative: rep,
		})
	}

	assignments := make([]Assignment, len(segments))
	for i, s := range segments {
		cid := -1
		if labels[i] >= 0 {
			cid = corridorOf[labels[i]]
		}
		assignments[i] = Assignment{LineID: s.LineID, SegmentIndex: s.Index, CorridorID: cid}
	}
	return corridors, assignments, nil
}
