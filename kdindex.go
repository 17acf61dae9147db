package geostat

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// treePoint is a sample location in the kd-tree, carrying its index into the
// sample slice so query results map back without a scan.
type treePoint struct {
	x, y float64
	idx  int
}

func (p treePoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(treePoint)
	switch d {
	case 0:
		return p.x - q.x
	case 1:
		return p.y - q.y
	default:
		panic("illegal dimension")
	}
}

func (p treePoint) Dims() int { return 2 }

// Distance returns the squared Euclidean distance; radius queries square
// their bound to match.
func (p treePoint) Distance(c kdtree.Comparable) float64 {
	q := c.(treePoint)
	return pow2(p.x-q.x) + pow2(p.y-q.y)
}

type treePoints []treePoint

func (p treePoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p treePoints) Len() int                              { return len(p) }
func (p treePoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

func (p treePoints) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(pointPlane{treePoints: p, Dim: d}, kdtree.MedianOfRandoms(pointPlane{treePoints: p, Dim: d}, 100))
}

// pointPlane implements sort.Interface and kdtree.SortSlicer for treePoints.
type pointPlane struct {
	treePoints
	kdtree.Dim
}

func (p pointPlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.treePoints[i].x < p.treePoints[j].x
	case 1:
		return p.treePoints[i].y < p.treePoints[j].y
	default:
		panic("illegal dimension")
	}
}

func (p pointPlane) Slice(start, end int) kdtree.SortSlicer {
	return pointPlane{treePoints: p.treePoints[start:end], Dim: p.Dim}
}

func (p pointPlane) Swap(i, j int) {
	p.treePoints[i], p.treePoints[j] = p.treePoints[j], p.treePoints[i]
}

// sampleIndex answers radius queries against a fixed sample set. Read-only
// after construction, safe for concurrent queries.
type sampleIndex struct {
	tree *kdtree.Tree
}

func newSampleIndex(samples []SamplePoint) *sampleIndex {
	pts := make(treePoints, len(samples))
	for i, s := range samples {
		pts[i] = treePoint{x: s.X, y: s.Y, idx: i}
	}
	return &sampleIndex{tree: kdtree.New(pts, true)}
}

// within appends every sample within radius of (x, y) to out, unordered.
func (ix *sampleIndex) within(x, y, radius float64, out []Neighbor) []Neighbor {
	keeper := kdtree.NewDistKeeper(radius * radius)
	ix.tree.NearestSet(keeper, treePoint{x: x, y: y, idx: -1})
	for _, item := range keeper.Heap {
		if item.Comparable == nil {
			continue
		}
		p := item.Comparable.(treePoint)
		out = append(out, Neighbor{Index: p.idx, Distance: math.Sqrt(item.Dist)})
	}
	return out
}
