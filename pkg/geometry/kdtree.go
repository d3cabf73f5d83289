package geometry

import (
	"math"
	"sort"

	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
	"github.com/finch-ray/go-whitted-raytracer/pkg/material"
)

// SplitMode selects how a KDTree chooses the split position for each
// internal node.
type SplitMode int

const (
	// SplitMedian splits at the median center along the cycling axis.
	SplitMedian SplitMode = iota
	// SplitSAH evaluates every candidate split and picks the one with the
	// lowest surface-area-heuristic cost.
	SplitSAH
)

const (
	defaultMaxLeaf  = 4
	defaultMaxDepth = 20
)

// KDTree accelerates ray intersection queries against many shapes by
// recursively partitioning them along axes that cycle X, Y, Z with tree
// depth. It implements Shape itself so it can be nested or swapped in
// wherever a single primitive is expected.
type KDTree struct {
	root     *kdNode
	maxLeaf  int
	maxDepth int
	mode     SplitMode
}

type kdNode struct {
	axis        int
	left, right *kdNode
	bounds      core.AABB
	shapes      []Shape // non-nil only on leaf nodes
}

func (n *kdNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// NewKDTree builds a KD-tree over shapes using the given leaf size and
// depth limits and split mode. An empty shapes slice produces an empty
// tree that never reports a hit.
func NewKDTree(shapes []Shape, maxLeaf, maxDepth int, mode SplitMode) *KDTree {
	if maxLeaf <= 0 {
		maxLeaf = defaultMaxLeaf
	}
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	tree := &KDTree{maxLeaf: maxLeaf, maxDepth: maxDepth, mode: mode}
	if len(shapes) > 0 {
		tree.root = buildKDNode(shapes, 0, maxLeaf, maxDepth, mode)
	}
	return tree
}

func buildKDNode(shapes []Shape, depth, maxLeaf, maxDepth int, mode SplitMode) *kdNode {
	node := &kdNode{axis: depth % 3}
	node.bounds = boundsOf(shapes)

	if len(shapes) <= maxLeaf || depth >= maxDepth {
		node.shapes = shapes
		return node
	}

	var splitPos float64
	if mode == SplitSAH {
		splitPos = findBestSplitSAH(shapes, node.axis)
	} else {
		splitPos = fastMedian(shapes, node.axis)
	}

	var left, right []Shape
	for _, shape := range shapes {
		if centerOf(shape.BoundingBox(), node.axis) < splitPos {
			left = append(left, shape)
		} else {
			right = append(right, shape)
		}
	}

	// Division failed or skewed to one side: collapse to a leaf rather
	// than recurse forever on an unsplit set.
	if len(left) == 0 || len(right) == 0 {
		node.shapes = shapes
		return node
	}

	node.left = buildKDNode(left, depth+1, maxLeaf, maxDepth, mode)
	node.right = buildKDNode(right, depth+1, maxLeaf, maxDepth, mode)
	return node
}

func boundsOf(shapes []Shape) core.AABB {
	if len(shapes) == 0 {
		return core.AABB{}
	}
	box := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		box = box.Union(s.BoundingBox())
	}
	return box
}

func centerOf(box core.AABB, axis int) float64 {
	c := box.Center()
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// fastMedian returns the median center along axis. Unlike a separate
// small-N/large-N path, sorting is cheap enough in Go to use
// unconditionally.
func fastMedian(shapes []Shape, axis int) float64 {
	centers := make([]float64, len(shapes))
	for i, s := range shapes {
		centers[i] = centerOf(s.BoundingBox(), axis)
	}
	sort.Float64s(centers)
	n := len(centers)
	if n%2 == 1 {
		return centers[n/2]
	}
	return (centers[n/2-1] + centers[n/2]) / 2
}

// findBestSplitSAH evaluates every candidate split (sorted by center along
// axis) and returns the midpoint between the pair of adjacent centers with
// the lowest surface-area-heuristic cost.
func findBestSplitSAH(shapes []Shape, axis int) float64 {
	sorted := make([]Shape, len(shapes))
	copy(sorted, shapes)
	sort.Slice(sorted, func(i, j int) bool {
		return centerOf(sorted[i].BoundingBox(), axis) < centerOf(sorted[j].BoundingBox(), axis)
	})

	bestCost := math.Inf(1)
	bestSplit := fastMedian(shapes, axis)

	for i := 1; i < len(sorted); i++ {
		leftArea := boundsOf(sorted[:i]).SurfaceArea()
		rightArea := boundsOf(sorted[i:]).SurfaceArea()
		cost := leftArea*float64(i) + rightArea*float64(len(sorted)-i)
		if cost < bestCost {
			bestCost = cost
			leftCenter := centerOf(sorted[i-1].BoundingBox(), axis)
			rightCenter := centerOf(sorted[i].BoundingBox(), axis)
			bestSplit = (leftCenter + rightCenter) / 2
		}
	}

	return bestSplit
}

type kdWorkItem struct {
	node    *kdNode
	estDist float64
}

// Hit finds the closest intersection among the tree's shapes, skipping any
// hit on the primitive that spawned ray (shadow/reflection/refraction rays
// carry their origin primitive in ray.Spawn to avoid self-intersection).
func (t *KDTree) Hit(ray core.Ray, tMin, tMax float64) (*material.Hit, bool) {
	if t.root == nil {
		return nil, false
	}

	var closest *material.Hit
	minDist := tMax
	worklist := []kdWorkItem{{t.root, 0}}

	for len(worklist) > 0 {
		if len(worklist) > 8 {
			sort.Slice(worklist, func(i, j int) bool {
				return worklist[i].estDist < worklist[j].estDist
			})
		}

		item := worklist[0]
		worklist = worklist[1:]

		if item.estDist > minDist {
			continue
		}
		if !item.node.bounds.Hit(ray, tMin, minDist) {
			continue
		}

		if item.node.isLeaf() {
			for _, shape := range item.node.shapes {
				hit, ok := shape.Hit(ray, tMin, minDist)
				if !ok {
					continue
				}
				if ray.Spawn != nil && ray.Spawn == hit.Primitive {
					continue
				}
				if hit.T > tMin && hit.T < minDist {
					minDist = hit.T
					closest = hit
				}
			}
			continue
		}

		if item.node.left != nil {
			worklist = append(worklist, kdWorkItem{item.node.left, estimateDistance(ray, item.node.left.bounds)})
		}
		if item.node.right != nil {
			worklist = append(worklist, kdWorkItem{item.node.right, estimateDistance(ray, item.node.right.bounds)})
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the bounds of the whole tree.
func (t *KDTree) BoundingBox() core.AABB {
	if t.root == nil {
		return core.AABB{}
	}
	return t.root.bounds
}

// estimateDistance estimates the distance from the ray origin to the
// closest point on bounds, projected onto the ray direction: 0 if the
// origin is inside the box, otherwise the (clamped non-negative)
// projection of the vector to the closest point.
func estimateDistance(ray core.Ray, bounds core.AABB) float64 {
	if bounds.Contains(ray.Origin) {
		return 0.0
	}
	closest := bounds.ClosestPoint(ray.Origin)
	toClosest := closest.Subtract(ray.Origin)
	if toClosest.LengthSquared() == 0 {
		return 0.0
	}
	return math.Max(0.0, toClosest.Dot(ray.Direction))
}
