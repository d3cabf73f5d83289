// Package world owns the scene's primitives, light, and background color,
// and keeps a KD-tree over the primitives in sync with them.
package world

import (
	"fmt"

	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
	"github.com/finch-ray/go-whitted-raytracer/pkg/geometry"
	"github.com/finch-ray/go-whitted-raytracer/pkg/material"
)

// Light is a single point light source: a position and a radiance color.
type Light struct {
	Position core.Vec3
	Color    core.Vec3
}

// World holds the immutable-during-a-render scene state: the primitive
// list, the one point light, the background color returned by missed
// rays, and the KD-tree built over the primitives.
type World struct {
	Shapes     []geometry.Shape
	Light      Light
	Background core.Vec3

	Tree *geometry.KDTree

	maxLeaf  int
	maxDepth int
	split    geometry.SplitMode
}

// New creates an empty World with the given light and background color,
// using the default KD-tree parameters (max leaf 4, max depth 20, median
// split). Use WithKDTreeParams to override them before adding shapes.
func New(light Light, background core.Vec3) *World {
	return &World{
		Light:      light,
		Background: background,
		maxLeaf:    0, // let geometry.NewKDTree apply its own defaults
		maxDepth:   0,
		split:      geometry.SplitMedian,
	}
}

// WithKDTreeParams overrides the KD-tree build parameters used by the next
// Rebuild. A maxLeaf or maxDepth of 0 keeps geometry.NewKDTree's default.
func (w *World) WithKDTreeParams(maxLeaf, maxDepth int, split geometry.SplitMode) *World {
	w.maxLeaf = maxLeaf
	w.maxDepth = maxDepth
	w.split = split
	return w
}

// Add appends shapes to the world and rebuilds the KD-tree once, after all
// of them have been added.
func (w *World) Add(shapes ...geometry.Shape) error {
	w.Shapes = append(w.Shapes, shapes...)
	return w.Rebuild()
}

// Rebuild reconstructs the KD-tree from the current shape list. It is the
// only mutation path for Tree and must be called after any change to
// Shapes, between renders. It returns an error if any shape's bounding box
// is invalid (Min > Max on some axis), which can only happen from a
// programmer error in a hand-built scene.
func (w *World) Rebuild() error {
	for i, s := range w.Shapes {
		if !s.BoundingBox().IsValid() {
			return fmt.Errorf("world: shape %d has an invalid bounding box", i)
		}
	}
	w.Tree = geometry.NewKDTree(w.Shapes, w.maxLeaf, w.maxDepth, w.split)
	return nil
}

// Intersect queries the world's KD-tree for the nearest hit along ray
// within [tMin, tMax]. An empty world (no shapes added yet) reports no
// hit.
func (w *World) Intersect(ray core.Ray, tMin, tMax float64) (*material.Hit, bool) {
	if w.Tree == nil {
		return nil, false
	}
	return w.Tree.Hit(ray, tMin, tMax)
}
