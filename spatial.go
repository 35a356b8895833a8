package bigpicture

import (
	"image"
	"math"

	"github.com/The-Nebula-Project-ZMG/NebulaBrowser-sub001/types"
)

// DirectionTolerance is the band, in pixels, a candidate's center must lie
// strictly beyond along the requested axis before it is eligible. It keeps
// near-aligned neighbors from being treated as "above" or "left of" the
// current target due to sub-row layout jitter.
const DirectionTolerance = 10

// rectCenter returns the center point of a rectangle.
func rectCenter(r image.Rectangle) (float64, float64) {
	return float64(r.Min.X+r.Max.X) / 2, float64(r.Min.Y+r.Max.Y) / 2
}

// ResolveDirection finds the best next target for a directional move.
// rects are the bounding rectangles of the active focusable set, in set
// order; current is the focused index. It returns the index of the
// eligible candidate whose center is nearest (Euclidean) to the current
// center, ties resolving to the first encountered. When no candidate lies
// beyond the tolerance band in the requested direction, the current index
// is returned unchanged and focus does not move.
//
// This is a greedy nearest-neighbor heuristic, not a directional-graph
// solver; it does not score alignment or overlap beyond the tolerance
// gate. That is an accepted approximation.
func ResolveDirection(rects []image.Rectangle, current int, direction int) int {
	if current < 0 || current >= len(rects) {
		return current
	}

	curX, curY := rectCenter(rects[current])

	best := current
	bestDist := math.Inf(1)

	for i, r := range rects {
		if i == current {
			continue
		}
		cx, cy := rectCenter(r)

		eligible := false
		switch direction {
		case types.DirUp:
			eligible = cy < curY-DirectionTolerance
		case types.DirDown:
			eligible = cy > curY+DirectionTolerance
		case types.DirLeft:
			eligible = cx < curX-DirectionTolerance
		case types.DirRight:
			eligible = cx > curX+DirectionTolerance
		}
		if !eligible {
			continue
		}

		dx := cx - curX
		dy := cy - curY
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}

	return best
}
