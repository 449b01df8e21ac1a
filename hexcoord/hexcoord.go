// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package hexcoord implements the axial hex-coordinate math shared by the
// map, movement, and tile-placement packages.
//
// Distance is delegated to tools/spatial's HexGrid, whose doc comment
// states it interprets Position{X,Y} as cube coordinates x=cube.x,
// z=cube.z — exactly our axial (q,r) pair. HexGrid.IsValidPosition (and
// therefore GetNeighbors) rejects negative coordinates, but a Mage Knight
// map grows outward from the starting tile in every direction, so we bias
// coordinates by a fixed offset before delegating and size the grid large
// enough that no realistic map radius clips. Neighbor direction order
// (NE, E, SE, SW, W, NW) is the flower-petal layout from the original
// engine's tile definitions and is reimplemented directly rather than
// derived from HexGrid.GetNeighbors, which returns neighbors in an
// unspecified order — ours must match the spec's deterministic direction
// enumeration exactly.
package hexcoord

import "github.com/KirkDiggler/rpg-toolkit/tools/spatial"

// HexCoord is an axial hex coordinate. The third cube coordinate is
// implicit: s = -q - r.
type HexCoord struct {
	Q int
	R int
}

// New constructs a HexCoord.
func New(q, r int) HexCoord {
	return HexCoord{Q: q, R: r}
}

// gridBias keeps biased coordinates comfortably non-negative for any
// Mage Knight map (the game never places more than a few dozen tiles, so a
// radius of a few hundred hexes is unreachable in practice).
const gridBias = 1 << 16

var grid = spatial.NewHexGrid(spatial.HexGridConfig{
	Width:       1 << 18,
	Height:      1 << 18,
	Orientation: spatial.HexOrientationFlatTop,
})

func (h HexCoord) toPosition() spatial.Position {
	return spatial.Position{X: float64(h.Q + gridBias), Y: float64(h.R + gridBias)}
}

// Distance returns the hex (cube) distance between two coordinates.
func (h HexCoord) Distance(other HexCoord) int {
	return int(grid.Distance(h.toPosition(), other.toPosition()))
}

// Add returns the coordinate offset by another coordinate (used for tile
// placement and direction stepping).
func (h HexCoord) Add(d HexCoord) HexCoord {
	return HexCoord{Q: h.Q + d.Q, R: h.R + d.R}
}

// Direction is one of the six flower-petal directions used for exploration
// and neighbor enumeration, matching the original engine's tile layout.
type Direction int

// Direction values, in the deterministic enumeration order required by the
// legal-action enumerator: NE, E, SE, SW, W, NW.
const (
	DirNE Direction = iota
	DirE
	DirSE
	DirSW
	DirW
	DirNW
)

// AllDirections lists every direction in canonical enumeration order.
var AllDirections = [6]Direction{DirNE, DirE, DirSE, DirSW, DirW, DirNW}

// directionOffsets are the local axial offsets for each direction, taken
// from the original engine's tile hex layout (a 7-hex flower: one center
// hex plus these six petals).
var directionOffsets = map[Direction]HexCoord{
	DirNE: {Q: 1, R: -1},
	DirE:  {Q: 1, R: 0},
	DirSE: {Q: 0, R: 1},
	DirSW: {Q: -1, R: 1},
	DirW:  {Q: -1, R: 0},
	DirNW: {Q: 0, R: -1},
}

// Offset returns the local axial offset for a direction.
func (d Direction) Offset() HexCoord {
	return directionOffsets[d]
}

// String renders the direction's short name.
func (d Direction) String() string {
	switch d {
	case DirNE:
		return "NE"
	case DirE:
		return "E"
	case DirSE:
		return "SE"
	case DirSW:
		return "SW"
	case DirW:
		return "W"
	case DirNW:
		return "NW"
	default:
		return "?"
	}
}

// Neighbor returns the coordinate adjacent to h in direction d.
func (h HexCoord) Neighbor(d Direction) HexCoord {
	return h.Add(d.Offset())
}

// Neighbors returns all six coordinates adjacent to h, in canonical
// direction order (NE, E, SE, SW, W, NW).
func (h HexCoord) Neighbors() [6]HexCoord {
	var out [6]HexCoord
	for i, d := range AllDirections {
		out[i] = h.Neighbor(d)
	}
	return out
}

// IsAdjacent reports whether other is one of h's six neighbors.
func (h HexCoord) IsAdjacent(other HexCoord) bool {
	return h.Distance(other) == 1
}

// Less provides the lexicographic (q, r) ordering the enumerator's
// determinism contract requires for Move and tile-hex iteration.
func Less(a, b HexCoord) bool {
	if a.Q != b.Q {
		return a.Q < b.Q
	}
	return a.R < b.R
}
