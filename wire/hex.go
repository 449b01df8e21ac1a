// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mage-knight-digital/mkengine/hexcoord"
)

// hexWire is the wire shape of a hex coordinate: {"q": ..., "r": ...}.
type hexWire struct {
	Q int `json:"q"`
	R int `json:"r"`
}

func toHexWire(h hexcoord.HexCoord) hexWire {
	return hexWire{Q: h.Q, R: h.R}
}

func (h hexWire) toHexCoord() hexcoord.HexCoord {
	return hexcoord.New(h.Q, h.R)
}

// directionNames maps each direction to its wire (snake_case) name.
var directionNames = map[hexcoord.Direction]string{
	hexcoord.DirNE: "ne",
	hexcoord.DirE:  "e",
	hexcoord.DirSE: "se",
	hexcoord.DirSW: "sw",
	hexcoord.DirW:  "w",
	hexcoord.DirNW: "nw",
}

var directionsByName = func() map[string]hexcoord.Direction {
	out := make(map[string]hexcoord.Direction, len(directionNames))
	for d, name := range directionNames {
		out[name] = d
	}
	return out
}()

func directionToWire(d hexcoord.Direction) (string, error) {
	name, ok := directionNames[d]
	if !ok {
		return "", fmt.Errorf("wire: unknown direction %d", d)
	}
	return name, nil
}

func directionFromWire(name string) (hexcoord.Direction, error) {
	d, ok := directionsByName[name]
	if !ok {
		return 0, fmt.Errorf("wire: unknown direction %q", name)
	}
	return d, nil
}

// marshalHexKeyedMap renders a hex-coordinate-keyed map as a wire-friendly
// array sorted in the engine's canonical (q, r) lexicographic order, since
// a Go map keyed by a struct cannot marshal to a JSON object directly.
func marshalHexKeyedMap[V any](m map[hexcoord.HexCoord]V, entry func(hexcoord.HexCoord, V) any) ([]byte, error) {
	keys := make([]hexcoord.HexCoord, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return hexcoord.Less(keys[i], keys[j]) })

	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = entry(k, m[k])
	}
	return json.Marshal(out)
}
