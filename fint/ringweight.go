// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fint

import (
	"github.com/robseith/moose/front"
	"github.com/robseith/moose/inp"

	"github.com/cpmech/gosl/chk"
)

// RingWeight selects one of the two ring weighting-function generation
// strategies. The two generators number their rings from different
// baselines, so the ring-index offset is a property of the variant and
// not a conditional in the integration loop.
type RingWeight interface {
	Offset() int                                                  // subtracted from the input ring index before invoking the generator
	Nodal(fnt front.Frame, p, ring, vid int, x []float64) float64 // weight @ one node
}

// GeomRing generates weights from ring geometry (radial decay)
type GeomRing struct{}

// Offset returns the ring-index baseline of the geometric generator
func (o GeomRing) Offset() int { return 1 }

// Nodal returns the geometric weight @ node with coordinates x
func (o GeomRing) Nodal(fnt front.Frame, p, ring, vid int, x []float64) float64 {
	return fnt.GeomWeight(p, ring, x)
}

// TopoRing generates weights from mesh topology (node rings)
type TopoRing struct{}

// Offset returns the ring-index baseline of the topological generator
func (o TopoRing) Offset() int { return 0 }

// Nodal returns the topological weight @ node with vertex id vid
func (o TopoRing) Nodal(fnt front.Frame, p, ring, vid int, x []float64) float64 {
	return fnt.TopoWeight(p, ring, vid)
}

// NewRingWeight returns the ring weighting-function strategy named by kind
func NewRingWeight(kind string) (RingWeight, error) {
	switch kind {
	case inp.QkindGeometry:
		return GeomRing{}, nil
	case inp.QkindTopology:
		return TopoRing{}, nil
	}
	return nil, chk.Err("cannot find ring weighting function kind %q", kind)
}
