// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package front provides crack-front coordinate frames and ring
// weighting-function generators for domain-integral evaluations
package front

// Frame supplies, for each point along a discretised crack front, the
// local coordinate frame (first axis tangent to the crack-extension
// direction), neighbouring arc-length segments and two alternative ring
// weighting-function generators. Implementations must be safe for
// concurrent read-only use during an evaluation pass.
type Frame interface {

	// geometry
	NumPoints() int  // number of points along the crack front
	NumRings() int   // number of rings available to the weight generators
	TreatAs2D() bool // treat the front as a single, non-varying 2D front

	// rotation from global to local crack-front coordinates @ point p
	RotateVector(res, v []float64, p int)   // res := R v       (res and v of size 3)
	RotateTensor(res, t [][]float64, p int) // res := R t Rᵀ    (res and t of size 3x3)

	// arc lengths to neighbouring crack-front points
	ForwardSegLength(p int) float64  // length to next point (0 at the last point)
	BackwardSegLength(p int) float64 // length to previous point (0 at the first point)

	// crack-front-tangential strain @ point p (T-stress correction only)
	TangentialStrain(p int) float64

	// ring weighting-function generators; both return values in [0,1]
	GeomWeight(p, ring int, x []float64) float64 // geometric ring weight @ node with coordinates x
	TopoWeight(p, ring, vid int) float64         // topological ring weight @ node with vertex id vid
}
