// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package front

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// constants
const ORTHOTOL = 1.0e-10 // tolerance for unit/orthogonality checks of the frame axes

// Straight implements Frame for a straight crack front: the crack
// extension direction and the crack plane normal are constant along the
// front, so a single rotation matrix serves every point.
type Straight struct {

	// input
	Pts [][]float64 // [npts][ndim] crack front point coordinates; a single point means 2D treatment
	Dir []float64   // [3] crack extension direction (local x1; unit)
	Nrm []float64   // [3] crack plane normal (local x2; unit)

	// derived
	Tan []float64   // [3] front tangent: local x3 = Dir cross Nrm
	R   [][]float64 // [3][3] rotation matrix; rows are the local axes

	// rings
	rin, rout []float64   // [nrings] geometric ring inner/outer radii
	vidring   map[int]int // vertex id => topological ring number (1 = adjacent to front)
	ntopo     int         // number of topological rings

	// tangential strain (from the solution; optional)
	epsT []float64 // [npts]
}

// NewStraight returns a new straight crack front
//
//	Input:
//	 pts -- crack front points; one point only means the front is treated as 2D
//	 dir -- crack extension direction (unit vector, size 3)
//	 nrm -- crack plane normal (unit vector, size 3, orthogonal to dir)
func NewStraight(pts [][]float64, dir, nrm []float64) (o *Straight, err error) {
	if len(pts) < 1 {
		return nil, chk.Err("at least one crack front point is required")
	}
	if math.Abs(la.VecNorm(dir)-1.0) > ORTHOTOL || math.Abs(la.VecNorm(nrm)-1.0) > ORTHOTOL {
		return nil, chk.Err("crack direction and normal must be unit vectors")
	}
	if math.Abs(la.VecDot(dir, nrm)) > ORTHOTOL {
		return nil, chk.Err("crack direction and normal must be orthogonal")
	}
	o = new(Straight)
	o.Pts = pts
	o.Dir = la.VecClone(dir)
	o.Nrm = la.VecClone(nrm)
	o.Tan = []float64{
		dir[1]*nrm[2] - dir[2]*nrm[1],
		dir[2]*nrm[0] - dir[0]*nrm[2],
		dir[0]*nrm[1] - dir[1]*nrm[0],
	}
	o.R = [][]float64{la.VecClone(o.Dir), la.VecClone(o.Nrm), la.VecClone(o.Tan)}
	return
}

// SetGeomRings sets the inner/outer radii of the geometric rings
func (o *Straight) SetGeomRings(rin, rout []float64) (err error) {
	if len(rin) != len(rout) {
		return chk.Err("inner and outer radii lists must have the same length: %d != %d", len(rin), len(rout))
	}
	for i := 0; i < len(rin); i++ {
		if !(rout[i] > rin[i]) || rin[i] < 0 {
			return chk.Err("ring %d: radii must satisfy 0 <= rin < rout; got rin=%g rout=%g", i, rin[i], rout[i])
		}
	}
	o.rin, o.rout = rin, rout
	return
}

// SetTopoRings sets the vertex-id => ring-number map of the topological
// ring generator; ring numbers start at 1 on the nodes adjacent to the front
func (o *Straight) SetTopoRings(vidring map[int]int) {
	o.vidring = vidring
	o.ntopo = 0
	for _, r := range vidring {
		if r > o.ntopo {
			o.ntopo = r
		}
	}
}

// SetTangStrain sets the crack-front-tangential strains (one per point)
func (o *Straight) SetTangStrain(epsT []float64) {
	o.epsT = epsT
}

// NumPoints returns the number of points along the crack front
func (o *Straight) NumPoints() int { return len(o.Pts) }

// NumRings returns the number of rings available to the weight generators
func (o *Straight) NumRings() int {
	if len(o.rin) > o.ntopo {
		return len(o.rin)
	}
	return o.ntopo
}

// TreatAs2D tells whether the front is a single, non-varying 2D front
func (o *Straight) TreatAs2D() bool { return len(o.Pts) == 1 }

// RotateVector rotates v from global to local crack-front coordinates
func (o *Straight) RotateVector(res, v []float64, p int) {
	for i := 0; i < 3; i++ {
		res[i] = 0.0
		for j := 0; j < 3; j++ {
			res[i] += o.R[i][j] * v[j]
		}
	}
}

// RotateTensor rotates t from global to local crack-front coordinates:
// res := R t Rᵀ
func (o *Straight) RotateTensor(res, t [][]float64, p int) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i][j] = 0.0
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					res[i][j] += o.R[i][k] * t[k][l] * o.R[j][l]
				}
			}
		}
	}
}

// ForwardSegLength returns the arc length to the next crack-front point
func (o *Straight) ForwardSegLength(p int) float64 {
	if p >= len(o.Pts)-1 {
		return 0.0
	}
	return dist(o.Pts[p+1], o.Pts[p])
}

// BackwardSegLength returns the arc length to the previous crack-front point
func (o *Straight) BackwardSegLength(p int) float64 {
	if p < 1 {
		return 0.0
	}
	return dist(o.Pts[p], o.Pts[p-1])
}

// TangentialStrain returns the crack-front-tangential strain @ point p
func (o *Straight) TangentialStrain(p int) float64 {
	if o.epsT == nil {
		return 0.0
	}
	return o.epsT[p]
}

// GeomWeight returns the geometric ring weight @ node with coordinates x:
// 1 within the inner radius, decaying linearly to 0 at the outer radius.
// The distance is measured from the crack front line (not the point), so
// the weight profile does not vary along a straight front. In particular
// the support never decays along the front tangent: for a multi-point
// front the weight is not localised around point p, and the per-point
// values are separated by the nodal weights and the segment
// normalisation alone.
func (o *Straight) GeomWeight(p, ring int, x []float64) float64 {
	if ring < 0 || ring >= len(o.rin) {
		return 0.0
	}

	// vector from front point to node
	var v [3]float64
	for i := 0; i < len(x); i++ {
		v[i] = x[i] - o.Pts[p][i]
	}

	// remove the component along the front tangent
	vt := v[0]*o.Tan[0] + v[1]*o.Tan[1] + v[2]*o.Tan[2]
	d := 0.0
	for i := 0; i < 3; i++ {
		c := v[i] - vt*o.Tan[i]
		d += c * c
	}
	d = math.Sqrt(d)

	// piecewise-linear decay
	rin, rout := o.rin[ring], o.rout[ring]
	switch {
	case d <= rin:
		return 1.0
	case d >= rout:
		return 0.0
	}
	return (rout - d) / (rout - rin)
}

// TopoWeight returns the topological ring weight @ node with vertex id
// vid: 1 for nodes within the given ring number, 0 outside
func (o *Straight) TopoWeight(p, ring, vid int) float64 {
	if o.vidring == nil {
		return 0.0
	}
	r, ok := o.vidring[vid]
	if !ok {
		return 0.0
	}
	if r <= ring {
		return 1.0
	}
	return 0.0
}

// dist returns the distance between two points (2 or 3 components)
func dist(a, b []float64) (d float64) {
	for i := 0; i < len(a); i++ {
		d += (a[i] - b[i]) * (a[i] - b[i])
	}
	return math.Sqrt(d)
}
