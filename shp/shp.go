// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements first-order shape structures/routines for the
// interpolation of weighting (q) functions over ring domains
package shp

import (
	"github.com/cpmech/gosl/la"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for dxdR

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data
//
//	Note: only first-order Lagrange shapes are implemented because the
//	      weighting function is a geometric device and its interpolation
//	      order is fixed, regardless of the solution fields' order
type Shape struct {

	// geometry
	Type      string      // name; e.g. "qua4"
	Func      ShpFunc     // shape/derivs function callback function
	Gndim     int         // geometry dimension; e.g. "qua4" => 2
	Nverts    int         // number of vertices in cell; e.g. "qua4" => 4
	NatCoords [][]float64 // natural coordinates [gndim][nverts]

	// scratchpad: volume
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdR
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	var p Shape
	p.Type = o.Type
	p.Func = o.Func
	p.Gndim = o.Gndim
	p.Nverts = o.Nverts
	p.NatCoords = la.MatClone(o.NatCoords)
	p.init_scratchpad()
	return &p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// basictypes maps cell types to the geometry of the corresponding basic
// (first-order) element; e.g. "qua8" => "qua4"
var basictypes = map[string]string{
	"tri3": "tri3", "tri6": "tri3",
	"qua4": "qua4", "qua8": "qua4", "qua9": "qua4",
	"tet4": "tet4", "tet10": "tet4",
	"hex8": "hex8", "hex20": "hex8",
}

// Get returns an existent Shape structure
//
//	Note: 1) returns nil on errors
//	      2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// GetBasic returns the first-order Shape corresponding to a (possibly
// higher-order) cell type; e.g. "qua8" => qua4 shape
//
//	Note: returns nil on errors
func GetBasic(cellType string, goroutineId int) *Shape {
	basic, ok := basictypes[cellType]
	if !ok {
		return nil
	}
	return Get(basic, goroutineId)
}

// GetNverts returns the number of corner vertices of the basic element
// corresponding to cellType; returns -1 on errors
func GetNverts(cellType string) int {
	basic, ok := basictypes[cellType]
	if !ok {
		return -1
	}
	return factory[basic].Nverts
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip *Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip.R, false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// CalcAtIp calculates volume data such as S and G at integration point
//
//	Input:
//	 x[ndim][nverts] -- coordinates matrix of element (corner nodes)
//	 ip              -- integration point
//	Output:
//	 S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtIp(x [][]float64, ip *Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip.R, derivs)
	if !derivs {
		return
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < len(x); i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// dRdx := inv(dxdR)
	o.J, err = la.MatInv(o.DRdx, o.DxdR, MINDET)
	if err != nil {
		return
	}

	// G == dSdx := dSdR * dRdx  =>  dS^m/dx_j := sum_i dS^m/dR_i * dR_i/dx_j
	la.MatMul(o.G, 1, o.DSdR, o.DRdx)
	return
}

// AxisymGetRadius returns the x0 == radius for axisymmetric computations
//
//	Note: must be called after CalcAtIp
func (o *Shape) AxisymGetRadius(x [][]float64) (radius float64) {
	for m := 0; m < o.Nverts; m++ {
		radius += o.S[m] * x[0][m]
	}
	return
}

// init_scratchpad initialise volume data (scratchpad)
func (o *Shape) init_scratchpad() {
	o.S = make([]float64, o.Nverts)
	o.DSdR = la.MatAlloc(o.Nverts, o.Gndim)
	o.DxdR = la.MatAlloc(o.Gndim, o.Gndim)
	o.DRdx = la.MatAlloc(o.Gndim, o.Gndim)
	o.G = la.MatAlloc(o.Nverts, o.Gndim)
}
