// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fint

import (
	"github.com/cpmech/gosl/tsr"
)

// SymDense expands a symmetric tensor from its Mandel representation into
// a dense 3x3 matrix; the off-diagonal components are mirrored
func SymDense(res [][]float64, mandel []float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i][j] = tsr.M2T(mandel, i, j)
		}
	}
}

// GradDense embeds a [ndim][ndim] gradient matrix into a dense 3x3
// matrix; rows and columns beyond ndim are zero (in particular, the
// third row is the zero vector for two-dimensional problems)
func GradDense(res, g [][]float64) {
	ndim := len(g)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i < ndim && j < ndim {
				res[i][j] = g[i][j]
			} else {
				res[i][j] = 0.0
			}
		}
	}
}

// Vec3 embeds a vector with ndim components into a 3-component vector,
// zeroing the remaining components; v may be nil (res is zeroed)
func Vec3(res, v []float64) {
	for i := 0; i < 3; i++ {
		res[i] = 0.0
	}
	for i := 0; i < len(v); i++ {
		res[i] = v[i]
	}
}
