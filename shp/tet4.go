// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// shape function of tet4
func init() {
	var o Shape
	o.Type = "tet4"
	o.Func = func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
		S[0] = 1.0 - r[0] - r[1] - r[2]
		S[1] = r[0]
		S[2] = r[1]
		S[3] = r[2]
		if !derivs {
			return
		}
		dSdR[0][0] = -1.0
		dSdR[0][1] = -1.0
		dSdR[0][2] = -1.0
		dSdR[1][0] = 1.0
		dSdR[1][1] = 0.0
		dSdR[1][2] = 0.0
		dSdR[2][0] = 0.0
		dSdR[2][1] = 1.0
		dSdR[2][2] = 0.0
		dSdR[3][0] = 0.0
		dSdR[3][1] = 0.0
		dSdR[3][2] = 1.0
	}
	o.Gndim = 3
	o.Nverts = 4
	o.NatCoords = [][]float64{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	o.init_scratchpad()
	factory["tet4"] = &o
}
