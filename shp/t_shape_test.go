// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// unit coordinates matrices [ndim][nverts]
func unitSquare() [][]float64 {
	return [][]float64{
		{0, 1, 1, 0},
		{0, 0, 1, 1},
	}
}

func unitCube() [][]float64 {
	return [][]float64{
		{0, 1, 1, 0, 0, 1, 1, 0},
		{0, 0, 1, 1, 0, 0, 1, 1},
		{0, 0, 0, 0, 1, 1, 1, 1},
	}
}

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01. partition of unity and gradients")

	for _, geo := range []string{"tri3", "qua4", "tet4", "hex8"} {

		s := Get(geo, 0)
		if s == nil {
			tst.Errorf("cannot get shape %q", geo)
			return
		}

		ips, err := GetIps(geo, 0)
		if err != nil {
			tst.Errorf("GetIps failed:\n%v", err)
			return
		}

		// at each integration point: sum(S) == 1 and sum(dSdR) == 0
		for _, ip := range ips {
			s.Func(s.S, s.DSdR, ip.R, true)
			sum := 0.0
			for m := 0; m < s.Nverts; m++ {
				sum += s.S[m]
			}
			chk.Scalar(tst, io.Sf("%s: sum(S)", geo), 1e-14, sum, 1.0)
			for j := 0; j < s.Gndim; j++ {
				sumg := 0.0
				for m := 0; m < s.Nverts; m++ {
					sumg += s.DSdR[m][j]
				}
				chk.Scalar(tst, io.Sf("%s: sum(dSdR)", geo), 1e-14, sumg, 0.0)
			}
		}

		// Kronecker property at natural coordinates of vertices
		r := make([]float64, 3)
		for n := 0; n < s.Nverts; n++ {
			for j := 0; j < s.Gndim; j++ {
				r[j] = s.NatCoords[j][n]
			}
			s.Func(s.S, s.DSdR, r, false)
			for m := 0; m < s.Nverts; m++ {
				if m == n {
					chk.Scalar(tst, io.Sf("%s: S%d@%d", geo, m, n), 1e-14, s.S[m], 1.0)
				} else {
					chk.Scalar(tst, io.Sf("%s: S%d@%d", geo, m, n), 1e-14, s.S[m], 0.0)
				}
			}
		}
	}
}

func Test_shape02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape02. quadrature: weights sum to element measure")

	// qua4 on unit square: J == 1/4 and sum(W) == 4 => measure == 1
	s := Get("qua4", 0)
	ips, _ := GetIps("qua4", 4)
	vol := 0.0
	for _, ip := range ips {
		err := s.CalcAtIp(unitSquare(), ip, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		vol += s.J * ip.W
	}
	chk.Scalar(tst, "qua4: volume", 1e-14, vol, 1.0)

	// hex8 on unit cube
	s = Get("hex8", 0)
	ips, _ = GetIps("hex8", 8)
	vol = 0.0
	for _, ip := range ips {
		err := s.CalcAtIp(unitCube(), ip, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		vol += s.J * ip.W
	}
	chk.Scalar(tst, "hex8: volume", 1e-14, vol, 1.0)

	// tri3: area == 1/2
	s = Get("tri3", 0)
	ips, _ = GetIps("tri3", 3)
	xtri := [][]float64{
		{0, 1, 0},
		{0, 0, 1},
	}
	vol = 0.0
	for _, ip := range ips {
		err := s.CalcAtIp(xtri, ip, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		vol += s.J * ip.W
	}
	chk.Scalar(tst, "tri3: area", 1e-14, vol, 0.5)

	// tet4: volume == 1/6
	s = Get("tet4", 0)
	ips, _ = GetIps("tet4", 4)
	xtet := [][]float64{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	vol = 0.0
	for _, ip := range ips {
		err := s.CalcAtIp(xtet, ip, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		vol += s.J * ip.W
	}
	chk.Scalar(tst, "tet4: volume", 1e-14, vol, 1.0/6.0)
}

func Test_shape03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape03. linear field reproduced exactly")

	// u(x,y) = 2 + 3x - y on stretched quadrilateral => G recovers (3,-1)
	x := [][]float64{
		{0, 2, 2.5, -0.5},
		{0, 0.5, 2, 1.5},
	}
	u := make([]float64, 4)
	for m := 0; m < 4; m++ {
		u[m] = 2.0 + 3.0*x[0][m] - x[1][m]
	}
	s := Get("qua4", 1) // copy: do not touch shared scratchpad
	ips, _ := GetIps("qua4", 4)
	for _, ip := range ips {
		err := s.CalcAtIp(x, ip, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		gx, gy := 0.0, 0.0
		for m := 0; m < 4; m++ {
			gx += s.G[m][0] * u[m]
			gy += s.G[m][1] * u[m]
		}
		chk.Scalar(tst, "du/dx", 1e-13, gx, 3.0)
		chk.Scalar(tst, "du/dy", 1e-13, gy, -1.0)
	}

	// basic type mapping
	if GetBasic("qua8", 0) != Get("qua4", 0) {
		tst.Errorf("GetBasic(qua8) must return qua4 shape")
	}
	chk.IntAssert(GetNverts("hex20"), 8)
}
