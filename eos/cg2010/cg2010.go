/*
Copyright © 2021 the IceShell authors.
This file is part of IceShell.

IceShell is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

IceShell is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with IceShell.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package cg2010 implements material properties for the ordinary
// water-ice phases (I, II, III, V, VI) using the thermodynamic model
// of Choukroun and Grasset (2010), https://doi.org/10.1063/1.3487520.
// Specific volume is V0·ζ1(T)·ζ2(P) with the table 3 coefficients,
// which gives density directly and thermal expansivity analytically;
// specific heat is the linear table 2 fit. Thermal conductivity
// follows the 1/T law with the per-phase coefficients of Andersson and
// Inaba (2005).
package cg2010

import (
	"math"

	"github.com/cryomodel/iceshell"
)

// Validity envelope. The Choukroun and Grasset model is fit to data up
// to about 2.2 GPa and the melting curves; the low temperature end is
// an extrapolation that stays well-behaved because ζ1 saturates.
const (
	minT = 100  // [K]
	maxT = 380  // [K]
	minP = 0    // [MPa]
	maxP = 2200 // [MPa]
)

// coeffs holds the Choukroun and Grasset (2010) parameters for one
// phase (tables 2 and 3) plus the Andersson and Inaba (2005)
// conductivity coefficient.
type coeffs struct {
	c0, c1 float64 // Cp = c0 + c1·T [J/kg/K]
	v0     float64 // reference specific volume [m³/kg]
	tRef   float64 // ζ1 reference temperature [K]
	a0, a1 float64 // ζ1 = 1 + a0·tanh(a1·(T − tRef))
	b0, b1 float64 // ζ2 = b0 + b1·(1 − tanh(b2·P))
	b2     float64
	dCond  float64 // k(T) = dCond/T [W/m]
}

var iceCoeffs = map[iceshell.Phase]coeffs{
	iceshell.IceI: {74.11, 7.56, 1.086e-3, 273.16, 0.019, 0.0075,
		0.974, 0.0302, 0.00395, 632},
	iceshell.IceII: {2200, 0, 0.8425e-3, 238.45, 0.06, 0.0070,
		0.976, 0.0425, 0.0022, 418},
	iceshell.IceIII: {820, 7, 0.855e-3, 256.43, 0.0375, 0.0203,
		0.951, 0.097, 0.002, 242},
	iceshell.IceV: {700, 7.56, 0.783e-3, 273.31, 0.005, 0.01,
		0.977, 0.12, 0.0016, 328},
	iceshell.IceVI: {940, 5.5, 0.743e-3, 356.15, 0.024, 0.002,
		0.969, 0.05, 0.00102, 183},
}

// EOS evaluates ordinary-ice material properties. The zero value is
// ready to use and safe for concurrent use.
type EOS struct{}

// New returns a ready-to-use ordinary-ice equation of state.
func New() EOS { return EOS{} }

// Properties implements iceshell.PropertyProvider for the ordinary ice
// phases. It returns an iceshell.UnsupportedPhaseError for water,
// clathrate, and unknown phases, and an iceshell.OutOfRangeError
// outside the model's validity envelope.
func (EOS) Properties(pMPa, tK float64, phase iceshell.Phase) (iceshell.Properties, error) {
	c, ok := iceCoeffs[phase]
	if !ok {
		return iceshell.Properties{}, iceshell.UnsupportedPhaseError{Phase: phase}
	}
	if tK < minT || tK > maxT || pMPa < minP || pMPa > maxP {
		return iceshell.Properties{}, iceshell.OutOfRangeError{Phase: phase, PMPa: pMPa, TK: tK}
	}

	th := math.Tanh(c.a1 * (tK - c.tRef))
	zeta1 := 1 + c.a0*th
	zeta2 := c.b0 + c.b1*(1-math.Tanh(c.b2*pMPa))
	v := c.v0 * zeta1 * zeta2

	return iceshell.Properties{
		Rho: 1 / v,
		// α = (1/V)(∂V/∂T) at constant P; only ζ1 depends on T.
		Alpha: c.a0 * c.a1 * (1 - th*th) / zeta1,
		Cp:    c.c0 + c.c1*tK,
		K:     c.dCond / tK,
	}, nil
}
