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

// Package clathrate implements material properties for fully occupied
// methane clathrate: density from Helgerud et al. (2009),
// https://doi.org/10.1029/2009JB006451; heat capacity and thermal
// expansivity from Ning et al. (2015),
// https://doi.org/10.1039/C4CP04212C; and a constant thermal
// conductivity from Waite et al. (2005). It also provides the Sloan
// (1998) dissociation curves, as fit by Choukroun et al. (2010),
// https://doi.org/10.1016/j.icarus.2009.08.011, for checking whether
// clathrate is stable at a given pressure and temperature.
package clathrate

import (
	"math"

	"github.com/cryomodel/iceshell"
)

// T0 is the Celsius zero point [K].
const T0 = 273.15

// KTherm is the thermal conductivity of methane clathrate in W/m/K.
// Unlike the ordinary ices it is treated as independent of temperature
// (Waite et al. 2005).
const KTherm = 0.5

// Evaluation envelope. The laboratory ranges of the underlying fits
// are narrower (the Helgerud density measurements stop at 97.7 MPa and
// +15 °C); as in most applications we extrapolate moderately beyond
// them, but refuse clearly unsupported conditions.
const (
	minT = 5   // [K]
	maxT = 300 // [K]
	minP = 0   // [MPa]
	maxP = 150 // [MPa]
)

// EOS evaluates methane clathrate material properties. The zero value
// is ready to use and safe for concurrent use.
type EOS struct{}

// New returns a ready-to-use clathrate equation of state.
func New() EOS { return EOS{} }

// Properties implements iceshell.PropertyProvider for the clathrate
// phase. Other phases yield an iceshell.UnsupportedPhaseError.
func (EOS) Properties(pMPa, tK float64, phase iceshell.Phase) (iceshell.Properties, error) {
	if phase != iceshell.Clathrate {
		return iceshell.Properties{}, iceshell.UnsupportedPhaseError{Phase: phase}
	}
	if tK < minT || tK > maxT || pMPa < minP || pMPa > maxP {
		return iceshell.Properties{}, iceshell.OutOfRangeError{Phase: phase, PMPa: pMPa, TK: tK}
	}
	tC := tK - T0
	return iceshell.Properties{
		Rho:   (-2.3815e-4*tC + 1.1843e-4*pMPa + 0.92435) * 1e3,
		Alpha: (3.5697e-4*tK + 0.2558) / (3.5697e-4*tK*tK + 0.2558*tK + 1612.8597),
		Cp:    3.19*tK + 2150,
		K:     KTherm,
	}, nil
}

// DissociationTemperature returns the temperature in K above which
// fully occupied methane clathrate dissociates at pressure pMPa. The
// curve is a degree-2 fit at low pressure and a logarithmic fit above
// 2.567 MPa (Sloan 1998, as reported by Choukroun et al. 2010).
func DissociationTemperature(pMPa float64) float64 {
	if pMPa <= 0 {
		// Avoid log of zero at surface pressure.
		pMPa = 1e-12
	}
	if pMPa < 2.567 {
		return 212.33820985 + 43.37319252*pMPa - 7.83348412*pMPa*pMPa
	}
	return -20.3058036 + 8.09637199*math.Log(pMPa/4.56717945e-16)
}

// Stable reports whether fully occupied methane clathrate is stable at
// the given pressure and temperature.
func Stable(pMPa, tK float64) bool {
	return tK < DissociationTemperature(pMPa)
}
