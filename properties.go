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

package iceshell

import "fmt"

// Properties holds thermophysical material properties evaluated at a
// single pressure, temperature, and phase.
type Properties struct {
	Rho   float64 // density [kg/m³]
	Alpha float64 // isobaric thermal expansivity [1/K]
	Cp    float64 // isobaric specific heat [J/kg/K]
	K     float64 // thermal conductivity [W/m/K]
}

// Diffusivity returns the thermal diffusivity κ = k/(ρ·Cp) in m²/s.
func (p Properties) Diffusivity() float64 {
	return p.K / (p.Rho * p.Cp)
}

// A PropertyProvider evaluates material properties at a pressure
// (MPa), temperature (K), and phase. Implementations must be safe for
// concurrent use; the convection calculation queries the provider once
// per layer evaluation and layers may be evaluated in parallel.
//
// Providers return an OutOfRangeError when (p, T) falls outside the
// validity domain of their underlying correlations for the requested
// phase; the convection calculation propagates that error to the
// caller without attempting recovery.
type PropertyProvider interface {
	Properties(pMPa, tK float64, phase Phase) (Properties, error)
}

// OutOfRangeError indicates a pressure-temperature point outside the
// validity domain of a property correlation.
type OutOfRangeError struct {
	Phase Phase
	PMPa  float64
	TK    float64
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("iceshell: P = %g MPa, T = %g K is outside the "+
		"valid property range for %v", e.PMPa, e.TK, e.Phase)
}
