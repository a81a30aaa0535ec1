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

// Package iceshell estimates whether a planetary ice or clathrate
// shell transports heat by conduction or by solid-state convection,
// following the scaling analysis of Deschamps and Sotin (2001). Given
// the thermal state of a single layer it returns the heat flux, the
// thermal boundary layer geometry, the convecting-core temperature,
// and the material properties at that temperature. Material properties
// themselves come from a pluggable PropertyProvider; see the eos
// subpackages for implementations.
package iceshell

import "math"

// Version is the IceShell version number.
const Version = "0.2.0"

// Layer describes the thermal state of one shell layer. Layers are
// plain values; evaluating one has no effect on any other.
type Layer struct {
	TTop      float64 // temperature at the top of the layer [K]
	TBottom   float64 // temperature at the bottom of the layer [K]
	PMid      float64 // pressure at the layer midpoint [MPa]
	Thickness float64 // layer thickness [m]
	Gravity   float64 // local gravitational acceleration [m/s²]
}

// Regime is the outcome of a convection-regime evaluation for a single
// layer. It is fully determined by the Layer and Phase inputs.
type Regime struct {
	HeatFlux float64 // heat flux through the layer [W/m²]
	UpperBL  float64 // conductive lid thickness [m]; 0 if conducting
	LowerBL  float64 // lower thermal boundary layer thickness [m]; 0 if conducting
	TCore    float64 // convecting core temperature [K]; ΔT if conducting

	Props     Properties // material properties at the core temperature
	Viscosity float64    // dynamic viscosity at the core temperature [Pa s]
	Ra        float64    // Rayleigh number

	// Convecting reports whether the layer convects. Downgraded
	// reports that the Rayleigh number was super-critical but the
	// convective solution was rejected because its conductive lid
	// exceeded the layer thickness; such layers behave exactly like
	// conducting ones. Downgraded is never true when Convecting is.
	Convecting bool
	Downgraded bool
}

// Convect decides whether a shell layer of the given phase transports
// heat by conduction or by solid-state convection and quantifies the
// resulting heat flux and boundary layer geometry.
//
// The convective branch follows Deschamps and Sotin (2001): the core
// temperature comes from the rheological sublayer scaling, material
// properties and viscosity are evaluated at that temperature, and the
// Rayleigh number is compared against a phase-dependent critical
// value (1e5 for the ordinary ices, 2e7 for clathrate). A
// super-critical layer whose conductive lid would exceed the layer
// thickness is downgraded to conduction. Conducting layers use the
// logarithmic conduction law for the ordinary ices and the Fourier law
// for clathrate.
//
// Convect rejects liquid water with an UnsupportedPhaseError before
// consulting the provider, and returns a DomainError if any
// intermediate quantity is non-finite or unphysical. Provider errors
// are returned unchanged.
func Convect(l Layer, phase Phase, provider PropertyProvider) (*Regime, error) {
	par, ok := phaseTable[phase]
	if !ok {
		return nil, UnsupportedPhaseError{phase}
	}
	deltaT := l.TBottom - l.TTop
	if deltaT <= 0 {
		return nil, DomainError{"temperature difference", deltaT}
	}
	if l.Thickness <= 0 {
		return nil, DomainError{"layer thickness", l.Thickness}
	}

	tCore, err := CriticalTemperature(l.TBottom, deltaT, par.eAct)
	if err != nil {
		return nil, err
	}
	if !finite(tCore) {
		return nil, DomainError{"core temperature", tCore}
	}

	props, err := provider.Properties(l.PMid, tCore, phase)
	if err != nil {
		return nil, err
	}
	nu, err := Viscosity(par.etaMelt, par.eAct, l.TBottom, tCore)
	if err != nil {
		return nil, err
	}
	kappa := props.Diffusivity()
	if !finite(nu) || !finite(kappa) {
		return nil, DomainError{"diffusivity", kappa}
	}

	ra := props.Alpha * props.Rho * l.Gravity * deltaT *
		math.Pow(l.Thickness, 3) / (kappa * nu)
	if !finite(ra) {
		return nil, DomainError{"Rayleigh number", ra}
	}

	r := &Regime{
		TCore:     tCore,
		Props:     props,
		Viscosity: nu,
		Ra:        ra,
	}
	if ra <= par.raCrit {
		// Sub-critical: the boundary is closed on the conducting side.
		r.conduct(l, par)
		return r, nil
	}

	raDel := 0.28 * math.Pow(ra, 0.21)
	r.LowerBL = math.Cbrt(nu * kappa /
		(props.Alpha * props.Rho * l.Gravity * (l.TBottom - tCore)) * raDel)
	r.HeatFlux = props.K * (l.TBottom - tCore) / r.LowerBL
	r.UpperBL = props.K * (tCore - l.TTop) / r.HeatFlux
	if !finite(r.LowerBL) || !finite(r.HeatFlux) || !finite(r.UpperBL) {
		return nil, DomainError{"convective heat flux", r.HeatFlux}
	}
	r.Convecting = true

	// Self-consistency: a conductive lid thicker than the whole shell
	// means the convective solution cannot hold, so the layer reverts
	// to conduction.
	if r.UpperBL > l.Thickness {
		r.Convecting = false
		r.Downgraded = true
		r.conduct(l, par)
	}
	return r, nil
}

// conduct overwrites r with the conducting solution for l. The core
// temperature is reported as the layer temperature difference and both
// boundary layers collapse to zero; the material properties and
// viscosity retain the values evaluated at the solved core
// temperature.
func (r *Regime) conduct(l Layer, par phaseParams) {
	r.TCore = l.TBottom - l.TTop
	r.UpperBL = 0
	r.LowerBL = 0
	r.HeatFlux = par.cond.conductiveFlux(l, r.Props.K)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
